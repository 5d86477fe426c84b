// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

//go:generate mockgen -source=interfaces.go -destination=../mock/reporter_mock.go -package=mock

// Reporter receives exactly one Status per load attempt.
type Reporter interface {
	Report(status Status) error
}
