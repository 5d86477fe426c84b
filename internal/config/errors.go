// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidSettings is returned by [GetSettings] when the merged settings
// fail validation. The wrapped message lists every failing field.
var ErrInvalidSettings = errors.New("invalid settings")
