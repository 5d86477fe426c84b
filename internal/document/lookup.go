// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitPath splits a dotted path such as "source.location.0" into segments.
// An empty path yields no segments.
func SplitPath(dotted string) []string {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

// Lookup walks v along path. Mapping segments are keys; sequence segments
// are decimal indices. An empty path returns v itself.
func (v Value) Lookup(path ...string) (Value, error) {
	cur := v
	for i, seg := range path {
		var (
			next Value
			ok   bool
		)

		switch cur.kind {
		case Mapping:
			next, ok = cur.Get(seg)
		case Sequence:
			if idx, err := strconv.Atoi(seg); err == nil {
				next, ok = cur.Index(idx)
			}
		}

		if !ok {
			return Value{}, fmt.Errorf("%w: %q (at %s)", ErrPathNotFound, strings.Join(path[:i+1], "."), cur.kind)
		}
		cur = next
	}

	return cur, nil
}
