// SPDX-License-Identifier: MIT
// Package searchspace: sentinel error set.
//
// Policy: sentinels are never pre-formatted with runtime values; callers
// wrap with fmt.Errorf("ctx: %w", err) and branch with errors.Is.
package searchspace

import "errors"

var (
	// ErrInvalidBounds indicates a declared rectangle with xLo > xUp or
	// yLo > yUp was requested at construction time.
	ErrInvalidBounds = errors.New("searchspace: xLo/yLo must not exceed xUp/yUp")
)
