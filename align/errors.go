// Package align: sentinel error set.
package align

import "errors"

// ErrEmptyAlignment signals spec.md §7's empty-alignment warning: the
// backtracking walk from the sentence search space's upper-right corner
// found it absent. Not returned by Align (which reports it via
// Result.Empty instead, a soft condition) — exported so callers
// (package format, cmd/yasa) can test for it if they choose to treat an
// empty Result as an error.
var ErrEmptyAlignment = errors.New("align: backtracking from the upper-right corner found no path")
