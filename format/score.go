// SPDX-License-Identifier: MIT
// score.go — the score formatter of spec.md §6.
//
// Grounded on original_source's ScorePrinter::operator().
package format

import (
	"fmt"
	"io"
)

const opScore = "Score"

// Score writes a single `<srcPath> <tgtPath> <totalScore>` line.
//
// Errors: any error from w.Write.
func Score(w io.Writer, sourcePath, targetPath string, totalScore float64) error {
	if _, err := fmt.Fprintf(w, "%s %s %g\n", sourcePath, targetPath, totalScore); err != nil {
		return fmt.Errorf("%s: %w", opScore, err)
	}
	return nil
}
