// SPDX-License-Identifier: MIT
// bead.go — the bead formatter of spec.md §6.
//
// Grounded on original_source's RaliPrinter::operator().
package format

import (
	"fmt"
	"io"

	"github.com/corvidnlp/yasa/align"
)

const opBead = "Bead"

// Bead writes one `<srcLen>-<tgtLen> <cumulativeScore>` line per bead.
//
// Errors: any error from w.Write.
func Bead(w io.Writer, beads []align.Bead) error {
	for _, bead := range beads {
		if _, err := fmt.Fprintf(w, "%d-%d %g\n", bead.SourceLen, bead.TargetLen, bead.Score); err != nil {
			return fmt.Errorf("%s: %w", opBead, err)
		}
	}
	return nil
}
