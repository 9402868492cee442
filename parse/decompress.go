// SPDX-License-Identifier: MIT
// decompress.go — the optional input-decompression filter of spec.md §6,
// reimplemented from original_source's japaoptions.cc `-z` input filter.
package parse

import (
	"fmt"
	"io"

	"github.com/klauspost/pgzip"
)

const opDecompressingReader = "DecompressingReader"

// DecompressingReader wraps r in a pgzip reader when compressed is true;
// otherwise it returns r unchanged. The CLI's -z-style flag selects
// compressed explicitly rather than sniffing the stream.
//
// Errors:
//   - wraps any error pgzip.NewReader returns (e.g. a malformed gzip header).
func DecompressingReader(r io.Reader, compressed bool) (io.Reader, error) {
	if !compressed {
		return r, nil
	}
	zr, err := pgzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompressingReader, err)
	}
	return zr, nil
}
