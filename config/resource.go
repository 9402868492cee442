// SPDX-License-Identifier: MIT
// resource.go — a resource-sanity check over the estimated sparse DP
// table size, grounded on eutils/utils.go's memory.TotalMemory() use.
package config

import "github.com/pbnjay/memory"

// bytesPerCell estimates sparsedt.Cell's resident size: two ints and a
// float64, plus map/bookkeeping overhead.
const bytesPerCell = 64

// EstimateTableBytes estimates a sparse DP table's memory use from the
// number of admissible cells in its search space, not the dense
// |S|x|T| grid: spec.md §5's scalability property is precisely that
// the filled search space stays a small fraction of that product, so
// sizing the check off the full grid would warn on large, perfectly
// tractable inputs.
func EstimateTableBytes(cellCount int) uint64 {
	return uint64(cellCount) * bytesPerCell
}

// CheckResources reports whether the estimated DP table for a search
// space holding cellCount admissible cells fits within the machine's
// total memory. It never errors: callers should treat a false result
// as a warning to print, not a reason to abort.
//
//	if !opts.CheckResources(space.Len()) {
//	    warn("alignment may exceed available memory")
//	}
func (o Options) CheckResources(cellCount int) bool {
	total := memory.TotalMemory()
	if total == 0 {
		return true
	}
	return EstimateTableBytes(cellCount) < total
}
