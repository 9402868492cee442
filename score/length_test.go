package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelta_ZeroLengthSideUsesProduction(t *testing.T) {
	const production, variance, cS = 2.0, 6.8, 10.0

	got := delta(cS, 0, production, variance)
	want := math.Sqrt(cS / (production * variance))
	assert.InDelta(t, want, got, 1e-9)
}

// TestDelta_SwapSymmetryAcrossZeroLengthSide pins down spec.md §8's
// "swap source/target, invert production" property for the cT == 0
// branch: the deletion-side magnitude must equal the mirrored
// insertion-side magnitude.
func TestDelta_SwapSymmetryAcrossZeroLengthSide(t *testing.T) {
	const production, variance, cS = 2.0, 6.8, 10.0

	deletionSide := delta(cS, 0, production, variance)
	insertionSide := delta(0, cS, 1/production, variance)

	assert.InDelta(t, math.Abs(deletionSide), math.Abs(insertionSide), 1e-9)
}

// TestLengthTerm_SwapSymmetry exercises the full length-term, not just
// delta: swapping cS/cT, inverting production, yields the same score.
func TestLengthTerm_SwapSymmetry(t *testing.T) {
	forwardCfg := config{matchWeight: 0.2, penaltyWeight: 1, production: 2.0, variance: 6.8}
	swappedCfg := config{matchWeight: 0.2, penaltyWeight: 1, production: 0.5, variance: 6.8}

	const cS, cT, penalty = 12.0, 0.0, 0.4

	forward := forwardCfg.lengthTerm(cS, cT, penalty)
	backward := swappedCfg.lengthTerm(cT, cS, penalty)

	assert.InDelta(t, forward, backward, 1e-9)
}
