package rasterline_test

import (
	"testing"

	"github.com/corvidnlp/yasa/rasterline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(l *rasterline.Line) [][2]int {
	pts := make([][2]int, 0)
	for l.HasNext() {
		l.Advance()
		pts = append(pts, [2]int{l.X(), l.Y()})
	}
	return pts
}

func TestLine_Coincident(t *testing.T) {
	l := rasterline.NewLine(3, 3, 3, 3)
	assert.False(t, l.HasNext(), "coincident endpoints must yield no points")
	assert.Empty(t, drain(l))
}

func TestLine_HorizontalAndVertical(t *testing.T) {
	pts := drain(rasterline.NewLine(0, 0, 4, 0))
	require.Len(t, pts, 5)
	assert.Equal(t, [2]int{0, 0}, pts[0])
	assert.Equal(t, [2]int{4, 0}, pts[len(pts)-1])

	pts = drain(rasterline.NewLine(0, 0, 0, 3))
	require.Len(t, pts, 4)
	assert.Equal(t, [2]int{0, 3}, pts[len(pts)-1])
}

func TestLine_DiagonalEndpointsInclusive(t *testing.T) {
	pts := drain(rasterline.NewLine(0, 0, 5, 5))
	require.Len(t, pts, 6)
	assert.Equal(t, [2]int{0, 0}, pts[0])
	assert.Equal(t, [2]int{5, 5}, pts[len(pts)-1])
	for i, p := range pts {
		assert.Equal(t, [2]int{i, i}, p)
	}
}

func TestLine_ShallowSlopeMonotonic(t *testing.T) {
	pts := drain(rasterline.NewLine(0, 0, 10, 3))
	require.Len(t, pts, 11)
	assert.Equal(t, [2]int{0, 0}, pts[0])
	assert.Equal(t, [2]int{10, 3}, pts[len(pts)-1])
	// x must be strictly monotonic; y must be non-decreasing (shallow slope).
	for i := 1; i < len(pts); i++ {
		assert.Equal(t, pts[i-1][0]+1, pts[i][0])
		assert.GreaterOrEqual(t, pts[i][1], pts[i-1][1])
	}
}

func TestLine_ReversedDirection(t *testing.T) {
	pts := drain(rasterline.NewLine(5, 5, 0, 0))
	require.Len(t, pts, 6)
	assert.Equal(t, [2]int{5, 5}, pts[0])
	assert.Equal(t, [2]int{0, 0}, pts[len(pts)-1])
}

func TestLine_PointsHelperMatchesManualIteration(t *testing.T) {
	manual := drain(rasterline.NewLine(1, 9, 8, 2))
	viaHelper := rasterline.NewLine(1, 9, 8, 2).Points()
	assert.Equal(t, manual, viaHelper)
}
