package sparsedt_test

import (
	"math"
	"testing"

	"github.com/corvidnlp/yasa/searchspace"
	"github.com/corvidnlp/yasa/sparsedt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGridTable fills a dense [0,n]x[0,n] space and solves a trivial
// "Manhattan step" DP: cost(i,j) = min(cost(i-1,j), cost(i,j-1)) + 1, with
// (0,0) the terminal origin.
func buildGridTable(t *testing.T, n int) *sparsedt.Table {
	t.Helper()
	space, err := searchspace.NewSetSpace(0, 0, n, n)
	require.NoError(t, err)
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			space.AddPossibility(i, j)
		}
	}
	tbl, err := sparsedt.NewTable(space)
	require.NoError(t, err)

	err = tbl.Solve(func(tb *sparsedt.Table, i, j int) (float64, int, int) {
		if i == 0 && j == 0 {
			return 0, 0, 0
		}
		best := math.Inf(1)
		bi, bj := i, j
		if i > 0 {
			if c, ok := tb.GetScore(i-1, j); ok && c.Score+1 < best {
				best, bi, bj = c.Score+1, i-1, j
			}
		}
		if j > 0 {
			if c, ok := tb.GetScore(i, j-1); ok && c.Score+1 < best {
				best, bi, bj = c.Score+1, i, j-1
			}
		}
		return best, bi, bj
	})
	require.NoError(t, err)
	return tbl
}

func TestTable_SolveFillsEveryCell(t *testing.T) {
	tbl := buildGridTable(t, 4)
	c, ok := tbl.GetScore(4, 4)
	require.True(t, ok)
	assert.Equal(t, float64(8), c.Score)

	c, ok = tbl.GetScore(0, 3)
	require.True(t, ok)
	assert.Equal(t, float64(3), c.Score)
}

func TestTable_BacktrackReachesOrigin(t *testing.T) {
	tbl := buildGridTable(t, 3)
	steps, err := tbl.Backtrack(3, 3)
	require.NoError(t, err)
	require.NotEmpty(t, steps)
	assert.Equal(t, 3, steps[0].X)
	assert.Equal(t, 3, steps[0].Y)
	last := steps[len(steps)-1]
	assert.Equal(t, 0, last.X)
	assert.Equal(t, 0, last.Y)
	assert.LessOrEqual(t, len(steps), 7) // at most |S|+|T| cells visited (3+3+1 max)
}

func TestTable_BacktrackAbsentCornerIsEmpty(t *testing.T) {
	space, err := searchspace.NewSetSpace(0, 0, 5, 5)
	require.NoError(t, err)
	space.AddPossibility(0, 0)
	tbl, err := sparsedt.NewTable(space)
	require.NoError(t, err)
	err = tbl.Solve(func(tb *sparsedt.Table, i, j int) (float64, int, int) { return 0, i, j })
	require.NoError(t, err)

	steps, err := tbl.Backtrack(5, 5)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestTable_SolveRejectsNonFiniteScore(t *testing.T) {
	space, err := searchspace.NewSetSpace(0, 0, 1, 1)
	require.NoError(t, err)
	space.AddPossibility(0, 0)
	tbl, err := sparsedt.NewTable(space)
	require.NoError(t, err)

	err = tbl.Solve(func(tb *sparsedt.Table, i, j int) (float64, int, int) { return math.NaN(), i, j })
	assert.ErrorIs(t, err, sparsedt.ErrNonFiniteScore)
}

func TestNewTable_NilSpace(t *testing.T) {
	_, err := sparsedt.NewTable(nil)
	assert.ErrorIs(t, err, sparsedt.ErrNilSpace)
}
