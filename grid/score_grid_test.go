// Package grid_test contains unit tests for ScoreGrid and MatrixSet.
package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gotoh/grid"
	"github.com/stretchr/testify/require"
)

// TestNewScoreGridInvalidDimensions ensures that NewScoreGrid rejects non-positive dimensions.
func TestNewScoreGridInvalidDimensions(t *testing.T) {
	_, err := grid.NewScoreGrid(grid.M, 0, 5, false) // zero rows
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.NewScoreGrid(grid.M, 5, 0, true) // zero columns
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.NewScoreGrid(grid.Role(7), 2, 2, true) // bogus role
	require.ErrorIs(t, err, grid.ErrUnknownRole)
}

// TestScoreGridShape verifies Rows, Cols, Shape and Role.
func TestScoreGridShape(t *testing.T) {
	g, err := grid.NewScoreGrid(grid.Ix, 3, 4, false)
	require.NoError(t, err)

	require.Equal(t, 3, g.Rows())
	require.Equal(t, 4, g.Cols())
	r, c := g.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	require.Equal(t, grid.Ix, g.Role())
	require.False(t, g.HasPointers())
}

// TestScoreGridAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestScoreGridAtSetOutOfRange(t *testing.T) {
	g, err := grid.NewScoreGrid(grid.M, 2, 2, true)
	require.NoError(t, err)

	_, err = g.At(-1, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = g.At(0, 2)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	err = g.Set(2, 0, 1.5)
	require.ErrorIs(t, err, grid.ErrOutOfRange)

	_, err = g.Pointers(5, 5)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestScoreGridSetGet validates Set followed by At, and the unchecked accessors.
func TestScoreGridSetGet(t *testing.T) {
	g, err := grid.NewScoreGrid(grid.M, 2, 3, false)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 2, 7.5))
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
	require.Equal(t, 7.5, g.Score(1, 2))

	g.SetScore(0, 1, math.Inf(-1)) // -Inf is a legal sentinel
	v, err = g.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, -1))
}

// TestScoreGridPointers checks decoding of the link bitmask for each role.
func TestScoreGridPointers(t *testing.T) {
	cases := []struct {
		role     grid.Role
		row, col int
		wantRow  int
		wantCol  int
	}{
		{grid.M, 2, 3, 1, 2},
		{grid.Ix, 2, 3, 1, 3},
		{grid.Iy, 2, 3, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.role.String(), func(t *testing.T) {
			g, err := grid.NewScoreGrid(tc.role, 3, 4, true)
			require.NoError(t, err)

			g.SetLinks(tc.row, tc.col, grid.LinkOf(grid.M).Add(grid.Iy))
			ptrs, err := g.Pointers(tc.row, tc.col)
			require.NoError(t, err)
			require.Equal(t, []grid.Pointer{
				{Role: grid.M, Row: tc.wantRow, Col: tc.wantCol},
				{Role: grid.Iy, Row: tc.wantRow, Col: tc.wantCol},
			}, ptrs)

			empty, err := g.Pointers(0, 0)
			require.NoError(t, err)
			require.Empty(t, empty)
		})
	}
}

// TestScoreGridNoPointerStorage ensures pointer calls on a pointer-less grid are safe.
func TestScoreGridNoPointerStorage(t *testing.T) {
	g, err := grid.NewScoreGrid(grid.M, 2, 2, false)
	require.NoError(t, err)

	g.SetLinks(1, 1, grid.LinkOf(grid.M)) // ignored
	require.True(t, g.Links(1, 1).Empty())

	_, err = g.Pointers(1, 1)
	require.ErrorIs(t, err, grid.ErrNoPointers)
}

// TestScoreGridCloneIndependence ensures Clone returns a deep copy.
func TestScoreGridCloneIndependence(t *testing.T) {
	g, err := grid.NewScoreGrid(grid.M, 2, 2, true)
	require.NoError(t, err)
	g.SetScore(0, 0, 1)
	g.SetLinks(1, 1, grid.LinkOf(grid.Ix))

	cp := g.Clone()
	cp.SetScore(0, 0, 3)
	cp.SetLinks(1, 1, 0)

	require.Equal(t, 1.0, g.Score(0, 0))
	require.True(t, g.Links(1, 1).Has(grid.Ix))
	require.Equal(t, 3.0, cp.Score(0, 0))
	require.True(t, cp.Links(1, 1).Empty())
}

// TestScoreGridFillAndDo checks Fill, early exit in Do, and String formatting.
func TestScoreGridFillAndDo(t *testing.T) {
	g, err := grid.NewScoreGrid(grid.Iy, 2, 2, true)
	require.NoError(t, err)
	g.SetLinks(0, 1, grid.LinkOf(grid.M))
	g.Fill(2)
	require.True(t, g.Links(0, 1).Empty())

	visited := 0
	g.Do(func(row, col int, v float64) bool {
		visited++
		require.Equal(t, 2.0, v)

		return visited < 3
	})
	require.Equal(t, 3, visited)

	g.SetScore(1, 1, 4)
	require.Equal(t, "[2, 2]\n[2, 4]\n", g.String())
}

// TestLinks covers the bitmask helpers.
func TestLinks(t *testing.T) {
	var l grid.Links
	require.True(t, l.Empty())
	l = l.Add(grid.M).Add(grid.Iy)
	require.True(t, l.Has(grid.M))
	require.False(t, l.Has(grid.Ix))
	require.Equal(t, 2, l.Len())
	require.Equal(t, "Role(9)", grid.Role(9).String())
	require.Equal(t, "Ix(1,2)", grid.Pointer{Role: grid.Ix, Row: 1, Col: 2}.String())
}
