package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avlasenko/tilecover/board"
	"github.com/avlasenko/tilecover/cover"
	"github.com/avlasenko/tilecover/puzzle"
	"github.com/avlasenko/tilecover/shape"
)

// TestRender_Empty verifies an empty solution renders all dots.
func TestRender_Empty(t *testing.T) {
	b, err := board.New(3, 2)
	require.NoError(t, err)
	require.Equal(t, "...\n...", puzzle.Render(cover.Solution{}, b))
}

// TestRender_Placements verifies shape-id symbols land on the right cells.
func TestRender_Placements(t *testing.T) {
	b, err := board.New(3, 2)
	require.NoError(t, err)
	sol := cover.Solution{
		{ShapeID: 1, Instance: 0, Offset: shape.Coord{X: 0, Y: 0}, Cells: []shape.Coord{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		}},
		{ShapeID: 2, Instance: 0, Offset: shape.Coord{X: 2, Y: 0}, Cells: []shape.Coord{
			{X: 2, Y: 0}, {X: 2, Y: 1},
		}},
	}
	require.Equal(t, "112\n1.2", puzzle.Render(sol, b))
}

// TestRender_SolvedProblem renders an actual solver result and checks
// every non-dot cell count matches the pieces' footprints.
func TestRender_SolvedProblem(t *testing.T) {
	s, err := shape.New(1, []string{"##.", "#..", "..."})
	require.NoError(t, err)
	b, err := board.New(2, 3)
	require.NoError(t, err)
	p, err := board.NewProblem(b, []int{0, 2})
	require.NoError(t, err)

	sol, err := cover.SolveBacktracking([]*shape.Shape{s}, p, cover.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, sol)

	out := puzzle.Render(sol, b)
	filled := 0
	for _, ch := range out {
		if ch == '1' {
			filled++
		}
	}
	require.Equal(t, 6, filled, "two trominoes fill all six cells")
}
