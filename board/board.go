package board

import (
	"fmt"

	"github.com/avlasenko/tilecover/shape"
)

// New constructs a Board.
// Returns ErrBoardSize if either dimension is not positive.
// Complexity: O(1).
func New(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, ErrBoardSize
	}

	return Board{Width: width, Height: height}, nil
}

// InBounds reports whether c lies within the board.
// Complexity: O(1).
func (b Board) InBounds(c shape.Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Area returns the total cell count.
// Complexity: O(1).
func (b Board) Area() int { return b.Width * b.Height }

// Index maps c to its row-major flat index: Y·Width + X.
// Complexity: O(1).
func (b Board) Index(c shape.Coord) int { return c.Y*b.Width + c.X }

// NewProblem constructs a Problem over b. counts is copied; counts[id]
// is the number of required instances of shape id.
// Returns ErrNegativeCount if any count is negative.
// Complexity: O(len(counts)).
func NewProblem(b Board, counts []int) (Problem, error) {
	for _, n := range counts {
		if n < 0 {
			return Problem{}, ErrNegativeCount
		}
	}
	cp := make([]int, len(counts))
	copy(cp, counts)

	return Problem{Board: b, Counts: cp}, nil
}

// TotalInstances returns the number of pieces that must be placed.
// Complexity: O(len(Counts)).
func (p Problem) TotalInstances() int {
	total := 0
	for _, n := range p.Counts {
		total += n
	}

	return total
}

// TotalCells returns the combined cell footprint of every required
// instance: the sum of Counts[id] × CellCount over the referenced
// shapes. A tiling cannot exist when this exceeds the board area.
// Returns ErrUnknownShape wrapped with the id if a positive count has
// no matching shape.
// Complexity: O(len(shapes) + len(Counts)).
func (p Problem) TotalCells(shapes []*shape.Shape) (int, error) {
	cellsByID := make(map[int]int, len(shapes))
	for _, s := range shapes {
		cellsByID[s.ID()] = s.CellCount()
	}

	total := 0
	for id, count := range p.Counts {
		if count == 0 {
			continue
		}
		cells, ok := cellsByID[id]
		if !ok {
			return 0, fmt.Errorf("%w: id %d", ErrUnknownShape, id)
		}
		total += count * cells
	}

	return total, nil
}
