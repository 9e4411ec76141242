package board

import (
	"errors"

	"github.com/avlasenko/tilecover/shape"
)

// Sentinel errors for board and problem construction.
var (
	// ErrBoardSize indicates non-positive board dimensions.
	ErrBoardSize = errors.New("board: width and height must be positive")
	// ErrNegativeCount indicates a negative required instance count.
	ErrNegativeCount = errors.New("board: shape counts must be non-negative")
	// ErrUnknownShape indicates a positive count whose shape id is not
	// among the provided shapes.
	ErrUnknownShape = errors.New("board: counts reference an undefined shape id")
)

// Board is the fixed-size rectangular target grid. It carries no
// occupancy state; solvers build their own.
type Board struct {
	Width, Height int
}

// Problem is one tiling instance: a board plus the required multiset
// of pieces. Counts[id] is the number of independent instances of the
// shape with that id which must all be placed.
type Problem struct {
	Board  Board
	Counts []int
}

// Placement is one candidate assignment of a shape instance to an
// orientation at a board offset. Cells holds the concrete board cells
// it would occupy; the placement is fully determined by
// (ShapeID, Instance, orientation, Offset) and never mutated.
type Placement struct {
	ShapeID  int
	Instance int
	Offset   shape.Coord
	Cells    []shape.Coord
}
