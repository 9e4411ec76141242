package shape

import "errors"

// GridSize is the fixed edge length of the piece template grid.
const GridSize = 3

// Filled is the template marker for an occupied cell; any other
// character counts as background.
const Filled = '#'

// Sentinel errors for shape construction.
var (
	// ErrGridSize indicates a template that is not GridSize×GridSize.
	ErrGridSize = errors.New("shape: template must be exactly 3 rows of 3 characters")
	// ErrEmptyShape indicates a template with no filled cells.
	ErrEmptyShape = errors.New("shape: template has no filled cells")
)

// Coord is a cell position. X grows rightward, Y grows downward, so
// row-major order sorts by (Y, X).
type Coord struct {
	X, Y int
}

// Shape is an immutable piece definition: an identifier plus the
// canonical offsets of its filled template cells. The distinct
// orientation set is precomputed at construction.
type Shape struct {
	id           int
	cells        []Coord
	orientations [][]Coord
}
