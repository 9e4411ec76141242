package shape

// New constructs a Shape from its identifier and a GridSize-row
// template, one string per row. Cells equal to Filled are occupied;
// every other character is background.
// Returns ErrGridSize if the template is not exactly GridSize rows of
// GridSize characters, ErrEmptyShape if no cell is filled.
// Complexity: O(1) parse (the grid is fixed-size) plus orientation
// precomputation, see orientations.go.
func New(id int, rows []string) (*Shape, error) {
	if len(rows) != GridSize {
		return nil, ErrGridSize
	}
	var cells []Coord
	for y, row := range rows {
		if len(row) != GridSize {
			return nil, ErrGridSize
		}
		for x, ch := range row {
			if ch == Filled {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	if len(cells) == 0 {
		// A zero-cell piece would "match" anywhere; reject it here so
		// placement generation never sees the degenerate case.
		return nil, ErrEmptyShape
	}
	s := &Shape{id: id, cells: normalize(cells)}
	s.orientations = distinctOrientations(s.cells)

	return s, nil
}

// ID returns the shape identifier.
func (s *Shape) ID() int { return s.id }

// Cells returns a copy of the canonical cell offsets (translated so
// min X and min Y are 0, sorted row-major).
// Complexity: O(c).
func (s *Shape) Cells() []Coord {
	out := make([]Coord, len(s.cells))
	copy(out, s.cells)

	return out
}

// CellCount returns the number of filled cells.
// Complexity: O(1).
func (s *Shape) CellCount() int { return len(s.cells) }

// OrientationCount returns the number of distinct orientations,
// between 1 (fully symmetric) and 8.
// Complexity: O(1).
func (s *Shape) OrientationCount() int { return len(s.orientations) }
