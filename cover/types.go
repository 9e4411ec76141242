package cover

import (
	"errors"

	"github.com/avlasenko/tilecover/board"
)

// Sentinel errors for exact-cover solving.
var (
	// ErrShapeNotFound indicates a positive instance count for a shape
	// id that no provided shape defines.
	ErrShapeNotFound = errors.New("cover: problem references an undefined shape id")
	// ErrStepLimit indicates the backtracker exhausted Options.MaxSteps
	// before reaching a definitive answer.
	ErrStepLimit = errors.New("cover: step limit exceeded before search completed")
	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("cover: unsupported algorithm")
)

// Algorithm selects the solving strategy.
type Algorithm int

const (
	// Backtracking searches an occupancy grid with
	// most-constrained-first ordering and footprint pruning.
	Backtracking Algorithm = iota
	// SAT encodes the problem as CNF and delegates to the gini solver.
	SAT
)

// Solution is one consistent placement set: exactly one placement per
// required instance, pairwise cell-disjoint. A nil Solution means no
// tiling exists; a non-nil empty Solution means the problem required
// nothing (trivially solvable). Placements are sorted by shape id,
// then instance.
type Solution []board.Placement

// Options configures Solve.
//   - Algo: strategy to run (default Backtracking).
//   - MaxSteps: backtracking-only budget on placement attempts;
//     0 means unlimited. Exceeding it yields ErrStepLimit.
//   - OnPlace: optional observer invoked each time the backtracker
//     commits a placement; commits may later be undone on backtrack.
type Options struct {
	Algo     Algorithm
	MaxSteps int
	OnPlace  func(board.Placement)
}

// DefaultOptions returns Options with default settings:
// Algo=Backtracking, no step budget, no observer.
func DefaultOptions() Options {
	return Options{Algo: Backtracking}
}
