// Package cover decides exact-cover tiling: can every required piece
// instance be placed on the board simultaneously, with no two
// placements sharing a cell?
//
// What:
//
//   - Solve routes a problem to one of two interchangeable strategies
//     sharing the same contract; both are complete, so a nil Solution
//     with a nil error is a proof that no tiling exists, not a search
//     giving up.
//   - SolveSAT encodes placements as Boolean variables (one literal per
//     candidate placement) and hands the CNF to the gini solver:
//     at-least-one clause per instance, pairwise at-most-one per
//     instance and per board cell.
//   - SolveBacktracking searches directly on a flat occupancy grid,
//     placing the most constrained pieces first (fewest orientations,
//     then largest footprint) and pruning any branch whose remaining
//     pieces outweigh the remaining empty cells.
//
// Why:
//
//   - SAT shines on small dense instances and doubles as an
//     independent oracle; the backtracker avoids the quadratic clause
//     blow-up and is typically faster on sparse boards. Agreement on
//     solvability between the two is the package's primary
//     cross-check invariant.
//
// Complexity:
//
//   - SolveSAT: O(m²) clauses worst case (m = placements); solver time
//     is NP-hard in general.
//   - SolveBacktracking: exponential worst case; ordering + pruning
//     keep typical instances fast. Optional MaxSteps bounds the work,
//     surfacing ErrStepLimit ("unknown") instead of running unbounded.
//
// Errors:
//
//   - ErrShapeNotFound:        a positive count references an undefined
//     shape id; detected before any search.
//   - ErrStepLimit:            the backtracker's step budget ran out —
//     distinct from "no tiling exists".
//   - ErrUnsupportedAlgorithm: Options.Algo is not a known strategy.
package cover
