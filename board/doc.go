// Package board models the target grid, the problem instance, and the
// purely geometric enumeration of candidate placements.
//
// What:
//
//   - Board is a fixed Width×Height grid addressed by (x, y) with
//     row-major flat indexing (y·Width + x).
//   - Problem pairs a Board with the required instance count per shape
//     id; instances of the same shape are interchangeable but tracked
//     by index so each receives exactly one placement.
//   - Placement is one candidate assignment of a shape instance to an
//     orientation at a board offset, materialized as the concrete cell
//     set it would occupy.
//   - Generate enumerates every in-bounds placement of one instance:
//     orientations × offsets, no occupancy awareness.
//
// Why:
//
//   - Solvers (package cover) consume placements as opaque cell sets;
//     keeping generation oblivious to other pieces lets both the SAT
//     encoding and the backtracker share one enumeration.
//
// Complexity:
//
//   - Generate: O(k·W·H·c) time (k = orientations, c = cells per
//     piece); output size ≤ k·W·H. This is the hot path — placement
//     count drives both SAT clause count and search branching.
//
// Errors:
//
//   - ErrBoardSize:     width or height is not positive.
//   - ErrNegativeCount: a required instance count is negative.
//   - ErrUnknownShape:  a positive count references a shape id that no
//     provided shape defines.
package board
