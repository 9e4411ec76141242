// Package shape defines polyomino piece geometry on a fixed 3×3
// template grid and enumerates each piece's distinct orientations.
//
// What:
//
//   - Shape wraps a small filled/empty template parsed from three text
//     rows, normalized to a canonical cell-offset list.
//   - Orientations() yields the distinct variants under the 8
//     rotation/reflection transforms, each translated to a minimal
//     bounding box and sorted row-major; symmetric shapes collapse to
//     fewer than 8.
//   - Shapes are immutable once constructed; orientation sets are
//     computed once and handed out as copies.
//
// Why:
//
//   - Placement enumeration (package board) needs every way a piece can
//     lie on a grid, without symmetric duplicates inflating the search.
//   - Exact-cover solving (package cover) orders pieces by orientation
//     count, so the set must be deduplicated and deterministic.
//
// Complexity:
//
//   - New:            O(1) parse + O(8·c·log c) orientation dedup
//     (c = filled cells, ≤ 9).
//   - Orientations:   O(k·c) copy per call (k = distinct orientations, ≤ 8).
//
// Errors:
//
//   - ErrGridSize:   template is not exactly 3 rows × 3 columns.
//   - ErrEmptyShape: template has no filled cells.
package shape
