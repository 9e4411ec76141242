// Package tilecover is a small exact-cover engine for polyomino tiling:
// it decides whether a required multiset of pieces can be placed on a
// rectangular board so that every piece is placed exactly once and no
// two pieces overlap.
//
// What is tilecover?
//
//	A pure-Go library organized as three cooperating layers:
//		• shape  — piece geometry: canonical cells & distinct orientations
//		• board  — the target grid, problem instances & placement enumeration
//		• cover  — exact-cover search: SAT encoding and pruned backtracking
//		• puzzle — text-format parsing and solution rendering on top
//
// Why choose tilecover?
//
//   - Two complete strategies – a gini-backed SAT encoding and a
//     most-constrained-first backtracker, interchangeable behind one
//     options struct, cross-checkable on any input
//   - Definitive answers – "no tiling exists" is a first-class result,
//     not a search timeout
//   - Value types only – boards and placements carry no back-references;
//     solving independent problems concurrently is safe by construction
//
// Control flow is always shape → board → cover: geometry produces
// orientation sets, the board enumerates legal placements, and a solver
// either assembles a consistent placement set or proves none exists.
//
// Quick ASCII example — two corner trominoes tile a 2×3 board:
//
//	AAB
//	ABB
//
// See cmd/tilecover for the file-driven command-line driver.
//
//	go get github.com/avlasenko/tilecover
package tilecover
