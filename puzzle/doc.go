// Package puzzle parses the textual piece/board description format and
// renders solutions as character grids.
//
// What:
//
//   - Parse reads shape definitions — an "ID:" header followed by three
//     3-character rows ('#' filled, anything else background) — and
//     problem lines of the form "WxH: c0 c1 c2 …", where counts are
//     indexed by shape id. Blank lines are skipped anywhere.
//   - Render draws a solved board: '.' for empty cells, '0'+id for
//     cells occupied by that shape.
//
// Why:
//
//   - Keeps file I/O and formatting out of the geometry and solver
//     packages; the engine consumes only parsed values.
//
// Errors:
//
//   - ErrFormat wraps every malformed-input failure together with the
//     1-based line number; shape construction errors (bad grid, empty
//     shape) propagate from package shape with line context.
package puzzle
