package puzzle

import (
	"strings"

	"github.com/avlasenko/tilecover/board"
	"github.com/avlasenko/tilecover/cover"
)

// Render draws sol on a b-sized character grid: '.' for empty cells,
// '0'+shape id for occupied ones. Rows are newline-separated with no
// trailing newline.
// Complexity: O(board area + solution cells).
func Render(sol cover.Solution, b board.Board) string {
	grid := make([]byte, b.Area())
	for i := range grid {
		grid[i] = '.'
	}
	for _, pl := range sol {
		symbol := byte('0' + pl.ShapeID)
		for _, c := range pl.Cells {
			grid[b.Index(c)] = symbol
		}
	}

	rows := make([]string, b.Height)
	for y := 0; y < b.Height; y++ {
		rows[y] = string(grid[y*b.Width : (y+1)*b.Width])
	}

	return strings.Join(rows, "\n")
}
