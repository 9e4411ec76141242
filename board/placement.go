package board

import "github.com/avlasenko/tilecover/shape"

// Generate enumerates every legal placement of one instance of s on b:
// each orientation translated to each offset (x, y) with 0 ≤ x < Width,
// 0 ≤ y < Height, kept only when all cells land in bounds. No overlap
// or occupancy check happens here; generation is purely geometric.
// Complexity: O(k·W·H·c) time, output ≤ k·W·H placements.
func Generate(s *shape.Shape, instance int, b Board) []Placement {
	var placements []Placement
	for _, orient := range s.Orientations() {
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				cells := make([]shape.Coord, len(orient))
				fits := true
				for i, c := range orient {
					cells[i] = shape.Coord{X: x + c.X, Y: y + c.Y}
					if !b.InBounds(cells[i]) {
						fits = false
						break
					}
				}
				if !fits {
					continue
				}
				placements = append(placements, Placement{
					ShapeID:  s.ID(),
					Instance: instance,
					Offset:   shape.Coord{X: x, Y: y},
					Cells:    cells,
				})
			}
		}
	}

	return placements
}
