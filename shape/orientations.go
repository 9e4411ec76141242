package shape

import (
	"sort"
	"strconv"
	"strings"
)

// Orientations returns the distinct orientations of the shape: the set
// of normalized cell lists produced by the 4 rotations of the template
// and the 4 rotations of its horizontal mirror, with symmetric
// duplicates collapsed. The result is in a fixed canonical order and
// each call returns fresh copies, so callers may mutate freely.
// Complexity: O(k·c) per call; the set itself is computed once in New.
func (s *Shape) Orientations() [][]Coord {
	out := make([][]Coord, len(s.orientations))
	for i, o := range s.orientations {
		out[i] = make([]Coord, len(o))
		copy(out[i], o)
	}

	return out
}

// rotate90 maps every cell (x,y) to (-y,x), a quarter turn about the
// origin. Normalization restores non-negative offsets afterwards.
func rotate90(cells []Coord) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: -c.Y, Y: c.X}
	}

	return out
}

// mirror reflects every cell across the vertical axis: (x,y) → (-x,y).
func mirror(cells []Coord) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: -c.X, Y: c.Y}
	}

	return out
}

// normalize translates cells so the minimum X and minimum Y are 0 and
// sorts them row-major. Two orientations are equal iff their
// normalized lists are identical.
func normalize(cells []Coord) []Coord {
	minX, minY := cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: c.X - minX, Y: c.Y - minY}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// orientationKey encodes a normalized cell list for set membership.
func orientationKey(cells []Coord) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte(';')
	}

	return b.String()
}

// distinctOrientations generates the 8 raw transforms (identity, three
// further quarter turns, then the same four of the mirrored template),
// normalizes each, and keeps one representative per distinct result.
// Output order is the sorted key order, so identical shapes always
// yield identical orientation sets.
func distinctOrientations(cells []Coord) [][]Coord {
	seen := make(map[string][]Coord, 8)

	cur := cells
	for i := 0; i < 4; i++ {
		n := normalize(cur)
		seen[orientationKey(n)] = n
		cur = rotate90(cur)
	}
	cur = mirror(cells)
	for i := 0; i < 4; i++ {
		n := normalize(cur)
		seen[orientationKey(n)] = n
		cur = rotate90(cur)
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][]Coord, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}

	return out
}
