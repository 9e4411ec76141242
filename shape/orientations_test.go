package shape_test

import (
	"reflect"
	"testing"

	"github.com/avlasenko/tilecover/shape"
)

// TestOrientationCount verifies 1 ≤ count ≤ 8 and the exact counts for
// representative symmetry groups.
func TestOrientationCount(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want int
	}{
		// A single cell is invariant under every transform.
		{"SingleCell", []string{"#..", "...", "..."}, 1},
		// The plus sign has the full symmetry group of the square.
		{"Plus", []string{".#.", "###", ".#."}, 1},
		// A 2×2 block is also fully symmetric.
		{"Square", []string{"##.", "##.", "..."}, 1},
		// A straight line has two axes: horizontal and vertical.
		{"Line", []string{"###", "...", "..."}, 2},
		// The corner tromino is mirror-symmetric along its diagonal.
		{"Corner", []string{"##.", "#..", "..."}, 4},
		// S/Z: two rotations each, mirror pair distinct.
		{"SPiece", []string{"##.", ".##", "..."}, 4},
		// T-tetromino: four rotations, mirror coincides.
		{"TPiece", []string{"###", ".#.", "..."}, 4},
		// Fully asymmetric pentomino: all eight transforms distinct.
		{"FPiece", []string{".##", "##.", ".#."}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := shape.New(0, tc.rows)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			got := s.OrientationCount()
			if got != tc.want {
				t.Errorf("OrientationCount() = %d; want %d", got, tc.want)
			}
			if got < 1 || got > 8 {
				t.Errorf("OrientationCount() = %d; want within [1,8]", got)
			}
			if got != len(s.Orientations()) {
				t.Errorf("OrientationCount() = %d; len(Orientations()) = %d", got, len(s.Orientations()))
			}
		})
	}
}

// TestOrientations_Normalized verifies every orientation touches both
// axes (min X and min Y are 0) and preserves the cell count.
func TestOrientations_Normalized(t *testing.T) {
	s, err := shape.New(0, []string{".##", "##.", ".#."})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for i, o := range s.Orientations() {
		if len(o) != s.CellCount() {
			t.Errorf("orientation %d has %d cells; want %d", i, len(o), s.CellCount())
		}
		minX, minY := o[0].X, o[0].Y
		for _, c := range o {
			if c.X < minX {
				minX = c.X
			}
			if c.Y < minY {
				minY = c.Y
			}
		}
		if minX != 0 || minY != 0 {
			t.Errorf("orientation %d min offset = (%d,%d); want (0,0)", i, minX, minY)
		}
	}
}

// TestOrientations_Idempotent checks that repeated computation yields
// the identical set in the identical order.
func TestOrientations_Idempotent(t *testing.T) {
	rows := []string{"##.", ".##", "..."}
	s1, err := shape.New(0, rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	s2, err := shape.New(0, rows)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !reflect.DeepEqual(s1.Orientations(), s1.Orientations()) {
		t.Error("Orientations() differs between calls on the same shape")
	}
	if !reflect.DeepEqual(s1.Orientations(), s2.Orientations()) {
		t.Error("Orientations() differs between identical shapes")
	}
}

// TestOrientations_Copy ensures the returned lists are detached from
// the shape's internal state.
func TestOrientations_Copy(t *testing.T) {
	s, err := shape.New(0, []string{"###", "...", "..."})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	os := s.Orientations()
	os[0][0] = shape.Coord{X: 42, Y: 42}
	if got := s.Orientations()[0][0]; got == (shape.Coord{X: 42, Y: 42}) {
		t.Error("Orientations() aliases internal state")
	}
}
