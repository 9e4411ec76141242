package cover

import (
	"sort"

	"github.com/avlasenko/tilecover/board"
	"github.com/avlasenko/tilecover/shape"
)

// SolveBacktracking decides the problem by depth-first search over a
// flat occupancy grid. Pieces are ordered most-constrained-first —
// ascending by distinct orientation count, then descending by cell
// footprint — so the hardest pieces fail early. Before each piece the
// search compares the remaining empty cells against the total
// footprint of all unplaced pieces and prunes the branch outright when
// they cannot fit; a cheap necessary-but-not-sufficient check.
//
// Complete like SolveSAT: (nil, nil) proves no tiling exists. With
// opts.MaxSteps > 0 the search instead gives up after that many
// placement attempts and returns ErrStepLimit, keeping "unknown"
// distinct from "unsolvable". opts.OnPlace, when set, observes every
// committed placement (including ones later undone on backtrack).
//
// Complexity: exponential worst case; ordering + pruning keep sparse
// boards fast. Memory: O(board area + instances).
func SolveBacktracking(shapes []*shape.Shape, p board.Problem, opts Options) (Solution, error) {
	insts, err := expandInstances(shapes, p)
	if err != nil {
		return nil, err
	}
	if len(insts) == 0 {
		return Solution{}, nil
	}

	// Whole-problem footprint check before any search; the per-piece
	// suffix sums below apply the same prune at every depth.
	total, err := p.TotalCells(shapes)
	if err != nil {
		return nil, err
	}
	if total > p.Board.Area() {
		return nil, nil
	}

	sort.SliceStable(insts, func(i, j int) bool {
		oi, oj := insts[i].sh.OrientationCount(), insts[j].sh.OrientationCount()
		if oi != oj {
			return oi < oj
		}

		return insts[i].sh.CellCount() > insts[j].sh.CellCount()
	})

	// remaining[i] = combined footprint of pieces i..end.
	remaining := make([]int, len(insts)+1)
	for i := len(insts) - 1; i >= 0; i-- {
		remaining[i] = remaining[i+1] + insts[i].sh.CellCount()
	}

	st := &search{
		b:         p.Board,
		grid:      make([]int, p.Board.Area()),
		empty:     p.Board.Area(),
		pieces:    insts,
		remaining: remaining,
		maxSteps:  opts.MaxSteps,
		onPlace:   opts.OnPlace,
	}
	for i := range st.grid {
		st.grid[i] = unoccupied
	}

	found, err := st.place(0)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	sol := st.solution
	sortSolution(sol)

	return sol, nil
}

// unoccupied marks an empty occupancy-grid cell.
const unoccupied = -1

// search is the mutable state of one backtracking run. It is local to
// a single SolveBacktracking call; nothing is shared.
type search struct {
	b         board.Board
	grid      []int // row-major occupancy: unoccupied or piece index
	empty     int
	pieces    []instanceRef
	remaining []int
	solution  []board.Placement
	steps     int
	maxSteps  int
	onPlace   func(board.Placement)
}

// place tries to position piece idx and recurses. Returns true once
// every piece from idx onward is placed; ErrStepLimit aborts the whole
// search when the budget runs out.
func (st *search) place(idx int) (bool, error) {
	if idx == len(st.pieces) {
		return true, nil
	}
	if st.empty < st.remaining[idx] {
		return false, nil
	}

	pc := st.pieces[idx]
	for _, orient := range pc.sh.Orientations() {
		for y := 0; y < st.b.Height; y++ {
			for x := 0; x < st.b.Width; x++ {
				if st.maxSteps > 0 {
					st.steps++
					if st.steps > st.maxSteps {
						return false, ErrStepLimit
					}
				}
				cells, ok := st.fit(orient, x, y)
				if !ok {
					continue
				}

				pl := board.Placement{
					ShapeID:  pc.shapeID,
					Instance: pc.instance,
					Offset:   shape.Coord{X: x, Y: y},
					Cells:    cells,
				}
				st.commit(pl, idx)
				if st.onPlace != nil {
					st.onPlace(pl)
				}

				found, err := st.place(idx + 1)
				if found || err != nil {
					return found, err
				}
				st.rollback(pl)
			}
		}
	}

	return false, nil
}

// fit translates orient to offset (x, y) and reports whether every
// target cell is in bounds and currently empty.
func (st *search) fit(orient []shape.Coord, x, y int) ([]shape.Coord, bool) {
	cells := make([]shape.Coord, len(orient))
	for i, c := range orient {
		t := shape.Coord{X: x + c.X, Y: y + c.Y}
		if !st.b.InBounds(t) || st.grid[st.b.Index(t)] != unoccupied {
			return nil, false
		}
		cells[i] = t
	}

	return cells, true
}

// commit marks pl's cells with the piece index and records it.
func (st *search) commit(pl board.Placement, idx int) {
	for _, c := range pl.Cells {
		st.grid[st.b.Index(c)] = idx
	}
	st.empty -= len(pl.Cells)
	st.solution = append(st.solution, pl)
}

// rollback undoes commit.
func (st *search) rollback(pl board.Placement) {
	for _, c := range pl.Cells {
		st.grid[st.b.Index(c)] = unoccupied
	}
	st.empty += len(pl.Cells)
	st.solution = st.solution[:len(st.solution)-1]
}
