package cover

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/avlasenko/tilecover/board"
	"github.com/avlasenko/tilecover/shape"
)

// SolveSAT decides the problem by Boolean satisfiability: one fresh
// literal per candidate placement, an at-least-one clause per required
// instance, and pairwise at-most-one clauses both within each
// instance's placements and among all placements covering a given
// board cell. Clause count is quadratic in placements-per-instance and
// placements-per-cell; no cardinality network is used.
//
// Returns the extracted placement set if satisfiable, or (nil, nil) if
// the formula is unsatisfiable — a certain negative, since the solver
// is complete. Which of several valid tilings is returned depends on
// solver internals; only solvability is deterministic.
//
// Complexity: O(m²) clause construction worst case (m = placements);
// solving is NP-hard in general but fast on typical boards.
func SolveSAT(shapes []*shape.Shape, p board.Problem) (Solution, error) {
	insts, err := expandInstances(shapes, p)
	if err != nil {
		return nil, err
	}
	if len(insts) == 0 {
		return Solution{}, nil
	}

	g := gini.New()

	var (
		all      []board.Placement
		lits     []z.Lit
		cellLits = make([][]z.Lit, p.Board.Area())
	)

	for _, in := range insts {
		ps := board.Generate(in.sh, in.instance, p.Board)

		group := make([]z.Lit, len(ps))
		for i, pl := range ps {
			m := g.Lit()
			group[i] = m
			all = append(all, pl)
			lits = append(lits, m)
			for _, c := range pl.Cells {
				idx := p.Board.Index(c)
				cellLits[idx] = append(cellLits[idx], m)
			}
		}

		// Exactly one placement per instance. An instance with no legal
		// placement contributes an empty clause, making the formula
		// trivially unsatisfiable.
		for _, m := range group {
			g.Add(m)
		}
		g.Add(z.LitNull)
		addAtMostOne(g, group)
	}

	// At most one placement may touch each board cell.
	for _, ms := range cellLits {
		addAtMostOne(g, ms)
	}

	if g.Solve() != 1 {
		return nil, nil
	}

	var sol Solution
	for i, m := range lits {
		if g.Value(m) {
			sol = append(sol, all[i])
		}
	}
	sortSolution(sol)

	return sol, nil
}

// addAtMostOne adds the pairwise mutual-exclusion clauses ¬a ∨ ¬b for
// every pair in ms. Quadratic by design; see package doc.
func addAtMostOne(g *gini.Gini, ms []z.Lit) {
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms); j++ {
			g.Add(ms[i].Not())
			g.Add(ms[j].Not())
			g.Add(z.LitNull)
		}
	}
}
