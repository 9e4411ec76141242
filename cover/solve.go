// Package cover - unified dispatcher for exact-cover strategies.
//
// This file provides the canonical entry point plus the instance
// bookkeeping both strategies share:
//
//   - Solve: validate the problem's shape references, then route to
//     SolveSAT or SolveBacktracking per Options.Algo.
//   - expandInstances: flatten Problem.Counts into one record per
//     required piece instance, failing fast on undefined shape ids.
//
// Design principles:
//   - Two pure functions, one contract: strategies never share state,
//     so callers may run both and cross-check solvability.
//   - Strict sentinels: only errors from types.go.
//   - Canonical output: solutions are sorted (shape id, instance) so
//     equal inputs produce stably ordered results.
package cover

import (
	"fmt"
	"sort"

	"github.com/avlasenko/tilecover/board"
	"github.com/avlasenko/tilecover/shape"
)

// Solve routes the problem to the strategy selected by opts.Algo.
//
// Contracts:
//   - shapes must define every id with a positive count in p.Counts.
//   - A nil Solution with nil error is a definitive "no tiling exists".
//
// Errors: ErrShapeNotFound, ErrUnsupportedAlgorithm, and (Backtracking
// with a budget) ErrStepLimit.
func Solve(shapes []*shape.Shape, p board.Problem, opts Options) (Solution, error) {
	switch opts.Algo {
	case SAT:
		return SolveSAT(shapes, p)
	case Backtracking:
		return SolveBacktracking(shapes, p, opts)
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}

// instanceRef is one required piece instance awaiting placement.
type instanceRef struct {
	shapeID  int
	instance int
	sh       *shape.Shape
}

// expandInstances flattens p.Counts into one instanceRef per required
// instance, in (shape id, instance) order. A positive count for an id
// no shape defines yields ErrShapeNotFound wrapped with the id.
// Complexity: O(len(shapes) + total instances).
func expandInstances(shapes []*shape.Shape, p board.Problem) ([]instanceRef, error) {
	byID := make(map[int]*shape.Shape, len(shapes))
	for _, s := range shapes {
		byID[s.ID()] = s
	}

	var insts []instanceRef
	for id, count := range p.Counts {
		if count == 0 {
			continue
		}
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrShapeNotFound, id)
		}
		for i := 0; i < count; i++ {
			insts = append(insts, instanceRef{shapeID: id, instance: i, sh: s})
		}
	}

	return insts, nil
}

// sortSolution orders placements by (shape id, instance) in place.
func sortSolution(sol Solution) {
	sort.Slice(sol, func(i, j int) bool {
		if sol[i].ShapeID != sol[j].ShapeID {
			return sol[i].ShapeID < sol[j].ShapeID
		}

		return sol[i].Instance < sol[j].Instance
	})
}
