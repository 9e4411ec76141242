package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/avlasenko/tilecover/board"
	"github.com/avlasenko/tilecover/shape"
)

// ErrFormat indicates malformed puzzle input. Wrapped errors carry the
// 1-based line number and detail.
var ErrFormat = errors.New("puzzle: malformed input")

// Parse reads shape and problem definitions from r.
//
// A shape definition is a line "ID:" (no 'x') followed by exactly three
// grid rows. A problem definition is one line "WxH: c0 c1 …" where
// counts are indexed by shape id. Blank lines are skipped.
//
// Errors wrap ErrFormat (or shape sentinels) with the offending line
// number. Complexity: O(input size).
func Parse(r io.Reader) ([]*shape.Shape, []board.Problem, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("puzzle: read input: %w", err)
	}

	var (
		shapes   []*shape.Shape
		problems []board.Problem
	)
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "":
			i++
		case strings.HasSuffix(line, ":") && !strings.Contains(line, "x"):
			s, err := parseShape(lines, i)
			if err != nil {
				return nil, nil, err
			}
			shapes = append(shapes, s)
			i += 1 + shape.GridSize
		case strings.Contains(line, "x") && strings.Contains(line, ":"):
			p, err := parseProblem(line, i)
			if err != nil {
				return nil, nil, err
			}
			problems = append(problems, p)
			i++
		default:
			return nil, nil, fmt.Errorf("%w: line %d: unexpected format %q", ErrFormat, i+1, line)
		}
	}

	return shapes, problems, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) ([]*shape.Shape, []board.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("puzzle: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// parseShape reads the "ID:" header at lines[i] and the GridSize rows
// after it.
func parseShape(lines []string, i int) (*shape.Shape, error) {
	header := strings.TrimSpace(lines[i])
	idStr := strings.TrimSuffix(header, ":")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: invalid shape id %q", ErrFormat, i+1, idStr)
	}
	if i+shape.GridSize >= len(lines) {
		return nil, fmt.Errorf("%w: line %d: shape %d incomplete, expected %d grid rows",
			ErrFormat, i+1, id, shape.GridSize)
	}

	rows := make([]string, shape.GridSize)
	for j := 0; j < shape.GridSize; j++ {
		rows[j] = strings.TrimSpace(lines[i+1+j])
	}
	s, err := shape.New(id, rows)
	if err != nil {
		return nil, fmt.Errorf("puzzle: line %d: shape %d: %w", i+1, id, err)
	}

	return s, nil
}

// parseProblem reads one "WxH: c0 c1 …" definition.
func parseProblem(line string, i int) (board.Problem, error) {
	parts := strings.SplitN(line, ":", 2)
	dims := strings.Split(strings.TrimSpace(parts[0]), "x")
	if len(dims) != 2 {
		return board.Problem{}, fmt.Errorf("%w: line %d: invalid dimensions, expected WxH", ErrFormat, i+1)
	}
	w, err := strconv.Atoi(strings.TrimSpace(dims[0]))
	if err != nil {
		return board.Problem{}, fmt.Errorf("%w: line %d: invalid width %q", ErrFormat, i+1, dims[0])
	}
	h, err := strconv.Atoi(strings.TrimSpace(dims[1]))
	if err != nil {
		return board.Problem{}, fmt.Errorf("%w: line %d: invalid height %q", ErrFormat, i+1, dims[1])
	}
	b, err := board.New(w, h)
	if err != nil {
		return board.Problem{}, fmt.Errorf("puzzle: line %d: %w", i+1, err)
	}

	var counts []int
	for _, field := range strings.Fields(parts[1]) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return board.Problem{}, fmt.Errorf("%w: line %d: invalid shape count %q", ErrFormat, i+1, field)
		}
		counts = append(counts, n)
	}
	p, err := board.NewProblem(b, counts)
	if err != nil {
		return board.Problem{}, fmt.Errorf("puzzle: line %d: %w", i+1, err)
	}

	return p, nil
}
