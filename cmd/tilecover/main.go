// Command tilecover reads a puzzle file (shape templates plus problem
// spaces), decides each space with the selected strategy, and reports
// how many admit a tiling.
//
// Exit status: 0 when every space was decided, 1 when parsing or any
// solve failed, 2 on usage errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/avlasenko/tilecover/cover"
	"github.com/avlasenko/tilecover/puzzle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses flags and solves every problem space in the input file.
// A definitive "no tiling exists" is a normal outcome; parse errors
// and solve errors (dangling shape ids, exhausted step budgets) make
// the run fail.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tilecover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		input     = fs.String("input", "", "puzzle file: shape templates and WxH problem lines")
		algo      = fs.String("algo", "backtrack", "solving strategy: backtrack or sat")
		visualize = fs.Bool("visualize", false, "render each solved board")
		steps     = fs.Int("steps", 0, "backtracking step budget, 0 = unlimited")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *input == "" {
		fmt.Fprintln(stderr, "tilecover: -input is required")
		fs.Usage()

		return 2
	}

	opts := cover.DefaultOptions()
	opts.MaxSteps = *steps
	switch *algo {
	case "backtrack":
		opts.Algo = cover.Backtracking
	case "sat":
		opts.Algo = cover.SAT
	default:
		fmt.Fprintf(stderr, "tilecover: unknown -algo %q\n", *algo)

		return 2
	}

	shapes, problems, err := puzzle.ParseFile(*input)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}
	fmt.Fprintf(stdout, "parsed %d shapes, %d problem spaces\n", len(shapes), len(problems))

	solved, failed := 0, false
	for i, p := range problems {
		sol, err := cover.Solve(shapes, p, opts)
		switch {
		case err != nil:
			failed = true
			fmt.Fprintf(stderr, "space %d (%dx%d): error: %v\n", i+1, p.Board.Width, p.Board.Height, err)
		case sol == nil:
			fmt.Fprintf(stdout, "space %d (%dx%d): no tiling exists\n", i+1, p.Board.Width, p.Board.Height)
		default:
			solved++
			fmt.Fprintf(stdout, "space %d (%dx%d): solvable\n", i+1, p.Board.Width, p.Board.Height)
			if *visualize {
				fmt.Fprintln(stdout, puzzle.Render(sol, p.Board))
			}
		}
	}
	fmt.Fprintf(stdout, "summary: %d / %d problem spaces solved\n", solved, len(problems))
	if failed {
		return 1
	}

	return 0
}
