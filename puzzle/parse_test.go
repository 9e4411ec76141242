package puzzle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avlasenko/tilecover/puzzle"
	"github.com/avlasenko/tilecover/shape"
)

const sampleInput = `0:
#..
...
...

1:
##.
#..
...

2x2: 4
2x3: 0 2
`

// TestParse_Sample verifies shapes and problems from a well-formed input.
func TestParse_Sample(t *testing.T) {
	shapes, problems, err := puzzle.Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)

	require.Len(t, shapes, 2)
	require.Equal(t, 0, shapes[0].ID())
	require.Equal(t, 1, shapes[0].CellCount())
	require.Equal(t, 1, shapes[1].ID())
	require.Equal(t, 3, shapes[1].CellCount())

	require.Len(t, problems, 2)
	require.Equal(t, 2, problems[0].Board.Width)
	require.Equal(t, 2, problems[0].Board.Height)
	require.Equal(t, []int{4}, problems[0].Counts)
	require.Equal(t, 2, problems[1].Board.Width)
	require.Equal(t, 3, problems[1].Board.Height)
	require.Equal(t, []int{0, 2}, problems[1].Counts)
}

// TestParse_Errors verifies malformed inputs fail with line context.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"BadShapeID", "abc:\n#..\n...\n...\n", puzzle.ErrFormat},
		{"TruncatedShape", "0:\n#..\n...\n", puzzle.ErrFormat},
		{"BadDimensions", "2y2: 1\n", puzzle.ErrFormat},
		{"BadWidth", "ax2: 1\n", puzzle.ErrFormat},
		{"BadCount", "2x2: one\n", puzzle.ErrFormat},
		{"UnexpectedLine", "what is this\n", puzzle.ErrFormat},
		{"EmptyShape", "0:\n...\n...\n...\n", shape.ErrEmptyShape},
		{"ShortGridRow", "0:\n#.\n...\n...\n", shape.ErrGridSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := puzzle.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_Empty verifies an empty input yields nothing and no error.
func TestParse_Empty(t *testing.T) {
	shapes, problems, err := puzzle.Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	require.Empty(t, shapes)
	require.Empty(t, problems)
}
