package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tveness/dlx-go/encoders/sudoku"
)

// TestCanonicalPuzzleHasUniqueSolution checks the textbook 9x9 puzzle
// produces exactly one solution, equal to its published completion.
func TestCanonicalPuzzleHasUniqueSolution(t *testing.T) {
	grid := []int{
		5, 3, 0, 0, 7, 0, 0, 0, 0,
		6, 0, 0, 1, 9, 5, 0, 0, 0,
		0, 9, 8, 0, 0, 0, 0, 6, 0,
		8, 0, 0, 0, 6, 0, 0, 0, 3,
		4, 0, 0, 8, 0, 3, 0, 0, 1,
		7, 0, 0, 0, 2, 0, 0, 0, 6,
		0, 6, 0, 0, 0, 0, 2, 8, 0,
		0, 0, 0, 4, 1, 9, 0, 0, 5,
		0, 0, 0, 0, 8, 0, 0, 7, 9,
	}
	want := []int{
		5, 3, 4, 6, 7, 8, 9, 1, 2,
		6, 7, 2, 1, 9, 5, 3, 4, 8,
		1, 9, 8, 3, 4, 2, 5, 6, 7,
		8, 5, 9, 7, 6, 1, 4, 2, 3,
		4, 2, 6, 8, 5, 3, 7, 9, 1,
		7, 1, 3, 9, 2, 4, 8, 5, 6,
		9, 6, 1, 5, 3, 7, 2, 8, 4,
		2, 8, 7, 4, 1, 9, 6, 3, 5,
		3, 4, 5, 2, 8, 6, 1, 7, 9,
	}

	p, err := sudoku.NewFromGrid(grid)
	require.NoError(t, err)
	require.Equal(t, 3, p.Order())

	got, ok := p.Next()
	require.True(t, ok)
	require.Equal(t, want, got)

	_, ok = p.Next()
	require.False(t, ok, "canonical puzzle must have exactly one solution")
}

func TestBlankOrder2HasSolutions(t *testing.T) {
	p := sudoku.New(2)
	grid, ok := p.Next()
	require.True(t, ok)
	require.Len(t, grid, 16)
	for _, v := range grid {
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 4)
	}
}

func TestNewFromGridRejectsBadLength(t *testing.T) {
	_, err := sudoku.NewFromGrid(make([]int, 10))
	require.Error(t, err)
}
