package nqueens_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tveness/dlx-go/encoders/nqueens"
)

// TestFourQueensHasTwoSolutions checks the classic small case: N=4 has
// exactly 2 solutions.
func TestFourQueensHasTwoSolutions(t *testing.T) {
	b := nqueens.New(4)

	var solutions [][]nqueens.Square
	for {
		sol, ok := b.Next()
		if !ok {
			break
		}
		require.Len(t, sol, 4)
		solutions = append(solutions, sol)
	}

	require.Len(t, solutions, 2)
	for _, sol := range solutions {
		requireValidPlacement(t, 4, sol)
	}
}

func requireValidPlacement(t *testing.T, n int, sol []nqueens.Square) {
	t.Helper()
	cols := make(map[int]bool)
	rows := make(map[int]bool)
	rising := make(map[int]bool)
	falling := make(map[int]bool)

	for _, sq := range sol {
		require.False(t, cols[sq.Col], "column %d used twice", sq.Col)
		require.False(t, rows[sq.Row], "row %d used twice", sq.Row)
		require.False(t, rising[sq.Row-sq.Col], "rising diagonal reused")
		require.False(t, falling[sq.Row+sq.Col], "falling diagonal reused")
		cols[sq.Col] = true
		rows[sq.Row] = true
		rising[sq.Row-sq.Col] = true
		falling[sq.Row+sq.Col] = true
	}
}

func TestSmallBoardsMatchKnownCounts(t *testing.T) {
	known := map[int]int{1: 1, 2: 0, 3: 0, 5: 10, 6: 4}
	for n, want := range known {
		count := 0
		b := nqueens.New(n)
		for {
			if _, ok := b.Next(); !ok {
				break
			}
			count++
		}
		require.Equal(t, want, count, "N=%d", n)
	}
}
