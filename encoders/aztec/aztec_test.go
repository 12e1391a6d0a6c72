package aztec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tveness/dlx-go/encoders/aztec"
)

// TestOrderOneHasTwoTilings checks the smallest case: the order-1 Aztec
// diamond (four cells — at order 1 the diamond shape is simply a 2x2
// square) has exactly 2 domino tilings.
func TestOrderOneHasTwoTilings(t *testing.T) {
	d := aztec.New(1)
	require.Equal(t, 1, d.Order())

	var tilings [][]aztec.Domino
	for {
		sol, ok := d.Next()
		if !ok {
			break
		}
		require.Len(t, sol, 2)
		tilings = append(tilings, sol)
	}

	require.Len(t, tilings, 2)
}

func TestOrderTwoTilingsCoverEverySquare(t *testing.T) {
	d := aztec.New(2)
	total := 2 * 2 * 3

	count := 0
	for {
		sol, ok := d.Next()
		if !ok {
			break
		}
		count++

		covered := make(map[int]bool)
		for _, dom := range sol {
			require.False(t, covered[dom.A])
			require.False(t, covered[dom.B])
			covered[dom.A] = true
			covered[dom.B] = true
		}
		require.Len(t, covered, total)
	}
	require.Greater(t, count, 0)
}
