// Package nqueens encodes the N-Queens problem as an exact-cover instance.
//
// Columns and rows are the two constraints every solution must satisfy
// exactly once. Diagonals are naturally "at most one queen", which Knuth's
// original formulation handles with secondary (optional) items; this engine
// only has primary, exactly-one items, so each diagonal is made primary and
// given one extra "empty diagonal" option that covers nothing but that
// diagonal. A diagonal used by a real queen placement is satisfied by that
// placement's option; every other diagonal is satisfied by its sentinel.
package nqueens

import (
	"fmt"

	"github.com/tveness/dlx-go/dlx"
)

// Square identifies a queen placement, 1-indexed.
type Square struct {
	Row, Col int
}

type option struct {
	square Square // zero value (Row==0) marks a diagonal sentinel
}

// Board wraps the exact-cover encoding of an order-n board.
type Board struct {
	n int
	e *dlx.Engine[option]
}

// New builds the constraint matrix for an n×n board: n column items, n row
// items, (2n-1) rising-diagonal items, and (2n-1) falling-diagonal items,
// for 6n-2 items total. Each of the n² placements is one option touching
// one item from each of the four ranges; each diagonal additionally gets one
// sentinel option touching only itself.
func New(n int) *Board {
	items := 6*n - 2
	e := dlx.New[option](items)

	colBase, rowBase := 0, n
	risingBase := 2 * n     // c - r + n, range [1, 2n-1]
	fallingBase := 4*n - 1  // r + c - 1, range [1, 2n-1]

	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			colCon := colBase + c
			rowCon := rowBase + r
			risingCon := risingBase + (c - r + n)
			fallingCon := fallingBase + (r + c - 1)

			if _, err := e.AddOption(option{square: Square{Row: r, Col: c}}, []int{colCon, rowCon, risingCon, fallingCon}); err != nil {
				panic(fmt.Sprintf("nqueens: internal encoding error at R%dC%d: %v", r, c, err))
			}
		}
	}

	for d := 1; d <= 2*n-1; d++ {
		if _, err := e.AddOption(option{}, []int{risingBase + d}); err != nil {
			panic(fmt.Sprintf("nqueens: internal encoding error on rising sentinel %d: %v", d, err))
		}
		if _, err := e.AddOption(option{}, []int{fallingBase + d}); err != nil {
			panic(fmt.Sprintf("nqueens: internal encoding error on falling sentinel %d: %v", d, err))
		}
	}

	return &Board{n: n, e: e}
}

// Next returns the squares of the next solution's n queens and true, or
// (nil, false) once every solution has been enumerated. Sentinel options
// (empty diagonals) are filtered out of the returned slice.
func (b *Board) Next() ([]Square, bool) {
	sol, ok := b.e.NextSolution()
	if !ok {
		return nil, false
	}

	squares := make([]Square, 0, b.n)
	for _, o := range sol {
		if o.square.Row != 0 {
			squares = append(squares, o.square)
		}
	}
	return squares, true
}

// Engine returns the underlying exact-cover engine, for callers that want
// to inspect or export the constraint matrix directly (see [dlx.Engine.DOT]).
func (b *Board) Engine() *dlx.Engine[option] { return b.e }

// Pretty renders a solution as an n×n board with Q marking each queen.
func Pretty(n int, squares []Square) string {
	occupied := make(map[Square]bool, len(squares))
	for _, s := range squares {
		occupied[s] = true
	}

	out := ""
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			if occupied[Square{Row: r, Col: c}] {
				out += "Q "
			} else {
				out += ". "
			}
		}
		out += "\n"
	}
	return out
}
