// Package aztec encodes domino tilings of an order-n Aztec diamond as an
// exact-cover instance: every unit square must be covered by exactly one
// domino, and each option is a horizontal or vertical domino spanning two
// adjacent squares.
//
// Squares are numbered left-to-right, top-to-bottom, 1-indexed, across the
// diamond's 2n(n+1) cells: e.g. for n=1,
//
//	   1  2
//	   3  4
package aztec

import (
	"fmt"

	"github.com/tveness/dlx-go/dlx"
)

// Domino is a pair of adjacent square numbers covered by one tile.
type Domino struct {
	A, B int
}

// Diamond wraps the exact-cover encoding of an order-n Aztec diamond.
type Diamond struct {
	n int
	e *dlx.Engine[Domino]
}

// New builds the constraint matrix for an order-n Aztec diamond: one item
// per square (2n(n+1) total), one option per horizontal or vertical domino
// placement.
func New(n int) *Diamond {
	max := 2 * n * (n + 1)
	e := dlx.New[Domino](max)

	rowEnds := make(map[int]bool, 2*n)
	for x := 1; x <= n; x++ {
		rowEnds[x*(x+1)] = true
		rowEnds[max-x*(x-1)] = true
	}

	add := func(a, b int) {
		if _, err := e.AddOption(Domino{A: a, B: b}, []int{a, b}); err != nil {
			panic(fmt.Sprintf("aztec: internal encoding error for domino (%d,%d): %v", a, b, err))
		}
	}

	// Horizontal dominoes: every adjacent pair within a row.
	for x := 1; x <= max; x++ {
		if !rowEnds[x] {
			add(x, x+1)
		}
	}

	// Vertical dominoes, rows 1..n-1 and their mirror image below the
	// diamond's midline.
	for j := 1; j <= n-1; j++ {
		for i := 1; i <= 2*j; i++ {
			pos1 := j*(j-1) + i
			pos2 := pos1 + 2*j + 1
			add(pos1, pos2)

			mpos1 := max - pos1 + 1
			mpos2 := max - pos2 + 1
			add(mpos2, mpos1)
		}
	}

	// The widest row (the diamond's middle band) pairs directly with the
	// row below it.
	finalMin := n*(n-1) + 1
	finalMax := finalMin + 2*n - 1
	for x := finalMin; x <= finalMax; x++ {
		add(x, x+2*n)
	}

	return &Diamond{n: n, e: e}
}

// Next returns the dominoes of the next tiling and true, or (nil, false)
// once every tiling has been enumerated.
func (d *Diamond) Next() ([]Domino, bool) {
	return d.e.NextSolution()
}

// Order returns the diamond's order n.
func (d *Diamond) Order() int { return d.n }

// Engine returns the underlying exact-cover engine, for callers that want
// to inspect or export the constraint matrix directly (see [dlx.Engine.DOT]).
func (d *Diamond) Engine() *dlx.Engine[Domino] { return d.e }
