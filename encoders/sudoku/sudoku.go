// Package sudoku encodes an order-n Sudoku puzzle (an n²×n² grid, n×n
// sub-boxes) as an exact-cover instance and decodes an emitted solution back
// into a filled grid.
//
// The four Sudoku constraints — one value per cell, one of each value per
// row, per column, per box — become four disjoint item ranges, and each
// candidate "place value v at (row, col)" becomes one option touching
// exactly one item from each range. A classic 9×9 puzzle is the n=3 case:
// 4·81 = 324 items, up to 729 options.
package sudoku

import (
	"fmt"

	"github.com/tveness/dlx-go/dlx"
)

// Placement identifies one option: the value placed at (Row, Col), both
// 1-indexed.
type Placement struct {
	Row, Col, Val int
}

// Puzzle wraps the exact-cover encoding of an order-n Sudoku grid.
type Puzzle struct {
	n int // sub-box edge length; grid is N=n*n on a side
	N int
	e *dlx.Engine[Placement]
}

// New builds the constraint matrix for a blank order-n puzzle: item ranges
// [1, N²] cell, (N², 2N²] row, (2N², 3N²] col, (3N², 4N²] box, each holding
// N² items, for a total of 4N² items and up to N³ options.
func New(n int) *Puzzle {
	N := n * n
	e := dlx.New[Placement](4 * N * N)

	for row := 1; row <= N; row++ {
		for col := 1; col <= N; col++ {
			for val := 1; val <= N; val++ {
				cellCon := col + (row-1)*N
				rowCon := N*N + N*(row-1) + val
				colCon := 2*N*N + N*(col-1) + val
				box := (col-1)/n + n*((row-1)/n)
				boxCon := 3*N*N + N*box + val

				// Only the encoder ever builds these options, from a
				// bounded triple loop: an invalid item index here would be
				// an arithmetic bug in this function, not caller input.
				if _, err := e.AddOption(Placement{Row: row, Col: col, Val: val}, []int{cellCon, rowCon, colCon, boxCon}); err != nil {
					panic(fmt.Sprintf("sudoku: internal encoding error at R%dC%d#%d: %v", row, col, val, err))
				}
			}
		}
	}

	return &Puzzle{n: n, N: N, e: e}
}

// NewFromGrid builds a puzzle of the appropriate order for grid (a
// row-major, N²-length slice with 0 marking a blank cell) and restricts each
// filled cell to its single given placement by never adding the other N-1
// candidate values at that cell in the first place — equivalent to
// pre-selecting that option before search begins.
func NewFromGrid(grid []int) (*Puzzle, error) {
	total := len(grid)
	n := isqrtIsqrt(total)
	if n == 0 || n*n*n*n != total {
		return nil, fmt.Errorf("sudoku: grid length %d is not a fourth power", total)
	}

	N := n * n
	e := dlx.New[Placement](4 * N * N)

	for row := 1; row <= N; row++ {
		for col := 1; col <= N; col++ {
			given := grid[(row-1)*N+(col-1)]

			for val := 1; val <= N; val++ {
				if given != 0 && val != given {
					continue
				}
				cellCon := col + (row-1)*N
				rowCon := N*N + N*(row-1) + val
				colCon := 2*N*N + N*(col-1) + val
				box := (col-1)/n + n*((row-1)/n)
				boxCon := 3*N*N + N*box + val

				if _, err := e.AddOption(Placement{Row: row, Col: col, Val: val}, []int{cellCon, rowCon, colCon, boxCon}); err != nil {
					panic(fmt.Sprintf("sudoku: internal encoding error at R%dC%d#%d: %v", row, col, val, err))
				}
			}
		}
	}

	return &Puzzle{n: n, N: N, e: e}, nil
}

// isqrtIsqrt returns n such that n*n*n*n == total, or 0 if no such integer
// exists.
func isqrtIsqrt(total int) int {
	for n := 1; n*n*n*n <= total; n++ {
		if n*n*n*n == total {
			return n
		}
	}
	return 0
}

// Next returns the next solved grid (row-major, N²-length, values in
// [1, N]) and true, or (nil, false) once every solution has been
// enumerated.
func (p *Puzzle) Next() ([]int, bool) {
	sol, ok := p.e.NextSolution()
	if !ok {
		return nil, false
	}

	grid := make([]int, p.N*p.N)
	for _, pl := range sol {
		grid[(pl.Row-1)*p.N+(pl.Col-1)] = pl.Val
	}
	return grid, true
}

// Order returns the puzzle's sub-box edge length n (grid side is n²).
func (p *Puzzle) Order() int { return p.n }

// Engine returns the underlying exact-cover engine, for callers that want
// to inspect or export the constraint matrix directly (see [dlx.Engine.DOT]).
func (p *Puzzle) Engine() *dlx.Engine[Placement] { return p.e }

// Pretty renders a solved N²-length grid with box-separating rules.
func Pretty(grid []int) string {
	N := isqrt(len(grid))
	n := isqrt(N)

	out := ""
	for i := 0; i < N; i++ {
		out += " "
		for j := 0; j < N; j++ {
			v := grid[i*N+j]
			if v == 0 {
				out += "  "
			} else {
				out += fmt.Sprintf("%d ", v)
			}
			if (j+1)%n == 0 && j < N-1 {
				out += "║ "
			}
		}
		if i < N-1 {
			out += "\n"
		}
		if (i+1)%n == 0 && i < N-1 {
			out += "\n"
		}
	}
	return out
}

func isqrt(x int) int {
	for r := 1; r*r <= x; r++ {
		if r*r == x {
			return r
		}
	}
	return 0
}
