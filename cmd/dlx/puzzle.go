package main

import (
	"fmt"
	"strings"

	"github.com/tveness/dlx-go/dlx"
	"github.com/tveness/dlx-go/encoders/aztec"
	"github.com/tveness/dlx-go/encoders/nqueens"
	"github.com/tveness/dlx-go/encoders/sudoku"
	"github.com/tveness/dlx-go/internal/puzzlecfg"
)

// introspector is satisfied by *dlx.Engine[L] for every label type L: DOT
// and Stats don't depend on L, so any encoder's engine can be handed to the
// dot/tui/solve commands through this interface without the commands
// needing to know which label type is underneath.
type introspector interface {
	DOT() string
	Stats() dlx.Stats
}

// runner erases the label type of whichever encoder a config selects, so
// the solve/dot/tui commands can share one code path regardless of puzzle
// kind.
type runner struct {
	kind   string
	next   func() (string, bool)
	engine introspector
}

func newRunner(cfg puzzlecfg.Config) (*runner, error) {
	switch cfg.Kind {
	case "sudoku":
		return newSudokuRunner(cfg)
	case "nqueens":
		return newNQueensRunner(cfg)
	case "aztec":
		return newAztecRunner(cfg)
	default:
		return nil, fmt.Errorf("unknown puzzle kind %q (want sudoku, nqueens, or aztec)", cfg.Kind)
	}
}

func newSudokuRunner(cfg puzzlecfg.Config) (*runner, error) {
	var p *sudoku.Puzzle
	if len(cfg.Grid) > 0 {
		var err error
		p, err = sudoku.NewFromGrid(cfg.Grid)
		if err != nil {
			return nil, err
		}
	} else {
		n := cfg.N
		if n == 0 {
			n = 3
		}
		p = sudoku.New(n)
	}

	return &runner{
		kind: "sudoku",
		next: func() (string, bool) {
			grid, ok := p.Next()
			if !ok {
				return "", false
			}
			return sudoku.Pretty(grid), true
		},
		engine: p.Engine(),
	}, nil
}

func newNQueensRunner(cfg puzzlecfg.Config) (*runner, error) {
	n := cfg.N
	if n == 0 {
		return nil, fmt.Errorf("nqueens: config field \"n\" is required")
	}
	b := nqueens.New(n)

	return &runner{
		kind: "nqueens",
		next: func() (string, bool) {
			sol, ok := b.Next()
			if !ok {
				return "", false
			}
			return nqueens.Pretty(n, sol), true
		},
		engine: b.Engine(),
	}, nil
}

func newAztecRunner(cfg puzzlecfg.Config) (*runner, error) {
	order := cfg.Order
	if order == 0 {
		return nil, fmt.Errorf("aztec: config field \"order\" is required")
	}
	d := aztec.New(order)

	return &runner{
		kind: "aztec",
		next: func() (string, bool) {
			sol, ok := d.Next()
			if !ok {
				return "", false
			}
			var b strings.Builder
			for _, dom := range sol {
				fmt.Fprintf(&b, "(%d,%d) ", dom.A, dom.B)
			}
			return strings.TrimSpace(b.String()), true
		},
		engine: d.Engine(),
	}, nil
}
