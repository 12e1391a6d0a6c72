// Package dlx implements Knuth's Algorithm X via Dancing Links (DLX): a
// sparse, toroidal, doubly-linked incidence matrix and the recursive
// non-deterministic search that covers/uncovers columns in a way that
// restores the matrix on backtrack.
//
// Given a finite set of items and a finite set of options, where each
// option covers a subset of the items, Engine enumerates every subset of
// options that partitions the items — each item covered exactly once.
//
// # Building a problem
//
//	e := dlx.New[string](7)
//	e.AddOption("O1", []int{3, 5})
//	e.AddOption("O2", []int{1, 4, 7})
//	e.AddOption("O3", []int{2, 3, 6})
//	e.AddOption("O4", []int{1, 4, 6})
//	e.AddOption("O5", []int{2, 7})
//	e.AddOption("O6", []int{4, 5, 7})
//
//	for {
//	    sol, ok := e.NextSolution()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(sol) // [O4 O5 O1]
//	}
//
// # Scope
//
// Engine is the core solver only. Encoding a concrete puzzle (Sudoku,
// N-Queens, Aztec diamond tilings, ...) into items and options is the job of
// the encoders/ packages built on top of it; Engine itself knows nothing
// about cells, boards or tiles.
//
// Engine is single-threaded and synchronous: it performs no I/O, holds no
// locks, and suspends only between calls to NextSolution. Two concurrent
// searches require two independent Engine values.
package dlx
