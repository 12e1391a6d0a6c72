package dlx

import "iter"

// NextSolution runs (or resumes) Algorithm X until it produces the next
// exact cover, returning the labels of the chosen options in the order they
// were pushed onto the search stack (push order, not sorted), and true. It
// returns (nil, false) once every solution has been enumerated, and
// continues to return (nil, false) idempotently on every subsequent call.
//
// Calling NextSolution freezes the builder: subsequent AddOption calls fail
// with ErrBuilderFrozen.
//
// Complexity: amortized over the whole enumeration, proportional to the
// total work Algorithm X performs; a single call can do anywhere from O(1)
// to O(search tree) work depending on how much backtracking is needed to
// reach the next leaf.
func (e *Engine[L]) NextSolution() ([]L, bool) {
	e.started = true
	if e.exhausted {
		return nil, false
	}

	if e.firstCall {
		e.firstCall = false
	} else if !e.retreat() {
		e.exhausted = true
		return nil, false
	}

	for {
		if e.right[rootIndex] == rootIndex {
			return e.materialize(), true
		}

		c := e.chooseColumn()
		e.nodesVisited++
		e.cover(c)
		r := e.down[c]
		e.stack = append(e.stack, frame{col: c, row: r})

		if r == c {
			// No option covers c: dead branch. Pop immediately (there is
			// no row to uncoverRow here) and backtrack through whatever
			// is left on the stack.
			e.stack = e.stack[:len(e.stack)-1]
			e.uncover(c)
			e.backtracks++
			if !e.retreat() {
				e.exhausted = true
				return nil, false
			}
			continue
		}

		e.coverRow(r)
	}
}

// Solutions returns a range-over-func iterator that yields every remaining
// solution exactly once, in the same order NextSolution would. It is the
// idiomatic entry point for `for sol := range e.Solutions() { ... }`.
func (e *Engine[L]) Solutions() iter.Seq[[]L] {
	return func(yield func([]L) bool) {
		for {
			sol, ok := e.NextSolution()
			if !ok {
				return
			}
			if !yield(sol) {
				return
			}
		}
	}
}

// retreat advances the top frame of the search stack to its next candidate
// row, backtracking through fully-exhausted frames until it finds one with
// a remaining option or the stack empties. It returns false when the
// stack empties, meaning enumeration is complete.
//
// Every frame on the stack satisfies the invariant that its .row is
// currently "selected" (coverRow has been applied to it); retreat's first
// act on a frame is always to undo that before advancing or popping.
func (e *Engine[L]) retreat() bool {
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		e.uncoverRow(top.row)
		top.row = e.down[top.row]
		if top.row != top.col {
			e.coverRow(top.row)
			return true
		}
		e.stack = e.stack[:len(e.stack)-1]
		e.uncover(top.col)
		e.backtracks++
	}

	return false
}

// cover removes column c from the header ring and hides every other cell
// of every row that touches c, shrinking those cells' columns' sizes.
func (e *Engine[L]) cover(c int) {
	e.hideHoriz(c)
	for i := e.down[c]; i != c; i = e.down[i] {
		for j := e.right[i]; j != i; j = e.right[j] {
			e.hideVert(j)
			e.size[e.col[j]]--
		}
	}
}

// uncover is the exact mirror of cover: it restores rows walking up and
// left, in the reverse order cover hid them, then restores c itself last.
func (e *Engine[L]) uncover(c int) {
	for i := e.up[c]; i != c; i = e.up[i] {
		for j := e.left[i]; j != i; j = e.left[j] {
			e.restoreVert(j)
			e.size[e.col[j]]++
		}
	}
	e.restoreHoriz(c)
}

// coverRow covers the column of every other cell in row r (r's own column
// was already covered by the caller before r was chosen).
func (e *Engine[L]) coverRow(r int) {
	for j := e.right[r]; j != r; j = e.right[j] {
		e.cover(e.col[j])
	}
}

// uncoverRow is coverRow's mirror, walking left to restore in reverse order.
func (e *Engine[L]) uncoverRow(r int) {
	for j := e.left[r]; j != r; j = e.left[j] {
		e.uncover(e.col[j])
	}
}

// chooseColumn implements the MRV heuristic: scan the live header ring and
// return the column with the smallest size, breaking ties by encounter
// order (first minimum wins). Callers must only invoke this when the
// header ring is non-empty.
func (e *Engine[L]) chooseColumn() int {
	best := e.right[rootIndex]
	bestSize := e.size[best]
	for c := e.right[best]; c != rootIndex; c = e.right[c] {
		if e.size[c] < bestSize {
			best = c
			bestSize = e.size[c]
		}
	}

	return best
}

// materialize reads the current stack into a solution slice in push order.
func (e *Engine[L]) materialize() []L {
	sol := make([]L, len(e.stack))
	for i, f := range e.stack {
		sol[i] = e.labels[e.option[f.row]]
	}

	return sol
}
