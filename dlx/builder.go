package dlx

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// New allocates an Engine for an exact-cover problem over itemCount items.
// Items are addressed 1-based in [1, itemCount]. An engine with itemCount
// == 0 has no columns at all: the root's horizontal ring is empty from the
// start, so the very first NextSolution call immediately yields the unique
// empty solution, with nothing left to cover.
//
// Complexity: O(itemCount).
func New[L comparable](itemCount int) *Engine[L] {
	n := itemCount + 1 // root + one header per item

	e := &Engine[L]{
		left:      make([]int, n),
		right:     make([]int, n),
		up:        make([]int, n),
		down:      make([]int, n),
		col:       make([]int, n),
		size:      make([]int, n),
		option:    make([]int, n),
		itemCount: itemCount,
		firstCall: true,
	}

	for h := 0; h < n; h++ {
		// Each header starts self-linked vertically (empty column) and
		// chained horizontally into the root's ring in item order.
		e.up[h] = h
		e.down[h] = h
		e.col[h] = h
		e.option[h] = -1
		e.left[h] = (h - 1 + n) % n
		e.right[h] = (h + 1) % n
	}

	return e
}

// AddOption appends a row: a new option labeled label, covering exactly the
// 1-based item indices in items. items must be non-empty, contain only
// indices in [1, ItemCount()], and contain no repeats; any violation
// returns ErrInvalidOption and leaves the engine otherwise unchanged.
//
// AddOption fails with ErrBuilderFrozen once NextSolution has been called;
// the matrix is considered finalized the moment search begins.
//
// Complexity: O(len(items)) amortized appends plus O(len(items)) for
// duplicate detection.
func (e *Engine[L]) AddOption(label L, items []int) (*Engine[L], error) {
	if e.started {
		return e, fmt.Errorf("AddOption(%v): %w", label, ErrBuilderFrozen)
	}
	if err := e.validateOption(items); err != nil {
		return e, fmt.Errorf("AddOption(%v): %w", label, err)
	}

	optionID := len(e.labels)
	e.labels = append(e.labels, label)

	first := -1
	prev := -1
	for _, item := range items {
		node := len(e.left)
		e.left = append(e.left, 0)
		e.right = append(e.right, 0)
		e.up = append(e.up, 0)
		e.down = append(e.down, 0)
		e.col = append(e.col, item)
		e.option = append(e.option, optionID)

		// Wire into the column's vertical ring at the tail (above the
		// header, i.e. between the header's current up-neighbor and the
		// header itself).
		tail := e.up[item]
		e.up[node] = tail
		e.down[node] = item
		e.down[tail] = node
		e.up[item] = node
		e.size[item]++

		// Wire into the row's horizontal ring.
		if first == -1 {
			first = node
			e.left[node] = node
			e.right[node] = node
		} else {
			e.left[node] = prev
			e.right[node] = first
			e.right[prev] = node
			e.left[first] = node
		}
		prev = node
	}

	return e, nil
}

// validateOption checks the InvalidOption conditions without mutating the
// engine: empty list, out-of-range index, or a repeated index. Uses a
// bitset sized to itemCount+1, allocated fresh on each call, rather than a
// map.
func (e *Engine[L]) validateOption(items []int) error {
	if len(items) == 0 {
		return ErrInvalidOption
	}

	seen := bitset.New(uint(e.itemCount + 1))
	for _, item := range items {
		if item < 1 || item > e.itemCount {
			return ErrInvalidOption
		}
		if seen.Test(uint(item)) {
			return ErrInvalidOption
		}
		seen.Set(uint(item))
	}

	return nil
}
