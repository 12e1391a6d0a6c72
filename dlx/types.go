package dlx

// Engine is a Dancing Links solver over a flat, index-addressed node arena.
//
// Node identity is its index into the parallel left/right/up/down/col
// slices. Index 0 is the root header; indices 1..itemCount are the column
// headers (one per item); every later index is an option-node appended by
// AddOption. Nodes are never freed: "removal" during search is pointer
// splicing that leaves the removed node's own four fields untouched, so it
// can be restored exactly where it was.
type Engine[L comparable] struct {
	// left, right, up, down hold neighbor indices for every node in the
	// arena, header and option-node alike.
	left, right, up, down []int

	// col[n] is the column-header index governing node n. For a header
	// node h, col[h] == h.
	col []int

	// size[h] is the number of option-nodes currently linked into header
	// h's vertical ring. Only meaningful for h in [1, itemCount].
	size []int

	// option[n] is the option id that option-node n belongs to, or -1 for
	// header nodes (including the root).
	option []int

	// labels[i] is the caller-supplied tag for option i, in AddOption
	// insertion order.
	labels []L

	itemCount int
	started   bool // true once NextSolution has been called at least once

	// stack is the explicit resumption stack mirroring Algorithm X's
	// recursion: stack[d] records the column covered at depth d and the
	// option-node currently chosen at that depth (the down-ring cursor).
	stack []frame

	// exhausted marks that every depth-first branch has been explored; every
	// call to NextSolution once enumeration is complete observes this and
	// returns (nil, false) without searching.
	exhausted bool

	// firstCall distinguishes "about to search for the first time" from
	// "resuming after a previous emission". Without it, an engine with no
	// items or no options would retreat on its very first call instead of
	// reporting (or failing to find) a solution immediately.
	firstCall bool

	// nodesVisited counts chooseColumn calls (one per search-tree node
	// entered); backtracks counts frames popped, by retreat or at a dead end
	// in NextSolution. Both are plain
	// counters with no I/O of their own — callers that want them logged or
	// correlated with a run ID do that outside this package.
	nodesVisited int
	backtracks   int
}

// Stats is a point-in-time snapshot of search effort, useful for logging or
// benchmarking; it carries no information the caller couldn't derive by
// instrumenting NextSolution itself, but saves every caller from doing so.
type Stats struct {
	NodesVisited int
	Backtracks   int
}

// Stats returns the engine's running totals since construction.
func (e *Engine[L]) Stats() Stats {
	return Stats{NodesVisited: e.nodesVisited, Backtracks: e.backtracks}
}

// frame is one level of the explicit depth-first search stack.
type frame struct {
	col int // header chosen at this depth
	row int // down-ring cursor: the option-node currently tried
}

const rootIndex = 0

// ItemCount returns the number of items (columns) the engine was built
// with.
func (e *Engine[L]) ItemCount() int {
	return e.itemCount
}
