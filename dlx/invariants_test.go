package dlx

// White-box invariant checks shared by property_test.go and search_test.go.
// Kept in package dlx (not dlx_test) so they can walk the arena directly.

// checkPointerSymmetry verifies that every currently linked node's neighbor
// pointers are mutually consistent. A node hidden by cover keeps its own
// pointers but its neighbors no longer point back at it, so only linked
// nodes are checked: horizontally, the root ring and every option-node's row
// ring (cover never unlinks a cell from its row); vertically, every node on
// each header's ring. After build and after exhaustion this is every node.
func checkPointerSymmetry[L comparable](e *Engine[L]) bool {
	n := len(e.left)
	horiz := func(i int) bool { return e.right[e.left[i]] == i && e.left[e.right[i]] == i }
	vert := func(i int) bool { return e.down[e.up[i]] == i && e.up[e.down[i]] == i }

	for i, steps := rootIndex, 0; ; steps++ {
		if steps > n || !horiz(i) {
			return false
		}
		if i = e.right[i]; i == rootIndex {
			break
		}
	}
	for i := e.itemCount + 1; i < n; i++ {
		if !horiz(i) {
			return false
		}
	}
	for h := 1; h <= e.itemCount; h++ {
		for i, steps := h, 0; ; steps++ {
			if steps > n || !vert(i) {
				return false
			}
			if i = e.down[i]; i == h {
				break
			}
		}
	}

	return true
}

// checkSizeConsistency verifies that for every header, size[h] equals the
// number of option-nodes reachable by walking down from h back to h.
func checkSizeConsistency[L comparable](e *Engine[L]) bool {
	for h := 1; h <= e.itemCount; h++ {
		count := 0
		for i := e.down[h]; i != h; i = e.down[i] {
			count++
		}
		if count != e.size[h] {
			return false
		}
	}

	return true
}

// arenaSnapshot is a deep, comparable copy of the mutable arena state used
// to check that uncover restores the arena exactly, via reflect.DeepEqual-free
// slice comparison.
type arenaSnapshot struct {
	left, right, up, down []int
	size                  []int
}

func snapshotArena[L comparable](e *Engine[L]) arenaSnapshot {
	return arenaSnapshot{
		left:  append([]int(nil), e.left...),
		right: append([]int(nil), e.right...),
		up:    append([]int(nil), e.up...),
		down:  append([]int(nil), e.down...),
		size:  append([]int(nil), e.size...),
	}
}

func sameArena(a, b arenaSnapshot) bool {
	return intSliceEqual(a.left, b.left) &&
		intSliceEqual(a.right, b.right) &&
		intSliceEqual(a.up, b.up) &&
		intSliceEqual(a.down, b.down) &&
		intSliceEqual(a.size, b.size)
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
