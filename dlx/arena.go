package dlx

// hideHoriz splices n out of its horizontal ring. n's own left/right fields
// are left untouched, which is what lets restoreHoriz put n back exactly
// where it was.
func (e *Engine[L]) hideHoriz(n int) {
	l, r := e.left[n], e.right[n]
	e.right[l] = r
	e.left[r] = l
}

// restoreHoriz re-splices n into its horizontal ring, using n's own
// (unchanged) left/right fields to find where it belongs. Callers must
// restore in the exact reverse order of the matching hideHoriz calls.
func (e *Engine[L]) restoreHoriz(n int) {
	l, r := e.left[n], e.right[n]
	e.right[l] = n
	e.left[r] = n
}

// hideVert splices n out of its vertical ring. Mirror of hideHoriz.
func (e *Engine[L]) hideVert(n int) {
	u, d := e.up[n], e.down[n]
	e.down[u] = d
	e.up[d] = u
}

// restoreVert re-splices n into its vertical ring. Mirror of restoreHoriz.
func (e *Engine[L]) restoreVert(n int) {
	u, d := e.up[n], e.down[n]
	e.down[u] = n
	e.up[d] = n
}
