// SPDX-License-Identifier: MIT
// Package dlx: sentinel error set.
//
// Error policy (matches the rest of the module):
//   - Only sentinel variables are exposed at the package level.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at the definition
//     site; context is attached with %w at the call site instead.
//   - The engine never panics on caller-triggered conditions (bad options,
//     frozen builder). A panic out of this package indicates a broken
//     internal invariant — a bug in the engine, not a usage error.
package dlx

import "errors"

// ErrInvalidOption is returned by AddOption when the item list is empty,
// contains an index outside [1, itemCount], or repeats an item index.
var ErrInvalidOption = errors.New("dlx: invalid option")

// ErrBuilderFrozen is returned by AddOption once NextSolution has been
// called at least once. The engine treats the matrix as finalized the
// moment search begins; it never interleaves mutation with search.
var ErrBuilderFrozen = errors.New("dlx: builder frozen, search already started")
