// Package core provides the contracts between the obseq engine and its two
// client-supplied collaborators: the element traversal and the cost algebra.
//
// Overview:
//
//   - Elements are client-owned and referenced by non-negative integer
//     Handles — the engine never stores, copies, or inspects an element.
//   - Traversal is the client's doubly-linked walk; None stands for "off
//     either end" and doubles as "give me the first/last element".
//   - View bounds a Traversal with two sentinel positions, Start and End,
//     so engine loops compare against unique values instead of branching on
//     absence at every step.
//   - Algebra builds group costs from elements and partition (total) costs
//     from group costs, and orders costs with Less. Mirror and Monotone are
//     optional capability interfaces for asymmetric algebras and for the
//     pruning oracle.
//
// Handles:
//
//   - Any non-negative int is a valid element handle; negative values are
//     reserved (None = -1, Start = -2, End = -3).
//   - Handles must stay stable for as long as the element is part of the
//     sequence; a slice index into a client arena is the intended shape.
//
// Mirror semantics:
//
//   - The engine grows groups in both directions. An algebra only has to
//     supply the rightward primitives (ExtendRight, Append); the package
//     helpers ExtendLeft and Prepend derive the leftward forms by swapping
//     arguments, which is correct exactly when combination is
//     order-symmetric. Asymmetric algebras implement Mirror themselves —
//     results of derived mirrors over an asymmetric algebra are undefined.
//
// Monotone semantics:
//
//   - CannotDecrease(g) == true promises that no extension of the group
//     costed g is ever cheaper than g. The engine uses the promise to stop
//     searching early; a truthful oracle never changes results, it only
//     shortens the search. The default (no Monotone implementation) is
//     false everywhere: always safe, never pruned.
//
// Error handling (sentinel errors):
//
//   - ErrPastStart / ErrPastEnd:
//     panicked (by text) when a walk steps over a sentinel — a client
//     programming error, per the engine's fail-fast contract.
//   - ErrBadHandle:
//     panicked (by text) when a Traversal leaks a negative handle.
//
// Example usage:
//
//	view := core.NewView(trav)
//	for h := view.Next(core.Start); h != core.End; h = view.Next(h) {
//	    // visit every element left to right
//	}
//
// See also:
//
//   - partition.Engine: the windowed DP solver consuming these contracts.
package core
