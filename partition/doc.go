// Package partition provides the obseq solver: an incremental engine that
// splits a client-owned, doubly-traversable sequence into contiguous groups
// of minimum total cost under a pluggable cost algebra.
//
// Overview:
//
//   - The engine keeps two partial dynamic-programming tables: the cheapest
//     prefix partition ending at each element visited from the left (through
//     head), and the cheapest suffix partition starting at each element
//     visited from the right (through tail). Both grow on demand, one
//     element per expansion, each expansion scanning its own window for the
//     best group start (or end) and caching the winning cut.
//   - Solve grows the windows toward each other, then searches the
//     doubly-covered overlap for one certified cut and caches it.
//   - Interval recovers any element's group by walking the cached cut chains
//     outward from the certified cut — O(groups walked), with O(1) ordering
//     comparisons through the lazily assigned positional indices.
//   - NotifyAfter/NotifyBefore shrink the windows to the trustworthy region
//     after an edit, so the next Solve redoes only the damaged part.
//
// When to use:
//
//   - Line and page breaking, request batching, packet framing — any ordered
//     stream chunked under an additive cost model, re-optimized after edits
//     near one end without re-solving the whole stream.
//
// Algorithm outline (Solve):
//
//  1. No-op while the cached cut is still valid; an empty sequence solves
//     trivially.
//  2. Close the gap: alternately expandHead/expandTail until the windows
//     physically overlap — every element now has at least one table entry.
//  3. Search the overlap: score each boundary with the larger of the two
//     locally optimal totals meeting there, track the best under strict
//     Less (first found wins ties), and keep one running group cost for the
//     entire overlap. Growth alternates tail-then-head until either one
//     window spans the sequence — its outer boundary's cached chain is the
//     exact optimum — or the algebra's Monotone oracle certifies the best
//     scored boundary early.
//  4. Cache the winning (element, side) pair and mark the sequence solved.
//
// Complexity:
//
//   - Each expansion scans its validated window: O(w) algebra operations for
//     window width w, so a fresh Solve over n elements is O(n·w) and a
//     re-solve after k damaged elements is O(k·w) — bounded by the damaged
//     region times the window width, not by a full fresh solve.
//   - Interval is O(groups between the certified cut and the query).
//
// Error handling (sentinel errors):
//
//   - ErrNilTraversal / ErrNilAlgebra:
//     returned by New and SetAlgebra for missing collaborators.
//   - ErrNotSolved:
//     returned by Interval when no solve is in effect.
//   - ErrForeignElement:
//     returned by Interval for handles outside the sequence.
//   - Walking past a sequence end panics with the core sentinel texts; see
//     the core package.
//
// API reference:
//
//	eng, err := partition.New(trav, algebra)
//	eng.Solve()
//	first, last, err := eng.Interval(h)
//	eng.NotifyAfter(h)   // suffix damage; NotifyBefore mirrors
//	err = eng.SetAlgebra(other) // full invalidation
//
// Thread safety:
//
//   - One owner at a time: Solve, Notify* and SetAlgebra mutate the engine.
//     Interval calls after a completed Solve and before further mutation may
//     run concurrently with each other. Synchronize externally otherwise.
//
// See also:
//
//   - core.Traversal / core.Algebra: the two client-supplied collaborators.
package partition
