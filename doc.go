// Package obseq is an in-memory engine for chunking an ordered sequence
// into contiguous groups of minimum total cost — and for re-chunking it
// cheaply after edits, instead of recomputing everything from scratch.
//
// 🚀 What is obseq?
//
//	A small, pure-Go library that brings together:
//		• Core contracts: a doubly-linked traversal over client-owned elements,
//		  and a pluggable cost algebra describing how group costs accumulate
//		• Windowed dynamic programming: two partial tables grown on demand from
//		  each end of the sequence, never owning the elements themselves
//		• Cached cut chains: once solved, any element's group is recovered in
//		  O(groups walked), with O(1) ordering comparisons
//		• Damage tracking: clients report "everything after X changed" and the
//		  next solve redoes only what the edit invalidated
//
// ✨ Why choose obseq?
//
//   - Client-owned data – the engine stores costs and indices, never elements
//   - Pluggable economics – line breaking, request batching, packet framing:
//     any additive cost model plugs in through one interface
//   - Incremental by design – prefix/suffix damage bounds re-optimization
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	core/      — Handle, Traversal, sentinel-bounded View, Cost & Algebra contracts
//	partition/ — the Engine: Solve, Interval, NotifyAfter/NotifyBefore, SetAlgebra
//
// Quick ASCII example:
//
//	[ e1 e2 e3 | e4 e5 | e6 ]
//
//	three groups over six elements; the bars are the cut points the engine
//	certifies and caches.
//
// Dive into the package docs for the algorithm outline, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/obseq
package obseq
