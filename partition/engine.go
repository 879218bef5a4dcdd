// File: engine.go
// Role: Engine construction, algebra replacement, and table bookkeeping.
// Concurrency:
//   - One owner at a time. Interval calls after a completed Solve and before
//     further mutation may run concurrently with each other.

package partition

import "github.com/katalvlaran/obseq/core"

// Engine partitions one client sequence. It persists across edits: windows
// shrink under damage notifications and regrow on the next Solve, reusing
// every table entry the damage left intact.
type Engine struct {
	view core.View
	alg  core.Algebra

	// nodes holds table entries for every element currently inside a window,
	// plus the two sentinels (seeded with index -1 so index arithmetic needs
	// no special cases).
	nodes map[core.Handle]*node

	// head is the rightmost element with valid prefix fields; Start while
	// none are validated. tail mirrors from the right.
	head core.Handle
	tail core.Handle

	solved  bool
	cutElem core.Handle
	cutSide CutSide
}

// New creates an engine over the client's traversal and cost algebra.
// The engine holds no elements; it only attaches cost/index fields to the
// handles the traversal yields.
func New(t core.Traversal, a core.Algebra) (*Engine, error) {
	if t == nil {
		return nil, ErrNilTraversal
	}
	if a == nil {
		return nil, ErrNilAlgebra
	}
	e := &Engine{view: core.NewView(t), alg: a}
	e.reset()

	return e, nil
}

// SetAlgebra replaces the cost algebra. Every cached table entry priced by
// the old algebra is meaningless, so both windows collapse and the next
// Solve starts from scratch.
func (e *Engine) SetAlgebra(a core.Algebra) error {
	if a == nil {
		return ErrNilAlgebra
	}
	e.alg = a
	e.reset()

	return nil
}

// reset collapses both windows and drops every table entry.
func (e *Engine) reset() {
	e.nodes = map[core.Handle]*node{
		core.Start: {hasPrefix: true, leftIndex: -1},
		core.End:   {hasSuffix: true, rightIndex: -1},
	}
	e.head = core.Start
	e.tail = core.End
	e.solved = false
	e.cutElem = core.None
}

// node returns h's table entry, creating an empty one on first touch.
func (e *Engine) node(h core.Handle) *node {
	n, ok := e.nodes[h]
	if !ok {
		n = &node{prefixCut: core.None, suffixCut: core.None}
		e.nodes[h] = n
	}

	return n
}

// drop removes h's entry once neither half is valid anymore.
func (e *Engine) drop(h core.Handle) {
	n, ok := e.nodes[h]
	if ok && !n.hasPrefix && !n.hasSuffix {
		delete(e.nodes, h)
	}
}
