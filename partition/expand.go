// File: expand.go
// Role: Window growth and contraction — the two partial DP tables.
// Determinism:
//   - Candidate scans keep the first-found winner under strict Less, so
//     equal-cost cuts resolve to the cut closest to the new boundary.

package partition

import "github.com/katalvlaran/obseq/core"

// expandHead advances head one element right and fills in that element's
// prefix fields: the cheapest partition of everything through it, found by
// scanning candidate group starts s from the new head back to the sequence
// start while accumulating the group cost s..head incrementally.
//
// Complexity: O(width of the prefix window). Precondition: head is not the
// rightmost position (the view panics otherwise).
func (e *Engine) expandHead() {
	h := e.view.Next(e.head)

	var (
		group, best core.Cost
		cut         core.Handle
		found       bool
	)
	for s := h; s != core.Start; s = e.view.Prev(s) {
		if s == h {
			group = e.alg.Single(s)
		} else {
			group = core.ExtendLeft(e.alg, s, group)
		}
		before := e.view.Prev(s)
		var total core.Cost
		if before == core.Start {
			total = e.alg.Total(group)
		} else {
			total = e.alg.Append(e.nodes[before].prefixCost, group)
		}
		if !found || e.alg.Less(total, best) {
			best, cut, found = total, before, true
		}
	}

	n := e.node(h)
	n.prefixCost = best
	n.prefixCut = cut
	n.hasPrefix = true
	n.leftIndex = e.nodes[e.head].leftIndex + 1
	e.head = h
	e.solved = false
}

// expandTail is the mirror of expandHead: it moves tail one element left and
// fills in that element's suffix fields by scanning candidate group ends
// rightward, growing the group with the algebra's right primitive and
// closing totals with the prepend mirror.
func (e *Engine) expandTail() {
	t := e.view.Prev(e.tail)

	var (
		group, best core.Cost
		cut         core.Handle
		found       bool
	)
	for s := t; s != core.End; s = e.view.Next(s) {
		if s == t {
			group = e.alg.Single(s)
		} else {
			group = e.alg.ExtendRight(group, s)
		}
		after := e.view.Next(s)
		var total core.Cost
		if after == core.End {
			total = e.alg.Total(group)
		} else {
			total = core.Prepend(e.alg, group, e.nodes[after].suffixCost)
		}
		if !found || e.alg.Less(total, best) {
			best, cut, found = total, after, true
		}
	}

	n := e.node(t)
	n.suffixCost = best
	n.suffixCut = cut
	n.hasSuffix = true
	n.rightIndex = e.nodes[e.tail].rightIndex + 1
	e.tail = t
	e.solved = false
}

// Contraction is damage handling and runs after the client already edited
// the sequence, so it must never walk the live traversal — the old window
// layout may no longer exist in it. All four helpers sweep the engine's own
// table instead.

// collapsePrefix clears every prefix entry and parks head back at Start.
func (e *Engine) collapsePrefix() {
	for h, n := range e.nodes {
		if h == core.Start || !n.hasPrefix {
			continue
		}
		n.hasPrefix = false
		n.prefixCost = nil
		n.prefixCut = core.None
		n.leftIndex = -1
		e.drop(h)
	}
	e.head = core.Start
	e.solved = false
}

// collapseSuffix mirrors collapsePrefix.
func (e *Engine) collapseSuffix() {
	for h, n := range e.nodes {
		if h == core.End || !n.hasSuffix {
			continue
		}
		n.hasSuffix = false
		n.suffixCost = nil
		n.suffixCut = core.None
		n.rightIndex = -1
		e.drop(h)
	}
	e.tail = core.End
	e.solved = false
}

// truncatePrefix pulls head back to elem, clearing the prefix entries of
// everything that sat beyond it. The prefix window is contiguous, so the
// entries to clear are exactly those with a larger leftIndex.
// Precondition: elem has a prefix entry.
func (e *Engine) truncatePrefix(elem core.Handle) {
	keep := e.nodes[elem].leftIndex
	for h, n := range e.nodes {
		if !n.hasPrefix || n.leftIndex <= keep {
			continue
		}
		n.hasPrefix = false
		n.prefixCost = nil
		n.prefixCut = core.None
		n.leftIndex = -1
		e.drop(h)
	}
	e.head = elem
	e.solved = false
}

// truncateSuffix mirrors truncatePrefix.
func (e *Engine) truncateSuffix(elem core.Handle) {
	keep := e.nodes[elem].rightIndex
	for h, n := range e.nodes {
		if !n.hasSuffix || n.rightIndex <= keep {
			continue
		}
		n.hasSuffix = false
		n.suffixCost = nil
		n.suffixCut = core.None
		n.rightIndex = -1
		e.drop(h)
	}
	e.tail = elem
	e.solved = false
}
