// File: solve.go
// Role: Gap closing, overlap search, and cut certification.
// Determinism:
//   - Boundaries are scored in a fixed order (initial overlap left to right,
//     then tail/head alternation) with strict Less keeping the first winner,
//     so cost-tied inputs always certify the same cut.

package partition

import "github.com/katalvlaran/obseq/core"

// Solve grows the two windows until a globally optimal cut is certified and
// caches it for Interval. It is a no-op while the cached solution is still
// valid, and runs to completion otherwise — there is no cancellation.
//
// Without a Monotone oracle the search runs until one window spans the whole
// sequence, whose DP chain is then the exact optimum; re-solves after damage
// only regrow what the notifications discarded. With a truthful oracle the
// overlap search can stop as soon as the best examined boundary is strictly
// cheaper than the still-growing overlap priced as a single group.
func (e *Engine) Solve() {
	if e.solved {
		return
	}
	if e.view.Rightmost(core.Start) {
		// Empty sequence: the empty partition, no walkable cut.
		e.cutElem, e.cutSide = core.End, CutLeft
		e.solved = true

		return
	}
	e.closeGap()
	e.searchOverlap()
	e.solved = true
}

// overlapped reports whether every element has at least one table entry:
// either tail carries a defined leftIndex (the windows physically overlap)
// or one window alone already spans the sequence.
func (e *Engine) overlapped() bool {
	if e.tail == core.End {
		return e.head != core.Start && e.view.Rightmost(e.head)
	}
	if e.head == core.Start {
		return e.view.Leftmost(e.tail)
	}

	return e.nodes[e.tail].hasPrefix
}

// closeGap alternately expands head and tail until the windows meet.
func (e *Engine) closeGap() {
	for !e.overlapped() {
		if !e.view.Rightmost(e.head) {
			e.expandHead()
			if e.overlapped() {
				return
			}
		}
		if !e.view.Leftmost(e.tail) {
			e.expandTail()
		}
	}
}

// searchOverlap walks the doubly-covered region for the cut to certify.
//
// Every boundary of the overlap is scored with cutScore as it becomes
// available; gap tracks the whole overlap priced as one single group. The
// windows then keep growing alternately (tail first) until either one spans
// the sequence — its outer boundary's chain is the exact optimum — or the
// oracle certifies the best scored boundary early: a partition cutting
// nowhere in the overlap must span it with one group costing at least gap,
// which can only rise further and already loses to the best candidate.
func (e *Engine) searchOverlap() {
	if e.tail == core.End {
		// Only the prefix window exists and it spans the sequence.
		e.cutElem, e.cutSide = e.head, CutRight

		return
	}
	if e.head == core.Start {
		e.cutElem, e.cutSide = e.tail, CutLeft

		return
	}

	var (
		bestScore core.Cost
		bestElem  core.Handle
		bestSide  CutSide
		found     bool
	)
	consider := func(elem core.Handle, side CutSide) {
		score := e.cutScore(elem, side)
		if !found || e.alg.Less(score, bestScore) {
			bestScore, bestElem, bestSide, found = score, elem, side, true
		}
	}

	// Seed: price the current overlap as one group and score each boundary
	// it already exposes, left to right.
	var gap core.Cost
	for s := e.tail; ; s = e.view.Next(s) {
		if s == e.tail {
			gap = e.alg.Single(s)
		} else {
			gap = e.alg.ExtendRight(gap, s)
		}
		consider(s, CutLeft)
		if s == e.head {
			consider(s, CutRight)
			break
		}
	}

	growTail := true
	for {
		if e.view.Leftmost(e.tail) {
			e.cutElem, e.cutSide = e.tail, CutLeft

			return
		}
		if e.view.Rightmost(e.head) {
			e.cutElem, e.cutSide = e.head, CutRight

			return
		}
		if core.CannotDecrease(e.alg, gap) && e.alg.Less(bestScore, gap) {
			e.cutElem, e.cutSide = bestElem, bestSide

			return
		}
		if growTail {
			e.expandTail()
			gap = core.ExtendLeft(e.alg, e.tail, gap)
			consider(e.tail, CutLeft)
		} else {
			e.expandHead()
			gap = e.alg.ExtendRight(gap, e.head)
			consider(e.head, CutRight)
		}
		growTail = !growTail
	}
}

// cutScore is the certified lower bound for cutting beside elem: the larger
// of the two locally optimal totals meeting at that boundary. A sentinel
// side contributes nothing and the other total stands alone.
func (e *Engine) cutScore(elem core.Handle, side CutSide) core.Cost {
	leftEnd, rightStart := e.view.Prev(elem), elem
	if side == CutRight {
		leftEnd, rightStart = elem, e.view.Next(elem)
	}
	if leftEnd == core.Start {
		return e.nodes[rightStart].suffixCost
	}
	if rightStart == core.End {
		return e.nodes[leftEnd].prefixCost
	}

	return core.Max(e.alg, e.nodes[rightStart].suffixCost, e.nodes[leftEnd].prefixCost)
}
