// File: interval.go
// Role: Group reconstruction by walking the cached cut chains.
// Complexity:
//   - O(number of groups between the certified cut and the queried element),
//     never O(sequence length).

package partition

import "github.com/katalvlaran/obseq/core"

// Interval returns the first and last element of the group containing x in
// the partition certified by the last Solve. It walks the cached cut chain
// outward from the certified cut, one group per step.
//
// Calling Interval with no solve in effect returns ErrNotSolved; a handle
// that is not part of the sequence returns ErrForeignElement.
func (e *Engine) Interval(x core.Handle) (first, last core.Handle, err error) {
	if !e.solved {
		return core.None, core.None, ErrNotSolved
	}
	if x < 0 {
		return core.None, core.None, ErrForeignElement
	}
	if _, ok := e.nodes[x]; !ok {
		return core.None, core.None, ErrForeignElement
	}

	// b is the first element right of the certified cut.
	b := e.cutElem
	if e.cutSide == CutRight {
		b = e.view.Next(e.cutElem)
	}
	if b == core.End || e.precedes(x, b) {
		first, last = e.walkLeft(x, b)
	} else {
		first, last = e.walkRight(x, b)
	}

	return first, last, nil
}

// walkLeft follows the prefix cut chain leftward from the cut until it
// reaches x's group. Precondition: x lies strictly left of b.
func (e *Engine) walkLeft(x, b core.Handle) (core.Handle, core.Handle) {
	cur := e.view.Prev(b)
	for {
		before := e.nodes[cur].prefixCut
		start := e.view.Next(before)
		if before == core.Start || !e.precedes(x, start) {
			return start, cur
		}
		cur = before
	}
}

// walkRight follows the suffix cut chain rightward from the cut until it
// reaches x's group. Precondition: x lies at-or-right of b.
func (e *Engine) walkRight(x, b core.Handle) (core.Handle, core.Handle) {
	cur := b
	for {
		after := e.nodes[cur].suffixCut
		if after == core.End || e.precedes(x, after) {
			return cur, e.view.Prev(after)
		}
		cur = after
	}
}

// precedes reports whether a lies strictly left of b in O(1), via leftIndex
// when both carry prefix entries and inverted rightIndex when both carry
// suffix entries. Sound only for the comparisons the walks perform: the two
// handles are never both outside the most recently solved overlap.
func (e *Engine) precedes(a, b core.Handle) bool {
	na, nb := e.nodes[a], e.nodes[b]
	if na.hasPrefix && nb.hasPrefix {
		return na.leftIndex < nb.leftIndex
	}
	if na.hasSuffix && nb.hasSuffix {
		return na.rightIndex > nb.rightIndex
	}
	// Mixed coverage: a prefix-only entry sits left of the suffix window,
	// a suffix-only entry right of the prefix window.
	return na.hasPrefix
}
