// Package partition implements the windowed dynamic-programming solver over
// a client sequence and cost algebra.
//
// This file declares the cut designators, the per-element table entry, and
// the package's sentinel errors.
//
// Errors:
//
//	ErrNilTraversal   - New was given a nil traversal.
//	ErrNilAlgebra     - New or SetAlgebra was given a nil algebra.
//	ErrNotSolved      - Interval was called before a successful Solve.
//	ErrForeignElement - Interval was asked about a handle outside the sequence.
package partition

import (
	"errors"

	"github.com/katalvlaran/obseq/core"
)

// Sentinel errors for the partition engine.
var (
	// ErrNilTraversal indicates a nil core.Traversal was passed to New.
	ErrNilTraversal = errors.New("partition: traversal is nil")

	// ErrNilAlgebra indicates a nil core.Algebra was passed to New or SetAlgebra.
	ErrNilAlgebra = errors.New("partition: algebra is nil")

	// ErrNotSolved indicates Interval was called with no solve in effect.
	ErrNotSolved = errors.New("partition: sequence not solved")

	// ErrForeignElement indicates the queried handle has no entry in either
	// window — it is not an element of the solved sequence.
	ErrForeignElement = errors.New("partition: element not in sequence")
)

// CutSide tells which side of an element a certified cut lies on.
type CutSide int

const (
	// CutLeft marks the boundary just before the element: a group starts there.
	CutLeft CutSide = iota

	// CutRight marks the boundary just after the element: a group ends there.
	CutRight
)

// String returns "left" or "right".
func (s CutSide) String() string {
	if s == CutLeft {
		return "left"
	}
	return "right"
}

// node is the engine-maintained table entry for one element (or sentinel).
//
// The prefix half is valid only while the element sits at-or-left of head:
// leftIndex is the element's position counted from the sequence start,
// prefixCost the cheapest partition of everything through the element, and
// prefixCut the element ending the group before the element's own group in
// that partition (Start when the element's group is the first). The suffix
// half mirrors all three from the right end.
type node struct {
	leftIndex  int
	prefixCost core.Cost
	prefixCut  core.Handle
	hasPrefix  bool

	rightIndex int
	suffixCost core.Cost
	suffixCut  core.Handle
	hasSuffix  bool
}
