// Package core defines the collaborator contracts of the obseq engine:
// element handles, the client-supplied Traversal, the sentinel-bounded
// View, and the cost Algebra with its optional capability extensions.
//
// This file declares Handle, the sentinel positions, Traversal, and the
// sentinel errors shared by the package.
//
// Errors:
//
//	ErrPastStart - a walk stepped left of the Start sentinel.
//	ErrPastEnd   - a walk stepped right of the End sentinel.
//	ErrBadHandle - a traversal produced a negative (reserved) handle.
package core

import "errors"

// Sentinel errors for core traversal operations. Walks past a sentinel are
// client programming errors, so View panics with the error text rather than
// returning it.
var (
	// ErrPastStart indicates an attempt to move left of the Start sentinel.
	ErrPastStart = errors.New("core: traversal stepped before sequence start")

	// ErrPastEnd indicates an attempt to move right of the End sentinel.
	ErrPastEnd = errors.New("core: traversal stepped past sequence end")

	// ErrBadHandle indicates a Traversal returned a negative handle, which
	// collides with the reserved None/Start/End values.
	ErrBadHandle = errors.New("core: traversal returned a reserved handle")
)

// Handle identifies one client-owned element. Clients assign handles from
// their own arena or index space; any non-negative value is valid. Negative
// values are reserved for None and the two sentinel positions.
type Handle int

const (
	// None is the absence value of the raw Traversal: Next(None) yields the
	// first element, Prev(None) the last, and either returns None when the
	// walk runs off the sequence.
	None Handle = -1

	// Start is the sentinel position before the first element. Only View
	// produces and accepts it; raw traversals never see it.
	Start Handle = -2

	// End is the sentinel position after the last element.
	End Handle = -3
)

// Traversal is the client's doubly-linked walk over its own elements.
//
// Next(None) must yield the leftmost element and Prev(None) the rightmost;
// both return None once the walk leaves the sequence. The two directions
// must agree (Prev(Next(h)) == h for every element h), and handles must be
// non-negative. The engine never stores elements — only the handles the
// traversal hands out.
type Traversal interface {
	// Next returns the element after h, or None at the right end.
	Next(h Handle) Handle

	// Prev returns the element before h, or None at the left end.
	Prev(h Handle) Handle
}
