// File: view.go
// Role: Sentinel-bounded walk over a client Traversal.
// Determinism:
//   - Pure delegation; View adds no state beyond the wrapped traversal.
// Concurrency:
//   - Safe for concurrent readers as long as the client traversal is.

package core

// View wraps a raw Traversal so that "no element" in either direction is a
// unique comparable position (Start or End) instead of None. Algorithms walk
// a View with plain == tests against the sentinels; only the boundary
// predicates Leftmost/Rightmost consult the raw traversal.
//
// Stepping past a sentinel (Next(End), Prev(Start)) is a contract violation
// and panics with ErrPastEnd/ErrPastStart.
type View struct {
	t Traversal
}

// NewView wraps t. The zero View is not usable.
func NewView(t Traversal) View {
	return View{t: t}
}

// Next returns the element after h, entering the sequence from Start and
// leaving it at End.
func (v View) Next(h Handle) Handle {
	if h == End {
		panic(ErrPastEnd.Error())
	}
	if h == Start {
		h = None
	}
	return v.wrap(v.t.Next(h), End)
}

// Prev returns the element before h, entering the sequence from End and
// leaving it at Start.
func (v View) Prev(h Handle) Handle {
	if h == Start {
		panic(ErrPastStart.Error())
	}
	if h == End {
		h = None
	}
	return v.wrap(v.t.Prev(h), Start)
}

// Rightmost reports whether no element lies right of h. It uses the raw
// traversal, so Rightmost(Start) reports an empty sequence.
func (v View) Rightmost(h Handle) bool {
	if h == End {
		return true
	}
	if h == Start {
		h = None
	}
	return v.t.Next(h) == None
}

// Leftmost reports whether no element lies left of h.
func (v View) Leftmost(h Handle) bool {
	if h == Start {
		return true
	}
	if h == End {
		h = None
	}
	return v.t.Prev(h) == None
}

// wrap converts the raw traversal's None into the given sentinel and rejects
// reserved handles leaking out of the client traversal.
func (v View) wrap(h, sentinel Handle) Handle {
	if h == None {
		return sentinel
	}
	if h < 0 {
		panic(ErrBadHandle.Error())
	}
	return h
}
