// File: algebra.go
// Role: The cost algebra contract and its optional capability extensions.
// Determinism:
//   - All helpers resolve ties in favor of their first argument, so callers
//     that scan candidates in order keep the first-found winner.

package core

// Cost is an opaque cost designator. The engine never inspects costs; it
// only threads them back through the Algebra that produced them. A single
// algebra may use one Go type for group and total costs or two distinct
// ones — the engine keeps them apart by construction.
type Cost any

// Algebra describes how the cost of a contiguous group accumulates and how
// the cost of a whole partition is assembled from group costs.
//
// The four building operations correspond to the four ways a cost can grow:
//
//	Single(e)        - the group holding only element e
//	ExtendRight(g,e) - group g with e appended at its right end
//	Total(g)         - the partition whose sole group is g
//	Append(t,g)      - partition t with group g appended at its right end
//
// Less imposes a total order up to ties: when neither Less(a,b) nor
// Less(b,a) holds, a and b are interchangeable. Lower is better.
type Algebra interface {
	// Single returns the cost of the group containing only e.
	Single(e Handle) Cost

	// ExtendRight returns the cost of group g grown by e at its right end.
	ExtendRight(g Cost, e Handle) Cost

	// Total returns the cost of the partition consisting of the one group g.
	Total(g Cost) Cost

	// Append returns the cost of partition t with group g appended.
	Append(t Cost, g Cost) Cost

	// Less reports whether a is strictly cheaper than b.
	Less(a, b Cost) bool
}

// Mirror is the optional reversed-direction half of an Algebra. Algebras
// whose combination is not order-symmetric must implement it; for everyone
// else the package derives the mirrors by swapping arguments of the primary
// operations (see ExtendLeft and Prepend).
type Mirror interface {
	// ExtendLeft returns the cost of group g grown by e at its left end.
	ExtendLeft(e Handle, g Cost) Cost

	// Prepend returns the cost of partition t with group g prepended.
	Prepend(g Cost, t Cost) Cost
}

// Monotone is the optional pruning oracle. CannotDecrease(g) == true
// guarantees that extending the group costed g with further elements never
// yields a cheaper group. Algebras that do not implement Monotone are
// treated as answering false everywhere, which is always safe and merely
// disables early certification.
type Monotone interface {
	CannotDecrease(g Cost) bool
}

// ExtendLeft grows g by e at its left end, through the algebra's own Mirror
// when it provides one and the order-swapped right primitive otherwise.
func ExtendLeft(a Algebra, e Handle, g Cost) Cost {
	if m, ok := a.(Mirror); ok {
		return m.ExtendLeft(e, g)
	}
	return a.ExtendRight(g, e)
}

// Prepend puts group g before partition t, through the algebra's own Mirror
// when it provides one and the order-swapped Append otherwise.
func Prepend(a Algebra, g Cost, t Cost) Cost {
	if m, ok := a.(Mirror); ok {
		return m.Prepend(g, t)
	}
	return a.Append(t, g)
}

// CannotDecrease consults the algebra's Monotone oracle, defaulting to false.
func CannotDecrease(a Algebra, g Cost) bool {
	if m, ok := a.(Monotone); ok {
		return m.CannotDecrease(g)
	}
	return false
}

// Max returns the costlier of x and y under a.Less, preferring x on ties.
func Max(a Algebra, x, y Cost) Cost {
	if a.Less(x, y) {
		return y
	}
	return x
}

// Min returns the cheaper of x and y under a.Less, preferring x on ties.
func Min(a Algebra, x, y Cost) Cost {
	if a.Less(y, x) {
		return y
	}
	return x
}
