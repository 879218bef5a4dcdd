// Package partition_test contains unit tests for the incremental
// partitioning engine. This file holds the shared fixtures: an arena-style
// client sequence, several cost algebras, and brute-force helpers.
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/obseq/core"
	"github.com/katalvlaran/obseq/partition"
)

// seq is a mutable client sequence: the test owns the element order and
// hands the engine stable handles, arena-style.
type seq struct {
	order []core.Handle
	pos   map[core.Handle]int
}

func newSeq(hs ...core.Handle) *seq {
	s := &seq{}
	s.set(hs...)

	return s
}

// seqN returns the sequence 0..n-1.
func seqN(n int) *seq {
	hs := make([]core.Handle, n)
	for i := range hs {
		hs[i] = core.Handle(i)
	}

	return newSeq(hs...)
}

// set replaces the element order, simulating a client edit.
func (s *seq) set(hs ...core.Handle) {
	s.order = hs
	s.pos = make(map[core.Handle]int, len(hs))
	for i, h := range hs {
		s.pos[h] = i
	}
}

func (s *seq) Next(h core.Handle) core.Handle {
	i := -1
	if h != core.None {
		i = s.pos[h]
	}
	if i+1 >= len(s.order) {
		return core.None
	}

	return s.order[i+1]
}

func (s *seq) Prev(h core.Handle) core.Handle {
	i := len(s.order)
	if h != core.None {
		i = s.pos[h]
	}
	if i == 0 {
		return core.None
	}

	return s.order[i-1]
}

// linAlg prices a group by the weight sum of its elements and a partition by
// the sum of its group costs plus a fixed penalty per group. Scenario A uses
// weight 1 everywhere and penalty 2.
type linAlg struct {
	w       map[core.Handle]float64
	penalty float64
}

func unitWeights(n int) map[core.Handle]float64 {
	w := make(map[core.Handle]float64, n)
	for i := 0; i < n; i++ {
		w[core.Handle(i)] = 1
	}

	return w
}

func (a linAlg) Single(e core.Handle) core.Cost { return a.w[e] }

func (a linAlg) ExtendRight(g core.Cost, e core.Handle) core.Cost {
	return g.(float64) + a.w[e]
}

func (a linAlg) Total(g core.Cost) core.Cost { return g.(float64) + a.penalty }

func (a linAlg) Append(t core.Cost, g core.Cost) core.Cost {
	return t.(float64) + g.(float64) + a.penalty
}

func (a linAlg) Less(x, y core.Cost) bool { return x.(float64) < y.(float64) }

// fragAlg carries group costs as element counts and prices a group of k
// elements at (k-1)^2, with no per-group penalty — fragmentation always
// wins, so the optimum is all singletons (Scenario B).
type fragAlg struct{}

func sq(x int) int { return x * x }

func (fragAlg) Single(core.Handle) core.Cost { return 1 }

func (fragAlg) ExtendRight(g core.Cost, _ core.Handle) core.Cost { return g.(int) + 1 }

func (fragAlg) Total(g core.Cost) core.Cost { return sq(g.(int) - 1) }

func (fragAlg) Append(t core.Cost, g core.Cost) core.Cost {
	return t.(int) + sq(g.(int)-1)
}

func (fragAlg) Less(x, y core.Cost) bool { return x.(int) < y.(int) }

// quadAlg prices a group at the squared distance of its weight sum from a
// target, totals summing group costs. Non-monotone under extension, with
// genuinely interior optimal cuts — the workhorse of the brute-force and
// damage tests.
type quadAlg struct {
	w      map[core.Handle]float64
	target float64
}

func (a quadAlg) Single(e core.Handle) core.Cost { return a.w[e] }

func (a quadAlg) ExtendRight(g core.Cost, e core.Handle) core.Cost {
	return g.(float64) + a.w[e]
}

func (a quadAlg) Total(g core.Cost) core.Cost {
	d := g.(float64) - a.target

	return d * d
}

func (a quadAlg) Append(t core.Cost, g core.Cost) core.Cost {
	d := g.(float64) - a.target

	return t.(float64) + d*d
}

func (a quadAlg) Less(x, y core.Cost) bool { return x.(float64) < y.(float64) }

// minimaxAlg minimizes the costliest group: totals combine by max. Group
// costs can only grow under extension (non-negative weights), so it
// truthfully implements the Monotone oracle and exercises the early
// certificate.
type minimaxAlg struct {
	w      map[core.Handle]float64
	oracle bool
}

func (a minimaxAlg) Single(e core.Handle) core.Cost { return a.w[e] }

func (a minimaxAlg) ExtendRight(g core.Cost, e core.Handle) core.Cost {
	return g.(float64) + a.w[e]
}

func (a minimaxAlg) Total(g core.Cost) core.Cost { return g }

func (a minimaxAlg) Append(t core.Cost, g core.Cost) core.Cost {
	if t.(float64) < g.(float64) {
		return g
	}

	return t
}

func (a minimaxAlg) Less(x, y core.Cost) bool { return x.(float64) < y.(float64) }

func (a minimaxAlg) CannotDecrease(core.Cost) bool { return a.oracle }

// countingAlg counts algebra operations, to bound the work a re-solve does.
type countingAlg struct {
	inner core.Algebra
	ops   *int
}

func (a countingAlg) Single(e core.Handle) core.Cost {
	*a.ops++

	return a.inner.Single(e)
}

func (a countingAlg) ExtendRight(g core.Cost, e core.Handle) core.Cost {
	*a.ops++

	return a.inner.ExtendRight(g, e)
}

func (a countingAlg) Total(g core.Cost) core.Cost {
	*a.ops++

	return a.inner.Total(g)
}

func (a countingAlg) Append(t core.Cost, g core.Cost) core.Cost {
	*a.ops++

	return a.inner.Append(t, g)
}

func (a countingAlg) Less(x, y core.Cost) bool { return a.inner.Less(x, y) }

// groups walks the solved partition left to right via Interval.
func groups(t *testing.T, eng *partition.Engine, s *seq) [][2]core.Handle {
	t.Helper()
	var out [][2]core.Handle
	h := s.Next(core.None)
	for h != core.None {
		first, last, err := eng.Interval(h)
		require.NoError(t, err)
		out = append(out, [2]core.Handle{first, last})
		h = s.Next(last)
	}

	return out
}

// cost prices a partition through the algebra's own operations.
func cost(a core.Algebra, s *seq, parts [][2]core.Handle) core.Cost {
	var total core.Cost
	for i, p := range parts {
		g := a.Single(p[0])
		for h := p[0]; h != p[1]; {
			h = s.Next(h)
			g = a.ExtendRight(g, h)
		}
		if i == 0 {
			total = a.Total(g)
		} else {
			total = a.Append(total, g)
		}
	}

	return total
}

// bruteBest enumerates every partition of s (2^(n-1) cut masks) and returns
// the cheapest total under a.
func bruteBest(a core.Algebra, s *seq) core.Cost {
	n := len(s.order)
	var best core.Cost
	for mask := 0; mask < 1<<(n-1); mask++ {
		var total, g core.Cost
		opened := false
		for i, h := range s.order {
			if g == nil {
				g = a.Single(h)
			} else {
				g = a.ExtendRight(g, h)
			}
			if i == n-1 || mask&(1<<i) != 0 {
				if !opened {
					total = a.Total(g)
					opened = true
				} else {
					total = a.Append(total, g)
				}
				g = nil
			}
		}
		if best == nil || a.Less(total, best) {
			best = total
		}
	}

	return best
}

// sameCost reports cost equality up to ties under the algebra's order.
func sameCost(a core.Algebra, x, y core.Cost) bool {
	return !a.Less(x, y) && !a.Less(y, x)
}
