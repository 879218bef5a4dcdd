// File: notify.go
// Role: Damage-driven window contraction.

package partition

import "github.com/katalvlaran/obseq/core"

// NotifyAfter tells the engine that everything strictly after elem may have
// changed — elements, links, or both — while everything at-or-before elem is
// still trustworthy. Pass core.None when the whole sequence changed.
//
// Every suffix entry reads rightward into the damaged region, so the suffix
// window collapses entirely; the prefix window is pulled back to elem when
// it had grown beyond it. The next Solve regrows only what was discarded.
func (e *Engine) NotifyAfter(elem core.Handle) {
	e.collapseSuffix()
	if elem == core.None {
		e.collapsePrefix()

		return
	}
	if n, ok := e.nodes[elem]; ok && n.hasPrefix {
		e.truncatePrefix(elem)
	}
	// No prefix entry means head never reached elem; nothing on the
	// prefix side depends on the damage.
	e.solved = false
}

// NotifyBefore is the mirror of NotifyAfter: everything strictly before elem
// may have changed, everything at-or-after is trustworthy.
func (e *Engine) NotifyBefore(elem core.Handle) {
	e.collapsePrefix()
	if elem == core.None {
		e.collapseSuffix()

		return
	}
	if n, ok := e.nodes[elem]; ok && n.hasSuffix {
		e.truncateSuffix(elem)
	}
	e.solved = false
}
