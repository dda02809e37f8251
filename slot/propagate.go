package slot

import (
	"errors"
	"fmt"

	"github.com/delaneyj/slotgraph/expr"
)

var ErrInvalidConversion = errors.New("slot: expression not convertible")

// SetExpression assigns e as the slot's in expression and propagates:
// ancestors re-aggregate, descendants re-decompose, then the whole tree
// resolves its out expressions from the root and the owner is notified
// once. Fails before any mutation when the slot's type does not accept
// e.
func (s *Slot) SetExpression(e expr.Expression) error {
	return s.SetExpressionNotify(e, true)
}

// SetExpressionNotify is SetExpression with the owner callback made
// optional.
func (s *Slot) SetExpressionNotify(e expr.Expression, notify bool) error {
	return s.setInExpression(e, true, notify)
}

// setInExpression runs the propagation phases. The downward
// decomposition only runs when down is set; link and unlink suppress it
// so that children keep their locally resolved values, per the in/out
// split. The out resolution always runs from the root.
func (s *Slot) setInExpression(e expr.Expression, down, notify bool) error {
	if !s.arch.canConvert(e) {
		got := expr.Invalid
		if e != nil {
			got = e.Type()
		}
		return fmt.Errorf("%w: %s slot %q does not accept %s",
			ErrInvalidConversion, s.prop.Type, s.Path(), got)
	}
	converted := e
	if e != nil {
		converted = s.arch.convert(e)
	}

	// Referentially identical means nothing to do. This is also the
	// guard that bounds re-entrant propagation across link boundaries.
	if converted == s.inExpr {
		return nil
	}
	s.inExpr = converted

	for p := s.parent; p != nil; p = p.parent {
		p.inExpr = p.aggregateChildren()
	}

	if down {
		s.decomposeDown()
	}

	root := s.Root()
	root.resolveOut()
	if notify {
		root.notifyOwner(ConnectionChanged)
	}
	return nil
}

// decomposeDown pushes this slot's in expression into its descendants.
// When the type cannot decompose, each child falls back to its
// reference slot's current in expression: link-sourced if linked, its
// own if not (which early-outs).
func (s *Slot) decomposeDown() {
	if len(s.children) == 0 {
		return
	}
	if parts, ok := s.arch.decompose(s.inExpr); ok {
		for i, c := range s.children {
			c.applyInDown(parts[i])
		}
		return
	}
	for _, c := range s.children {
		c.applyInDown(c.RefSlot().inExpr)
	}
}

func (s *Slot) applyInDown(e expr.Expression) {
	if e == s.inExpr {
		return
	}
	s.inExpr = e
	s.decomposeDown()
}

// resolveOut sets the root's out expression to its in expression and
// walks down: decompose where the type supports it, otherwise each
// child exposes its own in expression. Runs on the root.
func (s *Slot) resolveOut() {
	s.setOut(s.inExpr)
}

func (s *Slot) setOut(e expr.Expression) {
	changed := e != s.outExpr
	if changed {
		s.outExpr = e
		s.invalidateLinked()
	}

	if len(s.children) == 0 {
		return
	}
	if parts, ok := s.arch.decompose(s.outExpr); ok {
		// An unchanged out means the subtree below is already
		// consistent.
		if changed {
			for i, c := range s.children {
				c.setOut(parts[i])
			}
		}
		return
	}
	// No decomposition: children expose their own resolved values,
	// independent of the parent, so always descend.
	for _, c := range s.children {
		c.setOut(c.inExpr)
	}
}

// invalidateLinked ripples an out change across link boundaries: every
// input slot following this output slot re-adopts the new value, which
// runs that tree's own propagation and owner notification.
func (s *Slot) invalidateLinked() {
	if s.dir != Output {
		return
	}
	for _, l := range s.LinkedSlots() {
		if l.RefSlot() != s {
			continue
		}
		// The adopting side accepted this expression when the link was
		// made; a failure here would mean the link should not exist.
		_ = l.setInExpression(s.outExpr, false, true)
	}
}

func (s *Slot) notifyOwner(cause InvalidationCause) {
	if o := s.Owner(); o != nil {
		o.OnSlotInvalidated(s, cause)
	}
}

// localIn is what the slot holds with no link attached: the aggregation
// of its children for composites, the default for leaves.
func (s *Slot) localIn() expr.Expression {
	if len(s.children) > 0 {
		return s.aggregateChildren()
	}
	return s.defaultExpr
}
