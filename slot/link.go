package slot

// CanLink reports whether a and b could be linked right now: opposite
// directions, distinct slots, not already linked, and the input side's
// type accepts the output side's current out expression.
func CanLink(a, b *Slot) bool {
	if a == nil || b == nil || a == b || a.dir == b.dir {
		return false
	}
	if a.isLinkedTo(b) {
		return false
	}
	in, out := orient(a, b)
	return in.arch.canConvert(out.outExpr)
}

// Link connects an input-direction slot to an output-direction slot, in
// either argument order. The input side may hold one active source at a
// time, so its subtree is unlinked first; it then adopts the output's
// current out expression. False when the pair cannot link; no partial
// link state is ever left behind.
func Link(a, b *Slot) bool {
	if !CanLink(a, b) || !CanLink(b, a) {
		return false
	}
	in, out := orient(a, b)

	in.Walk(func(n *Slot) { n.UnlinkAll(false) })

	in.links = append(in.links, out)
	out.links = append(out.links, in)

	in.connectInput(out)
	in.notifyOwner(ConnectionChanged)
	return true
}

// Unlink severs the link between a and b if one exists; otherwise it is
// a no-op. The input side falls back to its local value (children
// aggregate or default). When notify is set the input side's owner
// hears about it, once.
func Unlink(a, b *Slot, notify bool) {
	if a == nil || b == nil || !a.isLinkedTo(b) {
		return
	}
	in, _ := orient(a, b)
	a.removeLink(b)
	b.removeLink(a)

	in.disconnectInput()
	if notify {
		in.notifyOwner(ConnectionChanged)
	}
}

// UnlinkAll severs every link on the slot, one at a time, oldest first.
func (s *Slot) UnlinkAll(notify bool) {
	for _, l := range s.LinkedSlots() {
		Unlink(s, l, notify)
	}
}

// connectInput makes the freshly linked output's value flow in. The
// downward phase is suppressed: children keep their locally resolved in
// expressions and the out resolution presents the linked value to them.
func (s *Slot) connectInput(src *Slot) {
	_ = s.setInExpression(src.outExpr, false, false)
}

// disconnectInput reverts an input slot to its unlinked state, or to
// the next link's value when a legacy multi-link store still holds one
// (first link wins).
func (s *Slot) disconnectInput() {
	if len(s.links) > 0 {
		_ = s.setInExpression(s.RefSlot().outExpr, false, false)
		return
	}
	_ = s.setInExpression(s.localIn(), false, false)
}

func (s *Slot) isLinkedTo(other *Slot) bool {
	for _, l := range s.links {
		if l == other {
			return true
		}
	}
	return false
}

func (s *Slot) removeLink(other *Slot) {
	for i, l := range s.links {
		if l == other {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return
		}
	}
}

func orient(a, b *Slot) (in, out *Slot) {
	if a.dir == Input {
		return a, b
	}
	return b, a
}
