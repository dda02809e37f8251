package slot

// InvalidationCause tells a container why one of its slots changed.
type InvalidationCause uint8

const (
	// ConnectionChanged: the slot's link set or resolved expression
	// changed and dependent state must be recomputed.
	ConnectionChanged InvalidationCause = iota
)

func (c InvalidationCause) String() string {
	if c == ConnectionChanged {
		return "connection changed"
	}
	return "unknown"
}

// Container is whatever owns a slot tree: a graph node, an operator, a
// test harness. It receives at most one callback per top-level
// mutation, however many slots that mutation touched.
type Container interface {
	OnSlotInvalidated(s *Slot, cause InvalidationCause)
}
