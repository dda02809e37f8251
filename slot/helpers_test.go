package slot_test

import (
	"log"

	"github.com/delaneyj/slotgraph/expr"
	"github.com/delaneyj/slotgraph/slot"
)

const sphereType = expr.Type("sphere")

func init() {
	err := slot.RegisterStruct(sphereType,
		slot.Property{Name: "center", Type: expr.Float3},
		slot.Property{Name: "radius", Type: expr.Float},
	)
	if err != nil {
		log.Panic(err)
	}
}

// countingOwner records every invalidation callback it receives.
type countingOwner struct {
	calls  int
	last   *slot.Slot
	causes []slot.InvalidationCause
}

func (c *countingOwner) OnSlotInvalidated(s *slot.Slot, cause slot.InvalidationCause) {
	c.calls++
	c.last = s
	c.causes = append(c.causes, cause)
}

func mustTree(prop slot.Property, dir slot.Direction, opts ...slot.TreeOption) *slot.Slot {
	root, err := slot.NewTree(prop, dir, opts...)
	if err != nil {
		log.Panic(err)
	}
	return root
}

func floatProp(name string) slot.Property {
	return slot.Property{Name: name, Type: expr.Float}
}

func vec2Prop(name string) slot.Property {
	return slot.Property{Name: name, Type: expr.Float2}
}

func vec3Prop(name string) slot.Property {
	return slot.Property{Name: name, Type: expr.Float3}
}
