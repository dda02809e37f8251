package slot_test

import (
	"testing"

	"github.com/delaneyj/slotgraph/expr"
	"github.com/delaneyj/slotgraph/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// set X to 5, parent aggregates to (5,0), sibling Y stays 0
func TestChildSetAggregatesUpward(t *testing.T) {
	owner := &countingOwner{}
	root := mustTree(vec2Prop("uv"), slot.Input, slot.WithOwner(owner))
	x, _ := root.Find("x")
	y, _ := root.Find("y")

	require.NoError(t, x.SetFloat(5))

	vs, err := root.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 0}, vs)

	yv, err := y.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(0), yv)

	assert.Equal(t, 1, owner.calls, "one top-level set, one notification")
}

// set the whole vector, children decompose
func TestParentSetDecomposesDownward(t *testing.T) {
	root := mustTree(vec3Prop("pos"), slot.Input)

	require.NoError(t, root.SetFloats(1, 2, 3))

	for i, want := range []float32{1, 2, 3} {
		c := root.Children()[i]
		got, err := c.Float()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSetExpressionRejectsWrongType(t *testing.T) {
	owner := &countingOwner{}
	root := mustTree(floatProp("f"), slot.Input, slot.WithOwner(owner))
	before := root.InExpression()

	err := root.SetExpression(expr.BoolValue(true))
	require.ErrorIs(t, err, slot.ErrInvalidConversion)
	assert.Same(t, before, root.InExpression(), "no partial mutation on failure")
	assert.Zero(t, owner.calls)
}

// assigning the identical expression is a no-op
func TestEarlyOutOnIdenticalExpression(t *testing.T) {
	owner := &countingOwner{}
	root := mustTree(floatProp("f"), slot.Input, slot.WithOwner(owner))

	require.NoError(t, root.SetFloat(5))
	require.Equal(t, 1, owner.calls)

	require.NoError(t, root.SetExpression(root.InExpression()))
	assert.Equal(t, 1, owner.calls, "identical value must trigger zero notifications")
}

func TestSetExpressionNotifySuppressed(t *testing.T) {
	owner := &countingOwner{}
	root := mustTree(floatProp("f"), slot.Input, slot.WithOwner(owner))

	require.NoError(t, root.SetExpressionNotify(expr.FloatValue(5), false))
	assert.Zero(t, owner.calls)
	got, err := root.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(5), got)
}

// one link call, one notification on the input tree's owner
func TestSingleNotificationPerOperation(t *testing.T) {
	inOwner := &countingOwner{}
	out := mustTree(vec3Prop("o"), slot.Output)
	in := mustTree(vec3Prop("i"), slot.Input, slot.WithOwner(inOwner))

	require.True(t, slot.Link(in, out))
	assert.Equal(t, 1, inOwner.calls, "linking touches four nodes but notifies once")
	assert.Equal(t, []slot.InvalidationCause{slot.ConnectionChanged}, inOwner.causes)

	inOwner.calls = 0
	require.NoError(t, in.SetFloats(1, 2, 3))
	assert.Equal(t, 1, inOwner.calls)

	inOwner.calls = 0
	slot.Unlink(in, out, true)
	assert.Equal(t, 1, inOwner.calls)
}

// value 7 flows across the link at link time
func TestLinkAdoptsOutputValue(t *testing.T) {
	out := mustTree(floatProp("o"), slot.Output)
	in := mustTree(floatProp("i"), slot.Input)

	require.NoError(t, out.SetFloat(7))
	require.True(t, slot.Link(in, out))

	got, err := in.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(7), got)
	assert.Same(t, out.OutExpression(), in.InExpression())
}

// changes on the source ripple across the link after linking
func TestOutputChangeRipplesToLinkedInput(t *testing.T) {
	inOwner := &countingOwner{}
	out := mustTree(floatProp("o"), slot.Output)
	in := mustTree(floatProp("i"), slot.Input, slot.WithOwner(inOwner))

	require.True(t, slot.Link(in, out))
	inOwner.calls = 0

	require.NoError(t, out.SetFloat(9))
	got, err := in.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(9), got)
	assert.Equal(t, 1, inOwner.calls, "the dependent tree hears about the ripple once")
}

// a component change on the source reaches a dependent linked to that
// component only
func TestComponentLinkRipple(t *testing.T) {
	out := mustTree(vec3Prop("o"), slot.Output)
	in := mustTree(floatProp("i"), slot.Input)

	ox, _ := out.Find("x")
	require.True(t, slot.Link(in, ox))

	require.NoError(t, ox.SetFloat(3))
	got, err := in.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(3), got)

	// a sibling change must not disturb the dependent
	before := in.InExpression()
	oy, _ := out.Find("y")
	require.NoError(t, oy.SetFloat(4))
	assert.Same(t, before, in.InExpression())
}

// ripples chain across several trees
func TestRippleAcrossChain(t *testing.T) {
	a := mustTree(floatProp("a"), slot.Output)
	b := mustTree(floatProp("b"), slot.Input)

	// forward b to c through a relay-style owner
	c := mustTree(floatProp("c"), slot.Output)
	d := mustTree(floatProp("d"), slot.Input)
	b.SetOwner(forwarder(func() {
		require.NoError(t, c.SetExpression(b.OutExpression()))
	}))

	require.True(t, slot.Link(b, a))
	require.True(t, slot.Link(d, c))

	require.NoError(t, a.SetFloat(42))
	got, err := d.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(42), got)
}

// linking a composite leaves children's local in expressions alone; the
// resolved view follows the link while linked and snaps back after
func TestCompositeLinkPreservesLocalState(t *testing.T) {
	out := mustTree(vec2Prop("o"), slot.Output)
	in := mustTree(vec2Prop("i"), slot.Input)
	x, _ := in.Find("x")

	require.NoError(t, x.SetFloat(5))
	require.NoError(t, out.SetFloats(8, 9))

	require.True(t, slot.Link(in, out))
	vs, err := in.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{8, 9}, vs, "resolved view follows the link")

	slot.Unlink(in, out, true)
	vs, err = in.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 0}, vs, "local child state survives the link")
}

// an opaque struct resolves each child independently
func TestStructChildrenResolveIndependently(t *testing.T) {
	owner := &countingOwner{}
	root := mustTree(slot.Property{Name: "s", Type: sphereType}, slot.Input,
		slot.WithOwner(owner))

	assert.Nil(t, root.InExpression())
	assert.Nil(t, root.OutExpression())

	radius, _ := root.Find("radius")
	require.NoError(t, radius.SetFloat(2))
	assert.Equal(t, 1, owner.calls)

	got, err := radius.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(2), got)

	center, _ := root.Find("center")
	vs, err := center.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, vs)
	assert.Nil(t, root.OutExpression(), "opaque composites expose no expression")
}

// a struct's vector child is linkable even though the struct is not
func TestStructChildLink(t *testing.T) {
	root := mustTree(slot.Property{Name: "s", Type: sphereType}, slot.Input)
	out := mustTree(vec3Prop("o"), slot.Output)

	structOut := mustTree(slot.Property{Name: "s2", Type: sphereType}, slot.Output)
	assert.False(t, slot.CanLink(root, structOut), "opaque composites cannot link")

	center, _ := root.Find("center")
	require.True(t, slot.Link(center, out))
	require.NoError(t, out.SetFloats(1, 2, 3))

	vs, err := center.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, vs)
}

// clearing a vector's in expression makes children fall back to their
// reference slots
func TestNilSetFallsBackToRefSlots(t *testing.T) {
	in := mustTree(vec2Prop("i"), slot.Input)
	out := mustTree(floatProp("o"), slot.Output)
	require.NoError(t, out.SetFloat(6))

	x, _ := in.Find("x")
	y, _ := in.Find("y")
	require.True(t, slot.Link(x, out))
	require.NoError(t, y.SetFloat(1))

	require.NoError(t, in.SetExpression(nil))

	xi, err := x.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(6), xi, "linked child keeps its link-sourced value")
	yi, err := y.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(1), yi, "unlinked child keeps its own value")
}

// forwarder adapts a func to the Container interface.
type forwarder func()

func (f forwarder) OnSlotInvalidated(*slot.Slot, slot.InvalidationCause) { f() }
