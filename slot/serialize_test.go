package slot_test

import (
	"testing"

	"github.com/delaneyj/slotgraph/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// snapshot flattens depth-first with links as id lists
func TestSnapshotLayout(t *testing.T) {
	out := mustTree(floatProp("o"), slot.Output, slot.WithTreeKey("n1.o"))
	in := mustTree(vec2Prop("i"), slot.Input, slot.WithTreeKey("n2.i"))
	x, _ := in.Find("x")
	require.True(t, slot.Link(x, out))

	records := slot.Snapshot(in)
	require.Len(t, records, 3)
	assert.Equal(t, in.ID(), records[0].ID)
	assert.Equal(t, "i", records[0].Property.Name)
	assert.Equal(t, slot.Input, records[0].Direction)
	assert.Empty(t, records[0].Links)
	assert.Equal(t, []uint64{out.ID()}, records[1].Links)

	outRecords := slot.Snapshot(out)
	require.Len(t, outRecords, 1)
	assert.Equal(t, []uint64{x.ID()}, outRecords[0].Links)
}

func TestSnapshotRoundTripsThroughYAML(t *testing.T) {
	in := mustTree(vec2Prop("i"), slot.Input, slot.WithTreeKey("n2.i"))
	records := slot.Snapshot(in)

	raw, err := yaml.Marshal(records)
	require.NoError(t, err)

	var decoded []slot.Record
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, records, decoded)
}

// persisted link lists reconnect freshly rebuilt trees
func TestRestoreRelinks(t *testing.T) {
	// session one
	out := mustTree(floatProp("o"), slot.Output, slot.WithTreeKey("n1.o"))
	in := mustTree(vec2Prop("i"), slot.Input, slot.WithTreeKey("n2.i"))
	x, _ := in.Find("x")
	require.NoError(t, out.SetFloat(7))
	require.True(t, slot.Link(x, out))

	inRecords := slot.Snapshot(in)
	outRecords := slot.Snapshot(out)

	// session two: same properties, same tree keys, fresh slots
	out2 := mustTree(floatProp("o"), slot.Output, slot.WithTreeKey("n1.o"))
	in2 := mustTree(vec2Prop("i"), slot.Input, slot.WithTreeKey("n2.i"))

	r := slot.NewResolver()
	require.NoError(t, r.Register(outRecords, out2))
	require.NoError(t, r.Register(inRecords, in2))
	r.Relink(append(inRecords, outRecords...))

	x2, _ := in2.Find("x")
	assert.Same(t, out2, x2.RefSlot())
	assert.Equal(t, []*slot.Slot{x2}, out2.LinkedSlots())

	// expressions are rebuilt, not restored: the new source is at its
	// default until set again
	got, err := x2.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(0), got)

	require.NoError(t, out2.SetFloat(7))
	got, err = x2.Float()
	require.NoError(t, err)
	assert.Equal(t, float32(7), got)
}

// a target in a tree that is not loaded is skipped quietly
func TestRelinkSkipsMissingTargets(t *testing.T) {
	out := mustTree(floatProp("o"), slot.Output, slot.WithTreeKey("n1.o"))
	in := mustTree(floatProp("i"), slot.Input, slot.WithTreeKey("n2.i"))
	require.True(t, slot.Link(in, out))
	inRecords := slot.Snapshot(in)

	in2 := mustTree(floatProp("i"), slot.Input, slot.WithTreeKey("n2.i"))
	r := slot.NewResolver()
	require.NoError(t, r.Register(inRecords, in2))
	r.Relink(inRecords)

	assert.False(t, in2.HasLink())
}

// legacy multi-link stores resolve first-wins
func TestRelinkFirstWins(t *testing.T) {
	o1 := mustTree(floatProp("o1"), slot.Output, slot.WithTreeKey("n1.o"))
	o2 := mustTree(floatProp("o2"), slot.Output, slot.WithTreeKey("n2.o"))
	in := mustTree(floatProp("i"), slot.Input, slot.WithTreeKey("n3.i"))

	records := slot.Snapshot(in)
	records[0].Links = []uint64{o1.ID(), o2.ID()}

	in2 := mustTree(floatProp("i"), slot.Input, slot.WithTreeKey("n3.i"))
	r := slot.NewResolver()
	require.NoError(t, r.Register(slot.Snapshot(in), in2))
	require.NoError(t, r.Register(slot.Snapshot(o1), o1))
	require.NoError(t, r.Register(slot.Snapshot(o2), o2))
	r.Relink(records)

	assert.Same(t, o1, in2.RefSlot())
	assert.Len(t, in2.LinkedSlots(), 1)
	assert.False(t, o2.HasLink())
}

func TestRegisterShapeMismatch(t *testing.T) {
	in := mustTree(vec2Prop("i"), slot.Input, slot.WithTreeKey("n2.i"))
	records := slot.Snapshot(in)

	other := mustTree(floatProp("f"), slot.Input, slot.WithTreeKey("n2.i"))
	r := slot.NewResolver()
	assert.Error(t, r.Register(records, other))
}
