package slot

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotgraph/expr"
)

// Graph is a ready-made container for hosts that just want named slot
// trees and a dirty list. Invalidations mark the affected root; the
// host drains dirty roots when it is ready to recompute, each root at
// most once per drain however many of its slots were touched.
type Graph struct {
	roots map[string]*Slot
	dirty mapset.Set[*Slot]
}

func NewGraph() *Graph {
	return &Graph{
		roots: map[string]*Slot{},
		dirty: mapset.NewThreadUnsafeSet[*Slot](),
	}
}

// AddTree builds a slot tree owned by the graph under a unique name.
// The name doubles as the tree key for stable slot IDs.
func (g *Graph) AddTree(name string, prop Property, dir Direction, opts ...TreeOption) (*Slot, error) {
	if _, ok := g.roots[name]; ok {
		return nil, fmt.Errorf("slot: graph already has a tree named %q", name)
	}
	opts = append(opts, WithOwner(g), WithTreeKey(name))
	root, err := NewTree(prop, dir, opts...)
	if err != nil {
		return nil, err
	}
	g.roots[name] = root
	return root, nil
}

func (g *Graph) Tree(name string) (*Slot, bool) {
	root, ok := g.roots[name]
	return root, ok
}

// Find resolves "tree" or "tree.sub.field" across the graph.
func (g *Graph) Find(path string) (*Slot, bool) {
	for name, root := range g.roots {
		if path == name {
			return root, true
		}
		if rest, ok := strings.CutPrefix(path, name+"."); ok {
			return root.Find(rest)
		}
	}
	return nil, false
}

func (g *Graph) OnSlotInvalidated(s *Slot, cause InvalidationCause) {
	g.dirty.Add(s.Root())
}

// DirtyCount reports how many roots are waiting to be drained.
func (g *Graph) DirtyCount() int { return g.dirty.Cardinality() }

// ConsumeDirty drains and returns the dirty roots.
func (g *Graph) ConsumeDirty() []*Slot {
	out := g.dirty.ToSlice()
	g.dirty.Clear()
	return out
}

// SetValue is a path-addressed convenience over SetExpression.
func (g *Graph) SetValue(path string, e expr.Expression) error {
	s, ok := g.Find(path)
	if !ok {
		return fmt.Errorf("slot: no slot at path %q", path)
	}
	return s.SetExpression(e)
}
