package slot

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/slotgraph/expr"
)

type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Input {
		return "input"
	}
	return "output"
}

// Slot is one node of a typed value tree mirroring a Property's
// sub-field structure. It carries three expression states: the default
// (used when nothing else applies), the in expression (what the slot
// was asked to hold, by assignment, link or child aggregation) and the
// out expression (what dependents see once the whole tree is resolved).
type Slot struct {
	id   uint64
	dir  Direction
	prop Property
	arch archetype

	owner    Container
	parent   *Slot
	children []*Slot

	defaultExpr expr.Expression
	inExpr      expr.Expression
	outExpr     expr.Expression

	// Slots of the opposite direction this slot is connected to. The
	// backing store is ordered and the head is authoritative; Link
	// keeps an input side down to one entry, but restored legacy data
	// may carry more, in which case first wins.
	links []*Slot
}

type TreeOption func(*treeConfig)

type treeConfig struct {
	owner       Container
	treeKey     string
	defaultExpr expr.Expression
}

// WithOwner attaches the container that receives invalidation
// callbacks for the whole tree.
func WithOwner(owner Container) TreeOption {
	return func(c *treeConfig) { c.owner = owner }
}

// WithTreeKey seeds the stable slot identifiers. Two sessions building
// the same property under the same key produce the same IDs, which is
// what lets persisted link lists resolve across sessions.
func WithTreeKey(key string) TreeOption {
	return func(c *treeConfig) { c.treeKey = key }
}

// WithDefault overrides the root's default expression. It must satisfy
// the root type's conversion predicate.
func WithDefault(e expr.Expression) TreeOption {
	return func(c *treeConfig) { c.defaultExpr = e }
}

// NewTree builds a fully-formed slot tree for prop, depth-first. Tree
// shape is fixed from here on. Fails when any reached type has no
// registered archetype, or when an explicit default is not accepted by
// the root type.
func NewTree(prop Property, dir Direction, opts ...TreeOption) (*Slot, error) {
	cfg := treeConfig{treeKey: prop.Name}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := build(prop, dir, cfg.treeKey)
	if err != nil {
		return nil, err
	}
	root.owner = cfg.owner

	if cfg.defaultExpr != nil {
		if !root.arch.canConvert(cfg.defaultExpr) {
			return nil, fmt.Errorf("%w: default %s not accepted by %s slot",
				ErrInvalidConversion, cfg.defaultExpr.Type(), prop.Type)
		}
		root.defaultExpr = root.arch.convert(cfg.defaultExpr)
	}
	root.spreadDefaults()
	root.initIn()
	root.resolveOut()
	return root, nil
}

func build(prop Property, dir Direction, path string) (*Slot, error) {
	arch, err := archetypeFor(prop.Type)
	if err != nil {
		return nil, fmt.Errorf("%w (property %q)", err, prop.Name)
	}
	s := &Slot{
		id:          treeID(path, dir),
		dir:         dir,
		prop:        prop,
		arch:        arch,
		defaultExpr: arch.defaultExpression(),
	}
	for _, f := range arch.fields() {
		child, err := build(f, dir, path+"."+f.Name)
		if err != nil {
			return nil, err
		}
		child.parent = s
		s.children = append(s.children, child)
	}
	return s, nil
}

func treeID(path string, dir Direction) uint64 {
	return xxhash.Sum64String(dir.String() + "|" + path)
}

// spreadDefaults derives child defaults by decomposing the parent's
// default where supported; opaque composites leave each child's own
// default in place.
func (s *Slot) spreadDefaults() {
	if parts, ok := s.arch.decompose(s.defaultExpr); ok {
		for i, c := range s.children {
			c.defaultExpr = parts[i]
		}
	}
	for _, c := range s.children {
		c.spreadDefaults()
	}
}

// initIn seeds in expressions bottom-up: leaves take their default,
// composites aggregate their children.
func (s *Slot) initIn() {
	for _, c := range s.children {
		c.initIn()
	}
	if len(s.children) == 0 {
		s.inExpr = s.defaultExpr
		return
	}
	s.inExpr = s.aggregateChildren()
}

func (s *Slot) aggregateChildren() expr.Expression {
	ins := make([]expr.Expression, len(s.children))
	for i, c := range s.children {
		ins[i] = c.inExpr
	}
	if agg, ok := s.arch.compose(ins); ok {
		return agg
	}
	return nil
}

func (s *Slot) ID() uint64 { return s.id }

func (s *Slot) Direction() Direction { return s.dir }

func (s *Slot) Property() Property { return s.prop }

func (s *Slot) Parent() *Slot { return s.parent }

func (s *Slot) Children() []*Slot { return append([]*Slot(nil), s.children...) }

func (s *Slot) IsLeaf() bool { return len(s.children) == 0 }

func (s *Slot) DefaultExpression() expr.Expression { return s.defaultExpr }

func (s *Slot) InExpression() expr.Expression { return s.inExpr }

func (s *Slot) OutExpression() expr.Expression { return s.outExpr }

// LinkedSlots returns a copy of the link list, in link order.
func (s *Slot) LinkedSlots() []*Slot {
	return append([]*Slot(nil), s.links...)
}

func (s *Slot) HasLink() bool { return len(s.links) > 0 }

// RefSlot is the slot whose value this input slot follows: the first
// linked slot, or the slot itself when unlinked. Output slots are
// always their own reference.
func (s *Slot) RefSlot() *Slot {
	if s.dir == Input && len(s.links) > 0 {
		return s.links[0]
	}
	return s
}

// Root walks to the top of the tree.
func (s *Slot) Root() *Slot {
	n := s
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Owner resolves the nearest container up the ancestor chain, so a
// detached subtree still reports to whoever holds its root.
func (s *Slot) Owner() Container {
	for n := s; n != nil; n = n.parent {
		if n.owner != nil {
			return n.owner
		}
	}
	return nil
}

// SetOwner attaches a container to this slot. Usually only the root of
// a tree carries one.
func (s *Slot) SetOwner(owner Container) { s.owner = owner }

// Path is the dotted field path from the root, starting with the root
// property's name.
func (s *Slot) Path() string {
	if s.parent == nil {
		return s.prop.Name
	}
	return s.parent.Path() + "." + s.prop.Name
}

// Find resolves a dotted sub-field path relative to this slot. An empty
// path returns the slot itself.
func (s *Slot) Find(path string) (*Slot, bool) {
	if path == "" {
		return s, true
	}
	head, rest, _ := strings.Cut(path, ".")
	for _, c := range s.children {
		if c.prop.Name == head {
			return c.Find(rest)
		}
	}
	return nil, false
}

// Walk visits the slot and every descendant depth-first.
func (s *Slot) Walk(fn func(*Slot)) {
	fn(s)
	for _, c := range s.children {
		c.Walk(fn)
	}
}
