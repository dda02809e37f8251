package slot

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"
)

// Record is the persisted form of one slot: identity, shape and link
// topology. Expressions are never persisted; they are rebuilt from the
// construction/default path and from relinking.
type Record struct {
	ID        uint64    `yaml:"id"`
	Property  Property  `yaml:"property"`
	Direction Direction `yaml:"direction"`
	Links     []uint64  `yaml:"links,omitempty"`
}

func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	switch raw {
	case "input":
		*d = Input
	case "output":
		*d = Output
	default:
		return fmt.Errorf("slot: unknown direction %q", raw)
	}
	return nil
}

// Snapshot flattens a tree into records, depth-first, the same order
// construction walks. Link sets are externalized as ordered ID lists.
func Snapshot(root *Slot) []Record {
	var records []Record
	root.Walk(func(s *Slot) {
		r := Record{
			ID:        s.id,
			Property:  s.prop,
			Direction: s.dir,
		}
		for _, l := range s.links {
			r.Links = append(r.Links, l.id)
		}
		records = append(records, r)
	})
	return records
}

// Resolver turns persisted slot IDs back into live slot references.
// Trees are registered after being rebuilt via NewTree; Relink then
// replays the persisted link lists across every registered tree.
type Resolver struct {
	byID map[uint64]*Slot
}

func NewResolver() *Resolver {
	return &Resolver{byID: map[uint64]*Slot{}}
}

// Register indexes every slot of a live tree against the records it was
// rebuilt from, pairing depth-first. The record shape must match the
// tree's.
func (r *Resolver) Register(records []Record, root *Slot) error {
	i := 0
	var mismatch error
	root.Walk(func(s *Slot) {
		if mismatch != nil {
			return
		}
		if i >= len(records) {
			mismatch = fmt.Errorf("slot: %d records for a larger tree", len(records))
			return
		}
		rec := records[i]
		if rec.Property.Type != s.prop.Type {
			mismatch = fmt.Errorf("slot: record %d is %s, tree has %s",
				i, rec.Property.Type, s.prop.Type)
			return
		}
		r.byID[rec.ID] = s
		i++
	})
	if mismatch != nil {
		return mismatch
	}
	if i != len(records) {
		return fmt.Errorf("slot: %d records left over after tree walk", len(records)-i)
	}
	return nil
}

// Slot resolves a persisted identifier.
func (r *Resolver) Slot(id uint64) (*Slot, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Relink replays persisted link lists. Only input-side records drive
// linking (every link is recorded on both sides); the first resolvable
// target of each input wins, matching the live first-link-wins read
// semantics. Unresolvable IDs are skipped, not errors: the other tree
// may simply not be loaded.
func (r *Resolver) Relink(records []Record) {
	seen := mapset.NewThreadUnsafeSet[uint64]()
	for _, rec := range records {
		if rec.Direction != Input || len(rec.Links) == 0 || !seen.Add(rec.ID) {
			continue
		}
		in, ok := r.byID[rec.ID]
		if !ok {
			continue
		}
		for _, targetID := range rec.Links {
			target, ok := r.byID[targetID]
			if !ok {
				continue
			}
			if Link(in, target) {
				break
			}
		}
	}
}
