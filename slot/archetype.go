package slot

import (
	"errors"
	"fmt"

	"github.com/delaneyj/slotgraph/expr"
)

var ErrUnknownType = errors.New("slot: no archetype registered for type")

// archetype is the per-value-type capability set: sub-field shape,
// default value, conversion acceptance and the two directions of
// parent/child expression movement. Resolved once at construction.
type archetype interface {
	fields() []Property
	defaultExpression() expr.Expression
	canConvert(e expr.Expression) bool
	convert(e expr.Expression) expr.Expression
	compose(children []expr.Expression) (expr.Expression, bool)
	decompose(e expr.Expression) ([]expr.Expression, bool)
}

var archetypes = map[expr.Type]archetype{}

func init() {
	archetypes[expr.Float] = &scalarArchetype{t: expr.Float}
	archetypes[expr.Int] = &scalarArchetype{t: expr.Int}
	archetypes[expr.Uint] = &scalarArchetype{t: expr.Uint}
	archetypes[expr.Bool] = &scalarArchetype{t: expr.Bool}
	archetypes[expr.Float2] = &vectorArchetype{t: expr.Float2, width: 2}
	archetypes[expr.Float3] = &vectorArchetype{t: expr.Float3, width: 3}
	archetypes[expr.Float4] = &vectorArchetype{t: expr.Float4, width: 4}
}

func archetypeFor(t expr.Type) (archetype, error) {
	a, ok := archetypes[t]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, t)
	}
	return a, nil
}

// RegisterStruct registers t as an opaque composite with the given
// named sub-fields. Opaque composites carry no expression of their own:
// they cannot compose from or decompose to their children, so each
// child resolves independently. Re-registering a type or registering
// one with no fields is an error.
func RegisterStruct(t expr.Type, fields ...Property) error {
	if _, ok := archetypes[t]; ok {
		return fmt.Errorf("slot: type %q already registered", t)
	}
	if len(fields) == 0 {
		return fmt.Errorf("slot: struct type %q needs at least one field", t)
	}
	for _, f := range fields {
		if _, err := archetypeFor(f.Type); err != nil {
			return fmt.Errorf("slot: struct type %q field %q: %w", t, f.Name, err)
		}
	}
	archetypes[t] = &structArchetype{t: t, fieldList: fields}
	return nil
}

type scalarArchetype struct {
	t expr.Type
}

func (a *scalarArchetype) fields() []Property { return nil }

func (a *scalarArchetype) defaultExpression() expr.Expression {
	zero, err := expr.ZeroValue(a.t)
	if err != nil {
		panic(err)
	}
	return zero
}

func (a *scalarArchetype) canConvert(e expr.Expression) bool {
	if e == nil {
		return true
	}
	if e.Type() == a.t {
		return true
	}
	return expr.IsNumeric(a.t) && expr.IsNumeric(e.Type())
}

func (a *scalarArchetype) convert(e expr.Expression) expr.Expression {
	converted, err := expr.Cast(e, a.t)
	if err != nil {
		panic(err)
	}
	return converted
}

func (a *scalarArchetype) compose([]expr.Expression) (expr.Expression, bool) {
	return nil, false
}

func (a *scalarArchetype) decompose(expr.Expression) ([]expr.Expression, bool) {
	return nil, false
}

var vectorFieldNames = [4]string{"x", "y", "z", "w"}

type vectorArchetype struct {
	t     expr.Type
	width int
}

func (a *vectorArchetype) fields() []Property {
	fs := make([]Property, a.width)
	for i := range fs {
		fs[i] = Property{Name: vectorFieldNames[i], Type: expr.Float}
	}
	return fs
}

func (a *vectorArchetype) defaultExpression() expr.Expression {
	zero, err := expr.ZeroValue(a.t)
	if err != nil {
		panic(err)
	}
	return zero
}

func (a *vectorArchetype) canConvert(e expr.Expression) bool {
	return e == nil || e.Type() == a.t
}

func (a *vectorArchetype) convert(e expr.Expression) expr.Expression { return e }

func (a *vectorArchetype) compose(children []expr.Expression) (expr.Expression, bool) {
	for _, c := range children {
		if c == nil {
			return nil, false
		}
	}
	return expr.Combine(children...), true
}

func (a *vectorArchetype) decompose(e expr.Expression) ([]expr.Expression, bool) {
	if e == nil || e.Type() != a.t {
		return nil, false
	}
	parts := make([]expr.Expression, a.width)
	for i := range parts {
		parts[i] = expr.Component(e, i)
	}
	return parts, true
}

type structArchetype struct {
	t         expr.Type
	fieldList []Property
}

func (a *structArchetype) fields() []Property { return a.fieldList }

// Opaque composites have no expression form of their own.
func (a *structArchetype) defaultExpression() expr.Expression { return nil }

// Opaque composites accept nothing directly, which also keeps them
// unlinkable; their children carry the values.
func (a *structArchetype) canConvert(e expr.Expression) bool { return false }

func (a *structArchetype) convert(e expr.Expression) expr.Expression { return e }

func (a *structArchetype) compose([]expr.Expression) (expr.Expression, bool) {
	return nil, false
}

func (a *structArchetype) decompose(expr.Expression) ([]expr.Expression, bool) {
	return nil, false
}
