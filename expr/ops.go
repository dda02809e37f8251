package expr

import (
	"fmt"
	"strings"
)

type combineExpr struct {
	t     Type
	parts []Expression
}

func (c *combineExpr) Type() Type { return c.t }
func (c *combineExpr) Operands() []Expression { return c.parts }
func (c *combineExpr) String() string {
	sb := strings.Builder{}
	sb.WriteByte('(')
	for i, p := range c.parts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Combine packs 1 to 4 float scalars into a float vector expression.
// With a single part the part itself is returned.
func Combine(parts ...Expression) Expression {
	if len(parts) == 1 {
		return parts[0]
	}
	t, ok := vectorOfWidth[len(parts)]
	if !ok {
		panic(fmt.Sprintf("expr: cannot combine %d parts", len(parts)))
	}
	return &combineExpr{t: t, parts: parts}
}

type componentExpr struct {
	of  Expression
	idx int
}

func (c *componentExpr) Type() Type { return Float }
func (c *componentExpr) Operands() []Expression { return []Expression{c.of} }
func (c *componentExpr) String() string {
	return fmt.Sprintf("%s[%d]", c.of.String(), c.idx)
}

// Component extracts float scalar idx from a vector expression. A
// combine collapses back to the part it was built from, so
// Component(Combine(p...), i) is reference-identical to p[i]. The slot
// propagation early-out depends on that identity.
func Component(e Expression, idx int) Expression {
	n := ComponentCount(e.Type())
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("expr: component %d out of range for %s", idx, e.Type()))
	}
	if n == 1 {
		return e
	}
	if c, ok := e.(*combineExpr); ok {
		return c.parts[idx]
	}
	return &componentExpr{of: e, idx: idx}
}

type castExpr struct {
	t  Type
	of Expression
}

func (c *castExpr) Type() Type { return c.t }
func (c *castExpr) Operands() []Expression { return []Expression{c.of} }
func (c *castExpr) String() string {
	return fmt.Sprintf("%s(%s)", c.t, c.of.String())
}

// Cast coerces between the numeric scalar types. Identity when the
// types already match; constants fold eagerly.
func Cast(e Expression, to Type) (Expression, error) {
	from := e.Type()
	if from == to {
		return e, nil
	}
	if !IsNumeric(from) || !IsNumeric(to) {
		return nil, fmt.Errorf("expr: cannot cast %s to %s", from, to)
	}
	if folded, ok := foldCast(e, to); ok {
		return folded, nil
	}
	return &castExpr{t: to, of: e}, nil
}

func foldCast(e Expression, to Type) (Expression, bool) {
	var v float64
	switch c := e.(type) {
	case *constant[float32]:
		v = float64(c.v)
	case *constant[int32]:
		v = float64(c.v)
	case *constant[uint32]:
		v = float64(c.v)
	default:
		return nil, false
	}
	switch to {
	case Float:
		return FloatValue(float32(v)), true
	case Int:
		return IntValue(int32(v)), true
	case Uint:
		return UintValue(uint32(v)), true
	}
	return nil, false
}

// Evaluate reduces an expression graph of the built-in ops as far as
// constants allow. Already-reduced expressions come back unchanged, by
// reference.
func Evaluate(e Expression) Expression {
	switch x := e.(type) {
	case *combineExpr:
		changed := false
		parts := make([]Expression, len(x.parts))
		for i, p := range x.parts {
			parts[i] = Evaluate(p)
			if parts[i] != p {
				changed = true
			}
		}
		if !changed {
			return x
		}
		return Combine(parts...)
	case *componentExpr:
		of := Evaluate(x.of)
		if c, ok := of.(*combineExpr); ok {
			return Evaluate(c.parts[x.idx])
		}
		if of == x.of {
			return x
		}
		return &componentExpr{of: of, idx: x.idx}
	case *castExpr:
		of := Evaluate(x.of)
		if folded, ok := foldCast(of, x.t); ok {
			return folded
		}
		if of == x.of {
			return x
		}
		return &castExpr{t: x.t, of: of}
	}
	return e
}
