package expr

import "fmt"

// Type is the value type carried by an expression. Built-in types cover
// the scalar and vector cases; hosts may introduce their own opaque
// composite types (see the slot package's struct archetypes), which the
// expr package treats as unknown.
type Type string

const (
	Invalid Type = ""
	Float   Type = "float"
	Float2  Type = "float2"
	Float3  Type = "float3"
	Float4  Type = "float4"
	Int     Type = "int"
	Uint    Type = "uint"
	Bool    Type = "bool"
)

var vectorWidths = map[Type]int{
	Float:  1,
	Float2: 2,
	Float3: 3,
	Float4: 4,
}

var vectorOfWidth = map[int]Type{
	1: Float,
	2: Float2,
	3: Float3,
	4: Float4,
}

// ComponentCount returns how many float scalars make up t, or 0 when t
// is not a float vector type.
func ComponentCount(t Type) int {
	return vectorWidths[t]
}

// IsNumeric reports whether t is one of the castable scalar types.
func IsNumeric(t Type) bool {
	switch t {
	case Float, Int, Uint:
		return true
	}
	return false
}

// Expression is an immutable typed value-or-computation node.
type Expression interface {
	Type() Type
	Operands() []Expression
	String() string
}

// ZeroValue builds the default constant for a built-in type.
func ZeroValue(t Type) (Expression, error) {
	switch t {
	case Float:
		return FloatValue(0), nil
	case Float2, Float3, Float4:
		parts := make([]Expression, vectorWidths[t])
		for i := range parts {
			parts[i] = FloatValue(0)
		}
		return Combine(parts...), nil
	case Int:
		return IntValue(0), nil
	case Uint:
		return UintValue(0), nil
	case Bool:
		return BoolValue(false), nil
	}
	return nil, fmt.Errorf("expr: no zero value for type %q", t)
}
