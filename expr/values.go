package expr

import (
	"fmt"
	"strconv"
)

type constant[T comparable] struct {
	t Type
	v T
}

func (c *constant[T]) Type() Type { return c.t }

func (c *constant[T]) Operands() []Expression { return nil }

func (c *constant[T]) String() string { return fmt.Sprintf("%v", c.v) }

// FloatValue builds a float scalar constant.
func FloatValue(v float32) Expression {
	return &constant[float32]{t: Float, v: v}
}

// IntValue builds an int scalar constant.
func IntValue(v int32) Expression {
	return &constant[int32]{t: Int, v: v}
}

// UintValue builds a uint scalar constant.
func UintValue(v uint32) Expression {
	return &constant[uint32]{t: Uint, v: v}
}

// BoolValue builds a bool constant.
func BoolValue(v bool) Expression {
	return &constant[bool]{t: Bool, v: v}
}

// FloatOf reads a float constant back out of e, evaluating first if
// needed.
func FloatOf(e Expression) (float32, error) {
	c, ok := Evaluate(e).(*constant[float32])
	if !ok {
		return 0, fmt.Errorf("expr: %s is not a float constant", describe(e))
	}
	return c.v, nil
}

// IntOf reads an int constant back out of e.
func IntOf(e Expression) (int32, error) {
	c, ok := Evaluate(e).(*constant[int32])
	if !ok {
		return 0, fmt.Errorf("expr: %s is not an int constant", describe(e))
	}
	return c.v, nil
}

// UintOf reads a uint constant back out of e.
func UintOf(e Expression) (uint32, error) {
	c, ok := Evaluate(e).(*constant[uint32])
	if !ok {
		return 0, fmt.Errorf("expr: %s is not a uint constant", describe(e))
	}
	return c.v, nil
}

// BoolOf reads a bool constant back out of e.
func BoolOf(e Expression) (bool, error) {
	c, ok := Evaluate(e).(*constant[bool])
	if !ok {
		return false, fmt.Errorf("expr: %s is not a bool constant", describe(e))
	}
	return c.v, nil
}

// FloatsOf reads every scalar of a float vector expression.
func FloatsOf(e Expression) ([]float32, error) {
	if e == nil {
		return nil, fmt.Errorf("expr: nil expression")
	}
	n := ComponentCount(e.Type())
	if n == 0 {
		return nil, fmt.Errorf("expr: %s is not a float vector", describe(e))
	}
	if n == 1 {
		v, err := FloatOf(e)
		if err != nil {
			return nil, err
		}
		return []float32{v}, nil
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := FloatOf(Component(e, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func describe(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Type()) + " " + strconv.Quote(e.String())
}
