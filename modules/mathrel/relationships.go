package mathrel

import (
	"math"
	"reflect"
)

// Equal returns the first input unchanged.
func Equal(values []any) (any, error) {
	if err := atLeastOne(values); err != nil {
		return nil, err
	}
	return values[0], nil
}

// Increment returns the first input plus one.
func Increment(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return x + 1, nil
}

// Negate returns the negative of the first input.
func Negate(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return -x, nil
}

// Invert returns the multiplicative inverse of the first input.
func Invert(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	if x == 0 {
		return nil, ErrDivisionByZero
	}
	return 1 / x, nil
}

// Floor truncates the first input towards negative infinity.
func Floor(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return math.Floor(x), nil
}

// Round returns the nearest whole number, rounding halves to even.
func Round(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return math.RoundToEven(x), nil
}

// Plus returns the sum of all inputs.
func Plus(values []any) (any, error) {
	xs, err := floats(values)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum, nil
}

// Product returns the product of all inputs.
func Product(values []any) (any, error) {
	xs, err := floats(values)
	if err != nil {
		return nil, err
	}
	out := 1.0
	for _, x := range xs {
		out *= x
	}
	return out, nil
}

// Max returns the largest input.
func Max(values []any) (any, error) {
	if err := atLeastOne(values); err != nil {
		return nil, err
	}
	xs, err := floats(values)
	if err != nil {
		return nil, err
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = max(out, x)
	}
	return out, nil
}

// Min returns the smallest input.
func Min(values []any) (any, error) {
	if err := atLeastOne(values); err != nil {
		return nil, err
	}
	xs, err := floats(values)
	if err != nil {
		return nil, err
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = min(out, x)
	}
	return out, nil
}

// Equivalent reports whether every input equals the first. Numbers compare by
// value regardless of their Go kind.
func Equivalent(values []any) (any, error) {
	if err := atLeastOne(values); err != nil {
		return nil, err
	}
	if xs, err := floats(values); err == nil {
		for _, x := range xs[1:] {
			if x != xs[0] {
				return false, nil
			}
		}
		return true, nil
	}
	for _, v := range values[1:] {
		if !reflect.DeepEqual(v, values[0]) {
			return false, nil
		}
	}
	return true, nil
}

// Or reports whether any input is true.
func Or(values []any) (any, error) {
	bs, err := bools(values)
	if err != nil {
		return nil, err
	}
	for _, b := range bs {
		if b {
			return true, nil
		}
	}
	return false, nil
}

// And reports whether every input is true.
func And(values []any) (any, error) {
	bs, err := bools(values)
	if err != nil {
		return nil, err
	}
	for _, b := range bs {
		if !b {
			return false, nil
		}
	}
	return true, nil
}

// Xor reports whether exactly one input is true.
func Xor(values []any) (any, error) {
	bs, err := bools(values)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n == 1, nil
}

// Sin returns the sine of the first input, in radians.
func Sin(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return math.Sin(x), nil
}

// Cos returns the cosine of the first input, in radians.
func Cos(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return math.Cos(x), nil
}

// Tan returns the tangent of the first input, in radians.
func Tan(values []any) (any, error) {
	x, err := unary(values)
	if err != nil {
		return nil, err
	}
	return math.Tan(x), nil
}
