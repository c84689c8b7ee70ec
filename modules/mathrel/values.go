package mathrel

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrArity          = errors.New("wrong number of inputs")
	ErrType           = errors.New("unsupported input type")
)

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrType, v)
	}
}

func floats(values []any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func bools(values []any) ([]bool, error) {
	out := make([]bool, len(values))
	for i, v := range values {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("input %d: %w: %T is not a bool", i, ErrType, v)
		}
		out[i] = b
	}
	return out, nil
}

// unary extracts the first input as a number. Extra inputs are ignored.
func unary(values []any) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: need at least 1, got 0", ErrArity)
	}
	return toFloat(values[0])
}

func atLeastOne(values []any) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: need at least 1, got 0", ErrArity)
	}
	return nil
}
