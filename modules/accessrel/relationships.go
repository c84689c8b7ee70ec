package accessrel

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vk/actiongraph/modules/mathrel"
)

// Append adds every other input to the first one. A list gets the inputs as
// new elements; a string gets them concatenated, so they must be strings too.
// The first input is never modified.
func Append(values []any) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: append needs at least 1, got 0", mathrel.ErrArity)
	}
	switch first := values[0].(type) {
	case []any:
		out := slices.Clone(first)
		return append(out, values[1:]...), nil
	case string:
		var b strings.Builder
		b.WriteString(first)
		for i, v := range values[1:] {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("input %d: %w: cannot append %T to a string", i+1, mathrel.ErrType, v)
			}
			b.WriteString(s)
		}
		return b.String(), nil
	default:
		return nil, fmt.Errorf("input 0: %w: cannot append to %T", mathrel.ErrType, values[0])
	}
}

// Contains reports whether the first input equals any of the others. Numbers
// compare by value regardless of their Go kind.
func Contains(values []any) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: contains needs at least 1, got 0", mathrel.ErrArity)
	}
	for _, v := range values[1:] {
		same, err := mathrel.Equivalent([]any{values[0], v})
		if err != nil {
			return nil, err
		}
		if same.(bool) {
			return true, nil
		}
	}
	return false, nil
}

// Assign passes the first input through unchanged; the others only gate when
// the head becomes derivable.
func Assign(values []any) (any, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: assign needs at least 1, got 0", mathrel.ErrArity)
	}
	return values[0], nil
}
