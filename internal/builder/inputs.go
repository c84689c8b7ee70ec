package builder

import (
	"context"
	"fmt"

	"github.com/vk/actiongraph/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Inputs converts configuration values into the Go values a simulation runs
// on, coercing each one to its node's declared type.
func Inputs(ctx context.Context, model *config.Model, conv config.Converter, values map[string]cty.Value) (map[string]any, error) {
	out := make(map[string]any, len(values))
	for label, v := range values {
		goVal, err := conv.FromCty(ctx, v, model.NodeType(label))
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", label, err)
		}
		out[label] = goVal
	}
	return out, nil
}
