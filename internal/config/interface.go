package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter bridges configuration values and the plain Go values that
// relationships consume.
type Converter interface {
	// FromCty converts v into a Go value, after converting it to ty first.
	// cty.DynamicPseudoType keeps the value's own type.
	FromCty(ctx context.Context, v cty.Value, ty cty.Type) (any, error)

	// ToCty converts a native Go value (such as a relationship output) into
	// its equivalent cty.Value.
	ToCty(v any) (cty.Value, error)

	// Format renders a Go value in the configuration's own syntax.
	Format(v any) string
}
