package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// FromCty converts v to ty and then into plain Go values: numbers become
// float64, sequences []any and objects or maps map[string]any.
func (c *Converter) FromCty(ctx context.Context, v cty.Value, ty cty.Type) (any, error) {
	logger := ctxlog.FromContext(ctx)

	if ty != cty.DynamicPseudoType && !v.Type().Equals(ty) {
		converted, err := convert.Convert(v, ty)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %s to required type %s: %w", v.Type().FriendlyName(), ty.FriendlyName(), err)
		}
		logger.Debug("Implicitly converted value type.", "from", v.Type().FriendlyName(), "to", ty.FriendlyName())
		v = converted
	}
	return toGo(v)
}

func toGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := []any{}
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			g, err := toGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := map[string]any{}
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			g, err := toGo(ev)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = g
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

// ToCty converts a native Go value into its corresponding cty.Value.
func (c *Converter) ToCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return x, nil
	case []any:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(x))
		for i, e := range x {
			cv, err := c.ToCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			elems[i] = cv
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(x))
		for k, e := range x {
			cv, err := c.ToCty(e)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// Format renders v in HCL syntax, falling back to %v for values cty cannot
// represent.
func (c *Converter) Format(v any) string {
	cv, err := c.ToCty(v)
	if err != nil || cv.IsNull() {
		if v == nil {
			return "null"
		}
		return fmt.Sprintf("%v", v)
	}
	return string(hclwrite.TokensForValue(cv).Bytes())
}

// ParseAssignment parses `label=expression` as given on the command line. The
// expression is any HCL expression that needs no variables: `3`, `-7.5`,
// `true`, `"text"`, `[1, 2]`.
func ParseAssignment(s string) (string, cty.Value, error) {
	label, src, ok := strings.Cut(s, "=")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return "", cty.NilVal, fmt.Errorf("expected label=value, got %q", s)
	}

	expr, diags := hclsyntax.ParseExpression([]byte(src), label, hcl.InitialPos)
	if diags.HasErrors() {
		return "", cty.NilVal, fmt.Errorf("invalid value for %q: %w", label, diags)
	}
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", cty.NilVal, fmt.Errorf("invalid value for %q: %w", label, diags)
	}
	return label, v, nil
}
