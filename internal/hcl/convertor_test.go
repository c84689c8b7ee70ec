package hcl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestConverter_FromCty(t *testing.T) {
	testCases := []struct {
		name string
		in   cty.Value
		ty   cty.Type
		want any
	}{
		{"number", cty.NumberIntVal(3), cty.DynamicPseudoType, 3.0},
		{"negative float", cty.NumberFloatVal(-7.5), cty.DynamicPseudoType, -7.5},
		{"bool", cty.True, cty.DynamicPseudoType, true},
		{"string", cty.StringVal("x"), cty.DynamicPseudoType, "x"},
		{"null", cty.NullVal(cty.Number), cty.DynamicPseudoType, nil},
		{"tuple", cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("a")}), cty.DynamicPseudoType, []any{1.0, "a"}},
		{"object", cty.ObjectVal(map[string]cty.Value{"k": cty.True}), cty.DynamicPseudoType, map[string]any{"k": true}},
		{"string to declared number", cty.StringVal("42"), cty.Number, 42.0},
		{"number to declared string", cty.NumberIntVal(5), cty.String, "5"},
		{"tuple to declared list", cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}), cty.List(cty.Number), []any{1.0}},
	}

	c := NewConverter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.FromCty(context.Background(), tc.in, tc.ty)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConverter_FromCtyErrors(t *testing.T) {
	c := NewConverter()

	_, err := c.FromCty(context.Background(), cty.StringVal("abc"), cty.Number)
	assert.ErrorContains(t, err, "cannot convert string to required type number")

	_, err = c.FromCty(context.Background(), cty.UnknownVal(cty.Number), cty.DynamicPseudoType)
	assert.Error(t, err)
}

func TestConverter_ToCty(t *testing.T) {
	c := NewConverter()

	v, err := c.ToCty(10.0)
	require.NoError(t, err)
	assert.True(t, v.RawEquals(cty.NumberFloatVal(10)))

	v, err = c.ToCty(3)
	require.NoError(t, err)
	assert.True(t, v.RawEquals(cty.NumberIntVal(3)))

	v, err = c.ToCty([]any{true, "x"})
	require.NoError(t, err)
	assert.True(t, v.RawEquals(cty.TupleVal([]cty.Value{cty.True, cty.StringVal("x")})))

	v, err = c.ToCty(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())

	_, err = c.ToCty(make(chan int))
	assert.Error(t, err)
}

func TestConverter_Format(t *testing.T) {
	c := NewConverter()
	assert.Equal(t, "10", c.Format(10.0))
	assert.Equal(t, "0.25", c.Format(0.25))
	assert.Equal(t, "true", c.Format(true))
	assert.Equal(t, `"x"`, c.Format("x"))
	assert.Equal(t, "null", c.Format(nil))
}

func TestParseAssignment(t *testing.T) {
	testCases := []struct {
		in        string
		wantLabel string
		want      cty.Value
	}{
		{"A=3", "A", cty.NumberIntVal(3)},
		{"E = -7", "E", cty.NumberIntVal(-7)},
		{"flag=true", "flag", cty.True},
		{`name="x=y"`, "name", cty.StringVal("x=y")},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			label, v, err := ParseAssignment(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLabel, label)
			assert.True(t, v.RawEquals(tc.want), "got %#v", v)
		})
	}

	for _, bad := range []string{"A", "=3", "A=", "A=unquoted", "A=[1,"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, _, err := ParseAssignment(bad)
			assert.Error(t, err)
		})
	}
}
