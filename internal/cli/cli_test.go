package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-target", "C",
		"-input", "A=3",
		"-input", "E = -7",
		"-output", "JSON",
		"-log-level", "DEBUG",
		"graphs/", "more.hcl",
	}, &out)
	require.NoError(t, err)
	assert.False(t, exit)

	assert.Equal(t, []string{"graphs/", "more.hcl"}, cfg.GraphPaths)
	assert.Equal(t, "C", cfg.Target)
	require.Len(t, cfg.Inputs, 2)
	assert.True(t, cfg.Inputs["A"].RawEquals(cty.NumberIntVal(3)))
	assert.True(t, cfg.Inputs["E"].RawEquals(cty.NumberIntVal(-7)))
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Known(t *testing.T) {
	cfg, _, err := Parse([]string{"-known", " A, B,,C ", "g.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, cfg.Known)
	assert.Empty(t, cfg.Target)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"-nope", "g.hcl"}, "flag provided but not defined: -nope"},
		{"missing path", []string{"-known", "A"}, "missing GRAPH_PATH"},
		{"bad log format", []string{"-log-format", "xml", "g.hcl"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "g.hcl"}, "invalid log-level"},
		{"bad output", []string{"-output", "yaml", "g.hcl"}, "invalid output"},
		{"input without target", []string{"-input", "A=1", "g.hcl"}, "require a target"},
		{"malformed input", []string{"-input", "A", "g.hcl"}, "expected label=value"},
		{"input variable", []string{"-input", "A=B", "g.hcl"}, "invalid value"},
		{"duplicate input", []string{"-target", "C", "-input", "A=1", "-input", "A=2", "g.hcl"}, "given more than once"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			assert.False(t, exit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
