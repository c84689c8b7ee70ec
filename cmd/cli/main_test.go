package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/actiongraph/internal/cli"
)

const graphHCL = `
edge {
  tail         = ["A", "B"]
  head         = "C"
  relationship = "plus"
}

edge {
  tail         = ["C"]
  head         = "D"
  relationship = "negate"
}
`

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestRun_Simulate(t *testing.T) {
	t.Parallel()

	path := writeGraph(t, graphHCL)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(context.Background(), out, logs, []string{"-target", "D", "-input", "A=3", "-input", "B=4", path})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "negate: [C:7] -> D:-7")
	assert.Contains(t, out.String(), "result: D:-7")
	assert.Contains(t, logs.String(), "Simulation finished.")
}

func TestRun_InvalidHCLIsReported(t *testing.T) {
	t.Parallel()

	// Missing closing brace.
	path := writeGraph(t, `
edge {
  tail = ["A"]
`)
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_FailingScenarioIsAnError(t *testing.T) {
	t.Parallel()

	path := writeGraph(t, graphHCL+`
simulate "unreachable" {
  target = "D"
  inputs = { A = 1 }
}
`)

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 scenarios failed")
	var exitErr *cli.ExitError
	assert.NotErrorAs(t, err, &exitErr)
}
