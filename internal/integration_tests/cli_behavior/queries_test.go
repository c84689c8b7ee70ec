package integration_tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/actiongraph/internal/app"
	"github.com/vk/actiongraph/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

const chainHCL = `
edge {
  tail         = ["A"]
  head         = "B"
  relationship = increment
}
edge {
  tail         = ["B"]
  head         = "C"
  relationship = increment
}
edge {
  tail         = ["X", "C"]
  head         = "Y"
  relationship = max
}

simulate "declared" {
  target = "C"
  inputs = { A = 0 }
}
`

// Test for: an ad-hoc known set replaces the declared scenarios
func TestCLIBehavior_KnownSolve(t *testing.T) {
	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": chainHCL}, app.Config{Known: []string{"A", "ghost"}})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.NotContains(t, result.Output, "declared")
	assert.Contains(t, result.Output, "known: [A]\n")
	assert.Contains(t, result.Output, "ignored: [ghost]\n")
	assert.Contains(t, result.Output, "unreached: [X, Y]\n")
	assert.Contains(t, result.LogOutput, "Known labels are not part of the hypergraph and are ignored.")
}

// Test for: a known set with a target explains the derivation
func TestCLIBehavior_KnownSolveWithTarget(t *testing.T) {
	cfg := app.Config{Known: []string{"A"}, Target: "C"}

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": chainHCL}, cfg)

	require.NoError(t, result.Err)
	want := `# solve "cli"
C
↓ increment
└── B
    ↓ increment
    └── A (input)
**Route**
inputs: [A]
#0 increment: [A] -> B
#1 increment: [B] -> C

`
	assert.Equal(t, want, result.Output)
}

// Test for: json output can be decoded by other tools
func TestCLIBehavior_JSONOutput(t *testing.T) {
	cfg := app.Config{
		Target: "C",
		Inputs: map[string]cty.Value{"A": cty.NumberIntVal(1)},
		Output: "json",
	}

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": chainHCL}, cfg)

	require.NoError(t, result.Err)
	var doc struct {
		RunID    string  `json:"run_id"`
		Target   string  `json:"target"`
		Value    float64 `json:"value"`
		Complete bool    `json:"complete"`
		Steps    []struct {
			Head   string  `json:"head"`
			Output float64 `json:"output"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Output), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, "C", doc.Target)
	assert.Equal(t, 3.0, doc.Value)
	assert.True(t, doc.Complete)
	require.Len(t, doc.Steps, 2)
	assert.Equal(t, "B", doc.Steps[0].Head)
	assert.Equal(t, 2.0, doc.Steps[0].Output)
}

// Test for: log format and level are honored
func TestCLIBehavior_JSONLogs(t *testing.T) {
	cfg := app.Config{LogFormat: "json", LogLevel: "error"}

	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": chainHCL}, cfg)

	require.NoError(t, result.Err)
	assert.Empty(t, result.LogOutput, "nothing at error level is logged on success")
	assert.Contains(t, result.Output, "result: C:2")
}
