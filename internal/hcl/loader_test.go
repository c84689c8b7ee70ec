package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/actiongraph/internal/config"
	"github.com/zclconf/go-cty/cty"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func edgeHCL(tail, head, rel string) string {
	return fmt.Sprintf("edge {\n  tail = %s\n  head = %q\n  relationship = %q\n}\n", tail, head, rel)
}

const orBranchHCL = `
node "A" {
  type        = number
  description = "first operand"
}

edge {
  tail         = ["A", "B"]
  head         = "C"
  relationship = "plus"
}

edge {
  tail         = ["A"]
  head         = "D"
  relationship = negate
}

solve "ab" {
  known = ["A", "B"]
}

simulate "ae" {
  target = "C"
  inputs = { A = 3, E = -7 }
}
`

func TestLoader_Load(t *testing.T) {
	dir := writeFiles(t, map[string]string{"graph.hcl": orBranchHCL})

	model, conv, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, conv)

	require.Len(t, model.Nodes, 1)
	assert.Equal(t, "A", model.Nodes[0].Label)
	assert.Equal(t, cty.Number, model.Nodes[0].Type)
	assert.Equal(t, "first operand", model.Nodes[0].Description)

	require.Len(t, model.Edges, 2)
	assert.Equal(t, []string{"A", "B"}, model.Edges[0].Tail)
	assert.Equal(t, "C", model.Edges[0].Head)
	assert.Equal(t, "plus", model.Edges[0].Relationship)
	assert.Equal(t, "negate", model.Edges[1].Relationship, "bare keyword relationship")
	assert.Equal(t, 10, model.Edges[0].DeclRange.Start.Line)

	require.Len(t, model.Scenarios, 2)
	solve := model.Scenarios[0]
	assert.Equal(t, config.Solve, solve.Kind)
	assert.Equal(t, "ab", solve.Name)
	assert.Equal(t, []string{"A", "B"}, solve.Known)

	sim := model.Scenarios[1]
	assert.Equal(t, config.Simulate, sim.Kind)
	assert.Equal(t, "C", sim.Target)
	require.Len(t, sim.Inputs, 2)
	assert.True(t, sim.Inputs["A"].RawEquals(cty.NumberIntVal(3)))
	assert.True(t, sim.Inputs["E"].RawEquals(cty.NumberIntVal(-7)))
}

func TestLoader_MergesFilesInLexicalOrder(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b.hcl":       edgeHCL(`["X"]`, "Y", "equal"),
		"a.hcl":       edgeHCL(`["A"]`, "B", "equal"),
		"sub/c.hcl":   edgeHCL(`["Y"]`, "Z", "equal"),
		"notes.txt":   `not hcl`,
		"sub/skip.tf": `edge {}`,
	})

	model, _, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	var heads []string
	for _, e := range model.Edges {
		heads = append(heads, e.Head)
	}
	assert.Equal(t, []string{"B", "Y", "Z"}, heads)
}

func TestLoader_SingleFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{"one.hcl": edgeHCL(`["A"]`, "B", "equal")})

	model, _, err := NewLoader().Load(context.Background(), filepath.Join(dir, "one.hcl"))
	require.NoError(t, err)
	assert.Len(t, model.Edges, 1)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		path    string
		wantErr string
	}{
		{
			name:    "missing path",
			path:    "does-not-exist",
			wantErr: "graph path not found",
		},
		{
			name:    "not an hcl file",
			files:   map[string]string{"graph.txt": ""},
			path:    "graph.txt",
			wantErr: "not an .hcl file",
		},
		{
			name:    "empty directory",
			files:   map[string]string{"readme.md": ""},
			path:    ".",
			wantErr: "no .hcl files found",
		},
		{
			name:    "syntax error",
			files:   map[string]string{"bad.hcl": `edge {`},
			path:    ".",
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing attribute",
			files:   map[string]string{"bad.hcl": "edge {\n  tail = [\"A\"]\n  relationship = \"equal\"\n}\n"},
			path:    ".",
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown block",
			files:   map[string]string{"bad.hcl": `step "x" {}`},
			path:    ".",
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "bad node type",
			files:   map[string]string{"bad.hcl": `node "A" { type = complex }`},
			path:    ".",
			wantErr: `unknown primitive type "complex"`,
		},
		{
			name:    "inputs not an object",
			files:   map[string]string{"bad.hcl": "simulate \"s\" {\n  target = \"C\"\n  inputs = [1]\n}\n"},
			path:    ".",
			wantErr: "inputs must be an object",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFiles(t, tc.files)
			_, _, err := NewLoader().Load(context.Background(), filepath.Join(dir, tc.path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestTypeExprToCtyType(t *testing.T) {
	testCases := []struct {
		src     string
		want    cty.Type
		wantErr bool
	}{
		{`node "x" { type = string }`, cty.String, false},
		{`node "x" { type = bool }`, cty.Bool, false},
		{`node "x" { type = any }`, cty.DynamicPseudoType, false},
		{`node "x" { type = list(number) }`, cty.List(cty.Number), false},
		{`node "x" { type = map(string) }`, cty.Map(cty.String), false},
		{`node "x" {}`, cty.DynamicPseudoType, false},
		{`node "x" { type = list(any) }`, cty.NilType, true},
		{`node "x" { type = tuple(number) }`, cty.NilType, true},
		{`node "x" { type = "number" }`, cty.NilType, true},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			dir := writeFiles(t, map[string]string{"n.hcl": tc.src})
			model, _, err := NewLoader().Load(context.Background(), dir)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, model.Nodes[0].Type)
		})
	}
}
