package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/simulator"
)

// Trace writes the simulation as one `relationship: [inputs] -> head:value`
// line per executed step, followed by the result.
func Trace(w io.Writer, t *simulator.Trace) error {
	var b strings.Builder
	b.WriteString("**Simulation**\n")
	fmt.Fprintf(&b, "inputs: [%s]\n", bindings(t.Inputs))
	for _, step := range t.Steps {
		fmt.Fprintf(&b, "%s: [%s] -> %s:%v\n", step.Relationship, bindings(step.Inputs), step.Head, step.Output)
	}
	if v, ok := t.Value(); ok {
		fmt.Fprintf(&b, "result: %s:%v\n", t.Target, v)
	} else {
		fmt.Fprintf(&b, "result: %s unresolved\n", t.Target)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func bindings(bs []hypergraph.Binding) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = fmt.Sprintf("%s:%v", b.Label, b.Value)
	}
	return strings.Join(parts, ", ")
}

type traceDoc struct {
	*simulator.Trace
	Value    any  `json:"value"`
	Complete bool `json:"complete"`
}

// TraceJSON writes the trace as an indented JSON document.
func TraceJSON(w io.Writer, t *simulator.Trace) error {
	v, ok := t.Value()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(traceDoc{Trace: t, Value: v, Complete: ok})
}
