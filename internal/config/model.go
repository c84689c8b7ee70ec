package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of one or more graph
// files: the hypergraph's nodes and edges, and the queries to run on it.
type Model struct {
	Nodes     []*Node
	Edges     []*Edge
	Scenarios []*Scenario
}

// Node is an explicitly declared node. Nodes referenced only by edges are
// created implicitly and have no entry here.
type Node struct {
	Label       string
	Type        cty.Type // cty.DynamicPseudoType when undeclared
	Description string
	DeclRange   hcl.Range
}

// Edge is the format-agnostic representation of an `edge` block.
type Edge struct {
	Tail         []string
	Head         string
	Relationship string
	DeclRange    hcl.Range
}

// ScenarioKind tells which query a Scenario runs.
type ScenarioKind int

const (
	Solve ScenarioKind = iota
	Simulate
)

func (k ScenarioKind) String() string {
	switch k {
	case Solve:
		return "solve"
	case Simulate:
		return "simulate"
	default:
		return "unknown"
	}
}

// Scenario is a named query stored alongside the graph.
type Scenario struct {
	Kind ScenarioKind
	Name string

	// Known is the known set of a Solve scenario.
	Known []string

	// Target is the node a Simulate scenario derives. On a Solve scenario it
	// is optional and asks for the target's derivation.
	Target string

	// Inputs are the input values of a Simulate scenario.
	Inputs map[string]cty.Value

	DeclRange hcl.Range
}

// NodeType returns the declared type of label, or cty.DynamicPseudoType.
func (m *Model) NodeType(label string) cty.Type {
	for _, n := range m.Nodes {
		if n.Label == label {
			return n.Type
		}
	}
	return cty.DynamicPseudoType
}

// Merge appends other's declarations to m.
func (m *Model) Merge(other *Model) {
	m.Nodes = append(m.Nodes, other.Nodes...)
	m.Edges = append(m.Edges, other.Edges...)
	m.Scenarios = append(m.Scenarios, other.Scenarios...)
}
