// Package mathrel is the standard relationship library: arithmetic, rounding,
// comparison, boolean and trigonometric relationships over numeric and boolean
// node values.
//
// Numeric inputs may be any Go integer or float kind (HCL numbers arrive as
// float64); results are float64. Boolean relationships require bool inputs.
package mathrel

import (
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Relationships returns every relationship this package provides, in
// registration order.
func Relationships() []hypergraph.Relationship {
	return []hypergraph.Relationship{
		hypergraph.NewRelationship("equal", Equal),
		hypergraph.NewRelationship("increment", Increment),
		hypergraph.NewRelationship("negate", Negate),
		hypergraph.NewRelationship("invert", Invert),
		hypergraph.NewRelationship("floor", Floor),
		hypergraph.NewRelationship("round", Round),
		hypergraph.NewRelationship("plus", Plus),
		hypergraph.NewRelationship("product", Product),
		hypergraph.NewRelationship("max", Max),
		hypergraph.NewRelationship("min", Min),
		hypergraph.NewRelationship("equivalent", Equivalent),
		hypergraph.NewRelationship("or", Or),
		hypergraph.NewRelationship("and", And),
		hypergraph.NewRelationship("xor", Xor),
		hypergraph.NewRelationship("sin", Sin),
		hypergraph.NewRelationship("cos", Cos),
		hypergraph.NewRelationship("tan", Tan),
	}
}

// Register registers every relationship with the registry.
func (m *Module) Register(r *registry.Registry) {
	for _, rel := range Relationships() {
		r.RegisterRelationship(rel)
	}
}
