// Package accessrel provides relationships over collection and string values:
// building lists, membership tests and plain assignment.
package accessrel

import (
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Relationships returns every relationship this package provides.
func Relationships() []hypergraph.Relationship {
	return []hypergraph.Relationship{
		hypergraph.NewRelationship("append", Append),
		hypergraph.NewRelationship("contains", Contains),
		hypergraph.NewRelationship("assign", Assign),
	}
}

// Register registers every relationship with the registry.
func (m *Module) Register(r *registry.Registry) {
	for _, rel := range Relationships() {
		r.RegisterRelationship(rel)
	}
}
