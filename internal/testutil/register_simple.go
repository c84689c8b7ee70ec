package testutil

import (
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a single relationship.
type SimpleModule struct {
	Name string
	Fn   func(values []any) (any, error)
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Name != "" && m.Fn != nil {
		r.RegisterRelationship(hypergraph.NewRelationship(m.Name, m.Fn))
	}
}
