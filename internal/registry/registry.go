package registry

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/vk/actiongraph/internal/hypergraph"
)

// Module is the interface that all relationship modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the named relationships available to a single application
// instance.
type Registry struct {
	relationships map[string]hypergraph.Relationship
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{relationships: make(map[string]hypergraph.Relationship)}
}

// Load creates a Registry populated by every module in order.
func Load(modules ...Module) *Registry {
	r := New()
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// RegisterRelationship makes rel available under rel.Name().
func (r *Registry) RegisterRelationship(rel hypergraph.Relationship) {
	if rel == nil {
		panic("cannot register a nil relationship")
	}
	name := rel.Name()
	if name == "" {
		panic("relationship name cannot be empty")
	}
	if _, exists := r.relationships[name]; exists {
		panic(fmt.Sprintf("relationship with name '%s' already registered", name))
	}
	slog.Debug("Registering relationship.", "name", name)
	r.relationships[name] = rel
}

// Relationship looks up a relationship by name.
func (r *Registry) Relationship(name string) (hypergraph.Relationship, bool) {
	rel, ok := r.relationships[name]
	return rel, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.relationships))
}
