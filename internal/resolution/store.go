// Package resolution holds the per-run state of a simulation: which nodes are
// resolved and the value each one holds.
//
// # Purpose
//
// The hypergraph topology is shared and read-only during a run. Everything a
// run writes goes into a Store created for that run alone, so two simulations
// over the same hypergraph never observe each other's values, and nothing has
// to be reset between calls.
//
// # Characteristics
//
//   - **Ephemeral:** Created fresh for each simulation, discarded with its trace
//   - **Single-owner:** Written only by the goroutine executing the run
//   - **Write-once:** A node is resolved at most once per run
package resolution

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vk/actiongraph/internal/hypergraph"
)

// Store maps node labels to their resolved value for a single run. A label
// absent from the map is Unresolved.
type Store struct {
	values map[string]any
	order  []string // resolution order
}

// New creates an empty store.
func New() *Store {
	return &Store{values: make(map[string]any)}
}

// Seed creates a store with every input already resolved, in sorted label
// order.
func Seed(inputs map[string]any) *Store {
	s := New()
	for _, label := range slices.Sorted(maps.Keys(inputs)) {
		s.values[label] = inputs[label]
		s.order = append(s.order, label)
	}
	return s
}

// Resolve records the value of a node. Resolving a node twice in the same run
// is an error.
func (s *Store) Resolve(label string, value any) error {
	if _, ok := s.values[label]; ok {
		return fmt.Errorf("node %q is already resolved in this run", label)
	}
	s.values[label] = value
	s.order = append(s.order, label)
	return nil
}

// Value returns the value of a resolved node.
func (s *Store) Value(label string) (any, bool) {
	v, ok := s.values[label]
	return v, ok
}

// Status returns Resolved if label holds a value in this run.
func (s *Store) Status(label string) hypergraph.Status {
	if _, ok := s.values[label]; ok {
		return hypergraph.Resolved
	}
	return hypergraph.Unresolved
}

// State returns the per-run view of a node.
func (s *Store) State(label string) hypergraph.NodeState {
	v, ok := s.values[label]
	if !ok {
		return hypergraph.NodeState{Label: label, Status: hypergraph.Unresolved}
	}
	return hypergraph.NodeState{Label: label, Status: hypergraph.Resolved, Value: v}
}

// Gather returns the bindings for labels, in order. It fails on the first
// unresolved label.
func (s *Store) Gather(labels []string) ([]hypergraph.Binding, error) {
	out := make([]hypergraph.Binding, len(labels))
	for i, label := range labels {
		v, ok := s.values[label]
		if !ok {
			return nil, fmt.Errorf("node %q is not resolved", label)
		}
		out[i] = hypergraph.Binding{Label: label, Value: v}
	}
	return out, nil
}

// Resolved lists resolved labels in resolution order.
func (s *Store) Resolved() []string { return slices.Clone(s.order) }
