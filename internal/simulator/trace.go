package simulator

import (
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/planner"
	"github.com/vk/actiongraph/internal/resolution"
)

// Step is one executed edge: the relationship, the tail values it consumed in
// tail order, and the value it produced for the head.
type Step struct {
	EdgeID       int                  `json:"edge_id"`
	Relationship string               `json:"relationship"`
	Inputs       []hypergraph.Binding `json:"inputs"`
	Head         string               `json:"head"`
	Output       any                  `json:"output"`
}

// Trace is the read-only record of one simulation.
type Trace struct {
	RunID  string               `json:"run_id"`
	Target string               `json:"target"`
	Inputs []hypergraph.Binding `json:"inputs"`
	Steps  []Step               `json:"steps"`
	// Route is the plan the run executed.
	Route *planner.Route `json:"-"`

	store *resolution.Store
}

// Value returns the resolved value of the target. It reports false when the
// run aborted before the target was produced.
func (t *Trace) Value() (any, bool) {
	if t.store == nil {
		return nil, false
	}
	return t.store.Value(t.Target)
}

// Node returns the state a node ended the run in.
func (t *Trace) Node(label string) hypergraph.NodeState {
	if t.store == nil {
		return hypergraph.NodeState{Label: label, Status: hypergraph.Unresolved}
	}
	return t.store.State(label)
}

// Complete reports whether the target was resolved.
func (t *Trace) Complete() bool {
	_, ok := t.Value()
	return ok
}
