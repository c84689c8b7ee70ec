// Package simulator turns a planned route into concrete values: it executes
// each edge's relationship in route order against a per-run resolution store
// and records every step.
//
// Relationship evaluation has no built-in timeout. Context cancellation is
// observed between steps only; a relationship that blocks forever blocks the
// run.
package simulator

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/vk/actiongraph/internal/closure"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/planner"
	"github.com/vk/actiongraph/internal/resolution"
)

// Simulate derives target from inputs over the snapshot s.
//
// Reachability failures are reported before any relationship runs, with a nil
// trace. A failing relationship aborts the run: the returned trace then holds
// the steps completed so far and the error is a
// *hypergraph.RelationshipEvaluationError.
func Simulate(ctx context.Context, s *hypergraph.Snapshot, inputs map[string]any, target string) (*Trace, error) {
	known := slices.Sorted(maps.Keys(inputs))
	res := closure.Compute(ctx, s, known)

	route, err := planner.Plan(ctx, s, res, target)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, route, inputs)
}

// Execute runs a route. Every input the route consumes must be present in
// inputs.
func Execute(ctx context.Context, route *planner.Route, inputs map[string]any) (*Trace, error) {
	runID := uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("run_id", runID, "target", route.Target)

	for _, label := range route.Inputs {
		if _, ok := inputs[label]; !ok {
			return nil, &hypergraph.MissingInputError{Target: route.Target, Known: slices.Sorted(maps.Keys(inputs))}
		}
	}

	store := resolution.Seed(inputs)
	trace := &Trace{
		RunID:  runID,
		Target: route.Target,
		Inputs: make([]hypergraph.Binding, 0, len(inputs)),
		Steps:  make([]Step, 0, len(route.Edges)),
		Route:  route,
		store:  store,
	}
	for _, label := range store.Resolved() {
		v, _ := store.Value(label)
		trace.Inputs = append(trace.Inputs, hypergraph.Binding{Label: label, Value: v})
	}

	logger.Debug("Simulation started.", "steps", len(route.Edges))
	for _, e := range route.Edges {
		if err := ctx.Err(); err != nil {
			logger.Warn("Context canceled, aborting simulation.", "completed_steps", len(trace.Steps))
			return trace, err
		}

		bindings, err := store.Gather(e.Tail)
		if err != nil {
			// Route order guarantees every tail is resolved before its edge runs.
			return trace, fmt.Errorf("route out of order at edge #%d: %w", e.ID, err)
		}

		out, err := evaluate(e.Relationship, values(bindings))
		if err != nil {
			logger.Error("Relationship evaluation failed.", "edge", e.ID, "relationship", e.Relationship.Name(), "error", err)
			return trace, &hypergraph.RelationshipEvaluationError{Edge: e, Inputs: bindings, Err: err}
		}
		if err := store.Resolve(e.Head, out); err != nil {
			return trace, fmt.Errorf("edge #%d: %w", e.ID, err)
		}

		trace.Steps = append(trace.Steps, Step{
			EdgeID:       e.ID,
			Relationship: e.Relationship.Name(),
			Inputs:       bindings,
			Head:         e.Head,
			Output:       out,
		})
		logger.Debug("Step executed.", "edge", e.ID, "relationship", e.Relationship.Name(), "head", e.Head, "output", out)
	}

	logger.Debug("Simulation finished.", "steps", len(trace.Steps))
	return trace, nil
}

// evaluate invokes a relationship, turning a panic into an error so a
// misbehaving relationship cannot take the caller down with it.
func evaluate(rel hypergraph.Relationship, in []any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("relationship panicked: %v", r)
		}
	}()
	return rel.Evaluate(in)
}

func values(bindings []hypergraph.Binding) []any {
	out := make([]any, len(bindings))
	for i, b := range bindings {
		out[i] = b.Value
	}
	return out
}
