package engine

import (
	"context"

	"github.com/vk/actiongraph/internal/closure"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/planner"
	"github.com/vk/actiongraph/internal/simulator"
)

// Engine answers closure, planning and simulation queries over a hypergraph.
type Engine struct {
	graph *hypergraph.Hypergraph
}

// New wraps g. A nil g starts from an empty hypergraph.
func New(g *hypergraph.Hypergraph) *Engine {
	if g == nil {
		g = hypergraph.New()
	}
	return &Engine{graph: g}
}

// Graph returns the underlying hypergraph for construction.
func (e *Engine) Graph() *hypergraph.Hypergraph { return e.graph }

// Solve computes which nodes are derivable from known, without invoking any
// relationship.
func (e *Engine) Solve(ctx context.Context, known []string) *closure.Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Solve started.", "known", known)

	res := closure.Compute(ctx, e.graph.Snapshot(), known)

	logger.Info("Solve finished.", "reached", len(res.Reached()))
	return res
}

// Plan returns the route that Simulate would execute for target, without
// running it.
func (e *Engine) Plan(ctx context.Context, known []string, target string) (*planner.Route, error) {
	snap := e.graph.Snapshot()
	res := closure.Compute(ctx, snap, known)
	return planner.Plan(ctx, snap, res, target)
}

// Simulate derives target from concrete input values and returns the trace of
// the run. See simulator.Simulate for the failure contract.
func (e *Engine) Simulate(ctx context.Context, inputs map[string]any, target string) (*simulator.Trace, error) {
	logger := ctxlog.FromContext(ctx).With("target", target)
	logger.Debug("Simulate started.", "inputs", len(inputs))

	trace, err := simulator.Simulate(ctx, e.graph.Snapshot(), inputs, target)
	if err != nil {
		logger.Warn("Simulation failed.", "error", err)
		return trace, err
	}

	logger.Info("Simulation finished.", "run_id", trace.RunID, "steps", len(trace.Steps))
	return trace, nil
}
