// Package planner extracts an executable route from a closure: the minimal
// set of witness edges that derives a target from the known inputs, ordered
// so that every edge runs after the edges producing its tail.
package planner

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/actiongraph/internal/closure"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/hypergraph"
)

// Route is an ordered list of edge evaluations deriving Target.
type Route struct {
	Target string
	// Inputs lists the known labels the route actually consumes, in
	// discovery order. It can be smaller than the known set.
	Inputs []string
	// Edges is the execution order: ascending discovery order of each edge's
	// head, ties broken by edge ID.
	Edges []*hypergraph.Edge
}

// Plan walks witness pointers back from target until every leaf is a known
// label, and returns the resulting edges in execution order.
//
// Exactly one edge is chosen per derived node, so the route is acyclic even
// when the hypergraph is not.
func Plan(ctx context.Context, s *hypergraph.Snapshot, res *closure.Result, target string) (*Route, error) {
	logger := ctxlog.FromContext(ctx)

	known := append(res.Known(), res.Unknown()...)
	if !s.HasNode(target) {
		return nil, &hypergraph.UnreachableTargetError{Target: target, Known: known, Err: hypergraph.ErrUnknownNode}
	}
	if !res.IsReached(target) {
		return nil, &hypergraph.UnreachableTargetError{Target: target, Known: known}
	}

	route := &Route{Target: target}
	visited := map[string]struct{}{target: {}}
	stack := []string{target}
	for len(stack) > 0 {
		label := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entry, _ := res.Entry(label)
		if entry.Known {
			route.Inputs = append(route.Inputs, label)
			continue
		}

		e, ok := s.Edge(entry.Witness)
		if !ok {
			// A reached, non-known node always has a witness from the same snapshot.
			return nil, fmt.Errorf("closure inconsistent with topology: node %q has no witness edge", label)
		}
		route.Edges = append(route.Edges, e)
		for _, tail := range e.Tail {
			if _, seen := visited[tail]; !seen {
				visited[tail] = struct{}{}
				stack = append(stack, tail)
			}
		}
	}

	slices.SortFunc(route.Edges, func(a, b *hypergraph.Edge) int {
		if d := res.Order(a.Head) - res.Order(b.Head); d != 0 {
			return d
		}
		return a.ID - b.ID
	})
	slices.SortFunc(route.Inputs, func(a, b string) int { return res.Order(a) - res.Order(b) })

	logger.Debug("Route planned.", "target", target, "steps", len(route.Edges), "inputs", route.Inputs)
	return route, nil
}
