package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/actiongraph/internal/config"
	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/hypergraph"
	"github.com/vk/actiongraph/internal/registry"
)

// ErrUnknownRelationship is returned for an edge naming a relationship that no
// module registered.
var ErrUnknownRelationship = errors.New("unknown relationship")

// Build constructs a hypergraph from a config model.
func Build(ctx context.Context, model *config.Model, r *registry.Registry) (*hypergraph.Hypergraph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting hypergraph construction.")
	g := hypergraph.New()

	var errs []error
	errs = append(errs, createNodes(ctx, model, g)...)
	logger.Debug("Build: Node creation complete.", "node_count", len(g.Nodes()))

	errs = append(errs, linkEdges(ctx, model, g, r)...)
	logger.Debug("Build: Edge linking complete.", "edge_count", len(g.Edges()))

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	logger.Info("Build: Hypergraph construction successful.", "nodes", len(g.Nodes()), "edges", len(g.Edges()))
	return g, nil
}

func createNodes(ctx context.Context, model *config.Model, g *hypergraph.Hypergraph) []error {
	logger := ctxlog.FromContext(ctx)
	var errs []error
	for _, n := range model.Nodes {
		if g.HasNode(n.Label) {
			logger.Warn("Duplicate node declaration found, the first one is kept.", "node", n.Label, "at", n.DeclRange.String())
			continue
		}
		if err := g.AddNode(n.Label); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.DeclRange, err))
		}
	}
	return errs
}

func linkEdges(ctx context.Context, model *config.Model, g *hypergraph.Hypergraph, r *registry.Registry) []error {
	logger := ctxlog.FromContext(ctx)
	var errs []error
	for _, e := range model.Edges {
		rel, ok := r.Relationship(e.Relationship)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: %w %q (available: %v)", e.DeclRange, ErrUnknownRelationship, e.Relationship, r.Names()))
			continue
		}
		edge, err := g.AddEdge(e.Tail, e.Head, rel)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.DeclRange, err))
			continue
		}
		logger.Debug("Linked edge.", "edge", edge.ID, "definition", edge.String())
	}
	return errs
}
