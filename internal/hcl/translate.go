// This file translates decoded schema structs into the format-agnostic
// configuration model.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/actiongraph/internal/config"
	"github.com/vk/actiongraph/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

func translateFile(ctx context.Context, f *schema.File) (*config.Model, error) {
	m := &config.Model{}
	for _, n := range f.Nodes {
		node, err := translateNode(ctx, n)
		if err != nil {
			return nil, err
		}
		m.Nodes = append(m.Nodes, node)
	}
	for _, e := range f.Edges {
		edge, err := translateEdge(e)
		if err != nil {
			return nil, err
		}
		m.Edges = append(m.Edges, edge)
	}
	for _, s := range f.Solves {
		var known []string
		if diags := gohcl.DecodeExpression(s.Known, nil, &known); diags.HasErrors() {
			return nil, fmt.Errorf("solve %q: %w", s.Name, diags)
		}
		m.Scenarios = append(m.Scenarios, &config.Scenario{
			Kind:      config.Solve,
			Name:      s.Name,
			Known:     known,
			Target:    s.Target,
			DeclRange: s.Known.Range(),
		})
	}
	for _, s := range f.Simulates {
		inputs, err := translateInputs(s.Inputs)
		if err != nil {
			return nil, fmt.Errorf("simulate %q: %w", s.Name, err)
		}
		m.Scenarios = append(m.Scenarios, &config.Scenario{
			Kind:      config.Simulate,
			Name:      s.Name,
			Target:    s.Target,
			Inputs:    inputs,
			DeclRange: s.Inputs.Range(),
		})
	}
	return m, nil
}

func translateNode(ctx context.Context, n *schema.Node) (*config.Node, error) {
	ty, err := typeExprToCtyType(ctx, n.Type)
	if err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Label, err)
	}
	node := &config.Node{
		Label:       n.Label,
		Type:        ty,
		Description: n.Description,
	}
	if n.Type != nil {
		node.DeclRange = n.Type.Range()
	}
	return node, nil
}

func translateEdge(e *schema.Edge) (*config.Edge, error) {
	name := hcl.ExprAsKeyword(e.Relationship)
	if name == "" {
		if diags := gohcl.DecodeExpression(e.Relationship, nil, &name); diags.HasErrors() {
			return nil, fmt.Errorf("edge -> %q: %w", e.Head, diags)
		}
	}
	return &config.Edge{
		Tail:         e.Tail,
		Head:         e.Head,
		Relationship: name,
		DeclRange:    e.Relationship.Range(),
	}, nil
}

// translateInputs evaluates an `inputs` object into per-label values.
func translateInputs(expr hcl.Expression) (map[string]cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return map[string]cty.Value{}, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%s: inputs must be an object, got %s", expr.Range(), ty.FriendlyName())
	}
	out := make(map[string]cty.Value)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		out[k.AsString()] = v
	}
	return out, nil
}
