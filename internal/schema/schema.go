// Package schema holds the gohcl decoding targets for graph files.
//
// Attributes that error messages need to point at are kept as hcl.Expression
// so their source range survives decoding.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Node represents an optional `node` block declaring a node up front.
type Node struct {
	Label       string         `hcl:"label,label"`
	Type        hcl.Expression `hcl:"type,optional"`
	Description string         `hcl:"description,optional"`
}

// Edge represents an `edge` block. Relationship accepts a string or a bare
// keyword (`relationship = plus`).
type Edge struct {
	Tail         []string       `hcl:"tail"`
	Head         string         `hcl:"head"`
	Relationship hcl.Expression `hcl:"relationship"`
}

// Solve represents a `solve` scenario block. With a target it also explains
// how the target is derived.
type Solve struct {
	Name   string         `hcl:"name,label"`
	Known  hcl.Expression `hcl:"known"`
	Target string         `hcl:"target,optional"`
}

// Simulate represents a `simulate` scenario block.
type Simulate struct {
	Name   string         `hcl:"name,label"`
	Target string         `hcl:"target"`
	Inputs hcl.Expression `hcl:"inputs"`
}

// File is the top-level structure of a graph file.
type File struct {
	Nodes     []*Node     `hcl:"node,block"`
	Edges     []*Edge     `hcl:"edge,block"`
	Solves    []*Solve    `hcl:"solve,block"`
	Simulates []*Simulate `hcl:"simulate,block"`
}
