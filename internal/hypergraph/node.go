package hypergraph

import "fmt"

// Node is a uniquely labeled vertex of the hypergraph. It is created the first
// time a label is referenced by an edge, or explicitly with AddNode.
type Node struct {
	Label string
}

// Status is the resolution status of a node within a single run.
type Status int

const (
	// Unresolved indicates the node has no value in the current run.
	Unresolved Status = iota
	// Resolved indicates the node holds a value in the current run.
	Resolved
)

func (s Status) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// NodeState is a read-only view of a node's per-run resolution. A Resolved
// state always carries a value; an Unresolved one never does.
type NodeState struct {
	Label  string
	Status Status
	Value  any
}
