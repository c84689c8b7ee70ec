package hypergraph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTail       = errors.New("tail must contain at least one label")
	ErrDuplicateTail   = errors.New("tail contains a duplicate label")
	ErrHeadInTail      = errors.New("head must not be a member of the tail")
	ErrEmptyLabel      = errors.New("node label cannot be empty")
	ErrNilRelationship = errors.New("relationship cannot be nil")
	ErrNodeInUse       = errors.New("node is referenced by an edge")
	ErrUnknownEdge     = errors.New("edge not found")
	ErrUnknownNode     = errors.New("node not found")
)

// StructuralError reports a malformed edge or an invalid topology mutation.
// The offending call has no effect on the hypergraph.
type StructuralError struct {
	Tail  []string
	Head  string
	Label string
	Err   error
}

func (e *StructuralError) Error() string {
	switch {
	case e.Head != "" || len(e.Tail) > 0:
		return fmt.Sprintf("structural error in edge [%s] -> %q: %v", strings.Join(e.Tail, ", "), e.Head, e.Err)
	case e.Label != "":
		return fmt.Sprintf("structural error on node %q: %v", e.Label, e.Err)
	default:
		return fmt.Sprintf("structural error: %v", e.Err)
	}
}

func (e *StructuralError) Unwrap() error { return e.Err }

// UnreachableTargetError reports that a target cannot be derived from the
// supplied known labels. No relationship has been invoked when it is returned.
type UnreachableTargetError struct {
	Target string
	Known  []string
	// Err is ErrUnknownNode when the target is not part of the hypergraph.
	Err error
}

// MissingInputError is the name the reachability failure goes by when
// reported from the input side.
type MissingInputError = UnreachableTargetError

func (e *UnreachableTargetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("target %q is unreachable from [%s]: %v", e.Target, strings.Join(e.Known, ", "), e.Err)
	}
	return fmt.Sprintf("target %q is unreachable from [%s]", e.Target, strings.Join(e.Known, ", "))
}

func (e *UnreachableTargetError) Unwrap() error { return e.Err }

// Binding pairs a node label with the value it held when consumed.
type Binding struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// RelationshipEvaluationError wraps a failure raised by a Relationship while
// executing an edge, together with the tail values that caused it.
type RelationshipEvaluationError struct {
	Edge   *Edge
	Inputs []Binding
	Err    error
}

func (e *RelationshipEvaluationError) Error() string {
	parts := make([]string, len(e.Inputs))
	for i, b := range e.Inputs {
		parts[i] = fmt.Sprintf("%s:%v", b.Label, b.Value)
	}
	name := ""
	if e.Edge.Relationship != nil {
		name = e.Edge.Relationship.Name()
	}
	return fmt.Sprintf("relationship %q failed on edge #%d [%s] -> %s: %v",
		name, e.Edge.ID, strings.Join(parts, ", "), e.Edge.Head, e.Err)
}

func (e *RelationshipEvaluationError) Unwrap() error { return e.Err }
