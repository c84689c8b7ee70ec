package hypergraph

import (
	"fmt"
	"strings"
)

// Relationship is a named, deterministic, pure function mapping an ordered
// list of input values to a single output value. It is supplied by the
// embedding application; the core never interprets its errors.
type Relationship interface {
	Name() string
	Evaluate(values []any) (any, error)
}

// RelationshipFunc adapts a plain function into a Relationship.
type RelationshipFunc struct {
	Label string
	Fn    func(values []any) (any, error)
}

// NewRelationship returns a Relationship named name that evaluates fn.
func NewRelationship(name string, fn func(values []any) (any, error)) *RelationshipFunc {
	return &RelationshipFunc{Label: name, Fn: fn}
}

func (r *RelationshipFunc) Name() string { return r.Label }

func (r *RelationshipFunc) Evaluate(values []any) (any, error) {
	return r.Fn(values)
}

// Edge is a hyperedge: if every Tail label is known, Head can be derived by
// evaluating Relationship over the tail values, in tail order.
type Edge struct {
	// ID is the insertion sequence number of the edge. It is never reused
	// within a Hypergraph and doubles as the tie-break priority: a lower ID
	// wins when two edges could derive the same head at the same time.
	ID           int
	Tail         []string
	Head         string
	Relationship Relationship
}

// String renders the edge as `name: [A, B] -> C`.
func (e *Edge) String() string {
	name := "<nil>"
	if e.Relationship != nil {
		name = e.Relationship.Name()
	}
	return fmt.Sprintf("%s: [%s] -> %s", name, strings.Join(e.Tail, ", "), e.Head)
}
