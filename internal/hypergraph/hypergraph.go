package hypergraph

import (
	"fmt"
	"slices"
	"sync"
)

// Hypergraph owns the node set and the edge set, and maintains the head and
// tail-membership indexes. It holds no per-run state.
type Hypergraph struct {
	mu       sync.RWMutex
	nodes    map[string]*Node
	order    []string // node labels in creation order
	edges    []*Edge  // insertion order
	byID     map[int]*Edge
	incoming map[string][]*Edge // Key: head label
	outgoing map[string][]*Edge // Key: tail label
	nextID   int
}

// New creates and returns an initialized, empty Hypergraph.
func New() *Hypergraph {
	return &Hypergraph{
		nodes:    make(map[string]*Node),
		byID:     make(map[int]*Edge),
		incoming: make(map[string][]*Edge),
		outgoing: make(map[string][]*Edge),
	}
}

// AddNode adds a node with the given label. If the node already exists, the
// function does nothing.
func (g *Hypergraph) AddNode(label string) error {
	if label == "" {
		return &StructuralError{Err: ErrEmptyLabel}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(label)
	return nil
}

func (g *Hypergraph) addNodeLocked(label string) {
	if _, ok := g.nodes[label]; ok {
		return
	}
	g.nodes[label] = &Node{Label: label}
	g.order = append(g.order, label)
}

// AddEdge validates and inserts a hyperedge from tail to head. Missing nodes
// are created. On failure the hypergraph is left untouched and a
// *StructuralError is returned.
func (g *Hypergraph) AddEdge(tail []string, head string, rel Relationship) (*Edge, error) {
	if err := validateEdge(tail, head, rel); err != nil {
		return nil, &StructuralError{Tail: slices.Clone(tail), Head: head, Err: err}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e := &Edge{
		ID:           g.nextID,
		Tail:         slices.Clone(tail),
		Head:         head,
		Relationship: rel,
	}
	g.nextID++

	for _, label := range e.Tail {
		g.addNodeLocked(label)
		g.outgoing[label] = append(g.outgoing[label], e)
	}
	g.addNodeLocked(head)
	g.incoming[head] = append(g.incoming[head], e)
	g.edges = append(g.edges, e)
	g.byID[e.ID] = e

	return e, nil
}

func validateEdge(tail []string, head string, rel Relationship) error {
	if len(tail) == 0 {
		return ErrEmptyTail
	}
	if head == "" {
		return ErrEmptyLabel
	}
	if rel == nil {
		return ErrNilRelationship
	}
	seen := make(map[string]struct{}, len(tail))
	for _, label := range tail {
		if label == "" {
			return ErrEmptyLabel
		}
		if label == head {
			return ErrHeadInTail
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTail, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}

// RemoveEdge deletes the edge with the given ID from the edge set and from
// both indexes. Node entries are kept.
func (g *Hypergraph) RemoveEdge(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.byID[id]
	if !ok {
		return &StructuralError{Err: fmt.Errorf("%w: #%d", ErrUnknownEdge, id)}
	}

	g.edges = slices.DeleteFunc(g.edges, func(x *Edge) bool { return x == e })
	dropFromIndex(g.incoming, e.Head, e)
	for _, label := range e.Tail {
		dropFromIndex(g.outgoing, label, e)
	}
	delete(g.byID, id)
	return nil
}

func dropFromIndex(index map[string][]*Edge, key string, e *Edge) {
	remaining := slices.DeleteFunc(index[key], func(x *Edge) bool { return x == e })
	if len(remaining) == 0 {
		delete(index, key)
		return
	}
	index[key] = remaining
}

// RemoveNode deletes a node that no edge references. Removing a node still
// used as a head or tail member is refused with ErrNodeInUse.
func (g *Hypergraph) RemoveNode(label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[label]; !ok {
		return &StructuralError{Label: label, Err: ErrUnknownNode}
	}
	if len(g.incoming[label]) > 0 || len(g.outgoing[label]) > 0 {
		return &StructuralError{Label: label, Err: ErrNodeInUse}
	}

	delete(g.nodes, label)
	g.order = slices.DeleteFunc(g.order, func(l string) bool { return l == label })
	return nil
}

// Node retrieves a node by label.
func (g *Hypergraph) Node(label string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[label]
	return n, ok
}

// HasNode reports whether a node with the given label exists.
func (g *Hypergraph) HasNode(label string) bool {
	_, ok := g.Node(label)
	return ok
}

// Nodes returns all node labels in creation order.
func (g *Hypergraph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Edges returns all edges in insertion order.
func (g *Hypergraph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.edges)
}

// Edge retrieves an edge by its ID.
func (g *Hypergraph) Edge(id int) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.byID[id]
	return e, ok
}

// Incoming returns the edges whose head is label, in insertion order.
func (g *Hypergraph) Incoming(label string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.incoming[label])
}

// Outgoing returns the edges whose tail contains label, in insertion order.
func (g *Hypergraph) Outgoing(label string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.outgoing[label])
}

// Snapshot captures the current topology as an immutable view. Edges are
// shared, not copied, since they never change after insertion.
func (g *Hypergraph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		nodes:    slices.Clone(g.order),
		index:    make(map[string]int, len(g.order)),
		edges:    slices.Clone(g.edges),
		byID:     make(map[int]*Edge, len(g.byID)),
		incoming: make(map[string][]*Edge, len(g.incoming)),
		outgoing: make(map[string][]*Edge, len(g.outgoing)),
	}
	for i, label := range s.nodes {
		s.index[label] = i
	}
	for id, e := range g.byID {
		s.byID[id] = e
	}
	for k, v := range g.incoming {
		s.incoming[k] = slices.Clone(v)
	}
	for k, v := range g.outgoing {
		s.outgoing[k] = slices.Clone(v)
	}
	return s
}
