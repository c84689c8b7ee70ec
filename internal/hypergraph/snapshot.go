package hypergraph

// Snapshot is a read-only copy of a Hypergraph's topology taken at a point in
// time. It needs no locking and is what the closure, planning and simulation
// algorithms operate on.
type Snapshot struct {
	nodes    []string
	index    map[string]int
	edges    []*Edge
	byID     map[int]*Edge
	incoming map[string][]*Edge
	outgoing map[string][]*Edge
}

// Nodes returns node labels in creation order. The slice must not be modified.
func (s *Snapshot) Nodes() []string { return s.nodes }

// HasNode reports whether label is part of the topology.
func (s *Snapshot) HasNode(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Position returns the creation index of a node, or -1 if it is unknown.
func (s *Snapshot) Position(label string) int {
	if i, ok := s.index[label]; ok {
		return i
	}
	return -1
}

// Edges returns all edges in insertion order. The slice must not be modified.
func (s *Snapshot) Edges() []*Edge { return s.edges }

// Edge retrieves an edge by ID.
func (s *Snapshot) Edge(id int) (*Edge, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Incoming returns the edges whose head is label, in insertion order.
func (s *Snapshot) Incoming(label string) []*Edge { return s.incoming[label] }

// Outgoing returns the edges whose tail contains label, in insertion order.
func (s *Snapshot) Outgoing(label string) []*Edge { return s.outgoing[label] }
