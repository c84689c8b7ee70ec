// Package hypergraph holds the static topology of an action hypergraph: a set
// of labeled nodes and a set of hyperedges, each connecting an ordered tail of
// source labels to a single head label through a Relationship.
//
// # Topology vs. Resolution State
//
// The package stores structure only. A Node never carries a value; the value
// and status a node acquires during a simulation live in a per-call
// resolution store (see internal/resolution), which keeps repeated and
// concurrent simulations side-effect free on the shared topology.
//
// # Indexes
//
// Every edge is indexed twice, both in insertion order:
//   - by head label (Incoming), used for witness lookup and alternative derivations
//   - by tail membership (Outgoing), used by forward chaining in internal/closure
//
// Cycles are legal. No structural cycle check is done on insertion; the closure
// algorithm handles them.
//
// # Thread-Safety
//
// Hypergraph methods are safe for concurrent use. Algorithms should run on a
// Snapshot, which is immutable and lock-free.
package hypergraph
