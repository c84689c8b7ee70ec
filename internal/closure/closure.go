// Package closure computes which nodes of a hypergraph become derivable from
// a set of known labels, and through which edge each one was first derived.
//
// The computation is a forward-chaining fixed point over the AND–OR structure
// of the hypergraph: a node is reached if it is known, or if at least one of
// its incoming edges has every tail label reached. It runs as an explicit
// round-based work queue, so there is no recursion and no cycle detection.
package closure

import (
	"context"
	"slices"

	"github.com/vk/actiongraph/internal/ctxlog"
	"github.com/vk/actiongraph/internal/hypergraph"
)

// NoWitness marks an entry that was not derived through an edge.
const NoWitness = -1

// Entry is the closure verdict for a single node.
type Entry struct {
	Label string `json:"label"`
	// Known is true if the node was part of the known set.
	Known bool `json:"known"`
	// Reached is true if the node is known or derivable.
	Reached bool `json:"reached"`
	// Witness is the ID of the edge that first derived the node, or NoWitness.
	Witness int `json:"witness"`
	// Order is the discovery order of a reached node, or -1.
	Order int `json:"order"`
	// Round is the relaxation round in which the node was reached; known
	// nodes are reached in round 0. It is -1 for unreached nodes.
	Round int `json:"round"`
}

// Result is the closure of a known set over a snapshot. It is total over the
// snapshot's node set.
type Result struct {
	entries map[string]*Entry
	nodes   []string // snapshot order
	reached []string // discovery order
	known   []string
	unknown []string
}

// Entry returns the verdict for label. The second value is false if label is
// not a node of the hypergraph.
func (r *Result) Entry(label string) (Entry, bool) {
	e, ok := r.entries[label]
	if !ok {
		return Entry{Label: label, Witness: NoWitness, Order: -1, Round: -1}, false
	}
	return *e, true
}

// IsReached reports whether label is known or derivable.
func (r *Result) IsReached(label string) bool {
	e, ok := r.entries[label]
	return ok && e.Reached
}

// Witness returns the ID of the edge that derived label.
func (r *Result) Witness(label string) (int, bool) {
	e, ok := r.entries[label]
	if !ok || e.Witness == NoWitness {
		return NoWitness, false
	}
	return e.Witness, true
}

// Order returns the discovery order of label, or -1 if it was not reached.
func (r *Result) Order(label string) int {
	if e, ok := r.entries[label]; ok {
		return e.Order
	}
	return -1
}

// Reached lists reached labels in discovery order.
func (r *Result) Reached() []string { return slices.Clone(r.reached) }

// Entries lists every node's verdict in node creation order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, 0, len(r.nodes))
	for _, label := range r.nodes {
		out = append(out, *r.entries[label])
	}
	return out
}

// Known lists the known labels that are part of the hypergraph, in node
// creation order.
func (r *Result) Known() []string { return slices.Clone(r.known) }

// Unknown lists known labels that are not part of the hypergraph. They are
// never reached.
func (r *Result) Unknown() []string { return slices.Clone(r.unknown) }

// Compute runs the closure of known over s.
//
// Ties are broken deterministically: when several edges become satisfied for
// the same head in the same round, the one with the lowest edge ID becomes
// the witness.
func Compute(ctx context.Context, s *hypergraph.Snapshot, known []string) *Result {
	logger := ctxlog.FromContext(ctx)

	res := &Result{
		entries: make(map[string]*Entry, len(s.Nodes())),
		nodes:   s.Nodes(),
	}
	for _, label := range s.Nodes() {
		res.entries[label] = &Entry{Label: label, Witness: NoWitness, Order: -1, Round: -1}
	}

	// Known labels are seeded in node creation order so the discovery order
	// does not depend on how the caller ordered them.
	seed := make([]string, 0, len(known))
	seen := make(map[string]struct{}, len(known))
	for _, label := range known {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		if !s.HasNode(label) {
			res.unknown = append(res.unknown, label)
			continue
		}
		seed = append(seed, label)
	}
	slices.SortFunc(seed, func(a, b string) int { return s.Position(a) - s.Position(b) })
	slices.Sort(res.unknown)
	if len(res.unknown) > 0 {
		logger.Warn("Known labels are not part of the hypergraph and are ignored.", "labels", res.unknown)
	}

	order := 0
	reach := func(label string, witness, round int) {
		e := res.entries[label]
		e.Reached = true
		e.Witness = witness
		e.Order = order
		e.Round = round
		order++
		res.reached = append(res.reached, label)
	}

	for _, label := range seed {
		res.entries[label].Known = true
		reach(label, NoWitness, 0)
	}
	res.known = slices.Clone(seed)

	// unmet counts tail labels of each edge that are not reached yet.
	unmet := make(map[int]int, len(s.Edges()))
	for _, e := range s.Edges() {
		unmet[e.ID] = len(e.Tail)
	}

	frontier := seed
	for round := 1; len(frontier) > 0; round++ {
		var candidates []*hypergraph.Edge
		for _, label := range frontier {
			for _, e := range s.Outgoing(label) {
				unmet[e.ID]--
				if unmet[e.ID] == 0 && !res.entries[e.Head].Reached {
					candidates = append(candidates, e)
				}
			}
		}
		slices.SortFunc(candidates, func(a, b *hypergraph.Edge) int { return a.ID - b.ID })

		var next []string
		for _, e := range candidates {
			if res.entries[e.Head].Reached {
				continue // A lower-ID edge already won this head in this round.
			}
			reach(e.Head, e.ID, round)
			next = append(next, e.Head)
		}
		logger.Debug("Closure round complete.", "round", round, "satisfied_edges", len(candidates), "newly_reached", len(next))
		frontier = next
	}

	logger.Debug("Closure computed.", "known", len(seed), "reached", len(res.reached), "nodes", len(res.nodes))
	return res
}
