package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vk/actiongraph/internal/closure"
	"github.com/vk/actiongraph/internal/hypergraph"
)

// ReachSummary lists the reached nodes in discovery order with the edge that
// derived each one, followed by the unreached nodes.
func ReachSummary(w io.Writer, s *hypergraph.Snapshot, res *closure.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "**Closure**")
	fmt.Fprintf(tw, "known: [%s]\n", strings.Join(res.Known(), ", "))
	if unknown := res.Unknown(); len(unknown) > 0 {
		fmt.Fprintf(tw, "ignored: [%s]\n", strings.Join(unknown, ", "))
	}

	for _, label := range res.Reached() {
		e, _ := res.Entry(label)
		via := "input"
		if edge, ok := s.Edge(e.Witness); ok {
			via = fmt.Sprintf("%s #%d", edge.Relationship.Name(), edge.ID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.Order, label, via)
	}

	var unreached []string
	for _, e := range res.Entries() {
		if !e.Reached {
			unreached = append(unreached, e.Label)
		}
	}
	if len(unreached) > 0 {
		fmt.Fprintf(tw, "unreached: [%s]\n", strings.Join(unreached, ", "))
	}
	return tw.Flush()
}

// ClosureTree draws the witness derivation of target as a tree: each derived
// node is followed by its relationship and the tail nodes it was computed
// from. Inputs are the leaves. A node already expanded elsewhere in the tree
// is not expanded again.
func ClosureTree(w io.Writer, s *hypergraph.Snapshot, res *closure.Result, target string) error {
	if !res.IsReached(target) {
		_, err := fmt.Fprintf(w, "No viable path to %s\n", target)
		return err
	}

	t := &treeWriter{s: s, res: res, expanded: make(map[string]bool)}
	t.b.WriteString(t.label(target) + "\n")
	t.children(target, "")
	_, err := io.WriteString(w, t.b.String())
	return err
}

type treeWriter struct {
	b        strings.Builder
	s        *hypergraph.Snapshot
	res      *closure.Result
	expanded map[string]bool
}

func (t *treeWriter) label(name string) string {
	e, _ := t.res.Entry(name)
	switch {
	case e.Known:
		return name + " (input)"
	case t.expanded[name]:
		return name + " (see above)"
	default:
		return name
	}
}

func (t *treeWriter) children(name, indent string) {
	e, _ := t.res.Entry(name)
	if e.Known || t.expanded[name] {
		return
	}
	edge, ok := t.s.Edge(e.Witness)
	if !ok {
		return
	}
	t.expanded[name] = true

	t.b.WriteString(indent + "↓ " + edge.Relationship.Name() + "\n")
	for i, tail := range edge.Tail {
		branch, next := "├── ", "│   "
		if i == len(edge.Tail)-1 {
			branch, next = "└── ", "    "
		}
		t.b.WriteString(indent + branch + t.label(tail) + "\n")
		t.children(tail, indent+next)
	}
}

type closureDoc struct {
	Known   []string        `json:"known"`
	Ignored []string        `json:"ignored,omitempty"`
	Reached []string        `json:"reached"`
	Nodes   []closure.Entry `json:"nodes"`
}

// ClosureJSON writes the full closure result as an indented JSON document.
func ClosureJSON(w io.Writer, res *closure.Result) error {
	doc := closureDoc{
		Known:   nonNil(res.Known()),
		Ignored: res.Unknown(),
		Reached: nonNil(res.Reached()),
		Nodes:   res.Entries(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
