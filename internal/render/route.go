package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vk/actiongraph/internal/planner"
)

// Route lists the edges a simulation of the route would execute, in order.
func Route(w io.Writer, r *planner.Route) error {
	var b strings.Builder
	b.WriteString("**Route**\n")
	fmt.Fprintf(&b, "inputs: [%s]\n", strings.Join(r.Inputs, ", "))
	for _, e := range r.Edges {
		fmt.Fprintf(&b, "#%d %s\n", e.ID, e)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type routeEdge struct {
	ID           int      `json:"id"`
	Relationship string   `json:"relationship"`
	Tail         []string `json:"tail"`
	Head         string   `json:"head"`
}

type routeDoc struct {
	Target string      `json:"target"`
	Inputs []string    `json:"inputs"`
	Edges  []routeEdge `json:"edges"`
}

// RouteJSON writes the route as an indented JSON document.
func RouteJSON(w io.Writer, r *planner.Route) error {
	doc := routeDoc{Target: r.Target, Inputs: nonNil(r.Inputs), Edges: []routeEdge{}}
	for _, e := range r.Edges {
		doc.Edges = append(doc.Edges, routeEdge{
			ID:           e.ID,
			Relationship: e.Relationship.Name(),
			Tail:         e.Tail,
			Head:         e.Head,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
