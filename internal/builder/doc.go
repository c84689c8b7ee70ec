/*
Package builder is responsible for the construction of the hypergraph. It acts
as the bridge between the static configuration model (defined in the 'config'
package) and the query engine (the 'engine' package).

Construction is a two-phase process:

 1. Node Creation: every explicitly declared node is added in declaration
    order, so it keeps its position even if an edge mentions it later.

 2. Edge Linking: each edge's relationship name is resolved through the
    registry and the edge is added to the hypergraph, which creates any node
    referenced only by edges and validates the edge's structure.

Errors from both phases are collected and returned together, each prefixed
with the source position of the offending declaration, so a single run
reports every broken edge in a file.
*/
package builder
