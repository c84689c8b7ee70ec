// Package registry provides the central "glue" for the module system.
//
// The Registry maps the relationship names used in graph files (e.g. "plus")
// to the compiled Relationship implementations that evaluate them. Modules
// populate it at startup through the Module interface; the builder reads from
// it when turning a loaded configuration into a hypergraph.
//
// Registering the same name twice is a programming error and panics, so a
// binary with conflicting modules fails on its first start rather than
// evaluating the wrong function at run time.
package registry
