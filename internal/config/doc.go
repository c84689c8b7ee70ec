// Package config defines the format-agnostic configuration model for the
// application, along with the core interfaces (Loader, Converter) for
// loading and interpreting configuration from various sources.
//
// The `config.Model` is the single source of truth for the `builder` package,
// which turns it into a hypergraph, and for the `app` package, which runs its
// scenarios. Concrete implementations of the interfaces, such as for HCL, are
// provided in separate packages.
package config
