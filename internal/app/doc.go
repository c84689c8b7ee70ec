// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// An App loads graph files, builds the hypergraph once, and then answers one
// or more queries against it: an ad-hoc query described by Config, or every
// scenario declared in the files.
package app
