// Package engine provides a single facade over a hypergraph and the three
// query algorithms that run on it.
//
// # Architecture
//
// The Engine owns one Hypergraph and hides the split between its shared
// topology and the per-run state every query creates:
//
//	┌─────────────────────────────────────┐
//	│              Engine                 │
//	│   Solve / Plan / Simulate           │
//	└──────────┬────────────┬─────────────┘
//	           │            │
//	           ▼            ▼
//	  ┌────────────┐  ┌────────────┐
//	  │ Hypergraph │  │ Resolution │
//	  │ (Snapshot) │  │   Store    │
//	  │ (Topology) │  │ (per run)  │
//	  └────────────┘  └────────────┘
//
// Every query takes a Snapshot of the topology first and works on that, so
// queries never lock the hypergraph while relationships run and never see a
// half-applied mutation.
//
// # Thread-Safety
//
// Solve, Plan and Simulate are safe to call concurrently. Mutating the
// hypergraph while queries run is allowed; each query sees the topology as it
// was when the query started.
package engine
