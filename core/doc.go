// Package core provides the weighted, undirected network Graph that every
// algorithm package in netres operates on.
//
// The Graph G = (V,E) is an adjacency list keyed by node ID:
//
//	adjacency[u] = [(v1,w1), (v2,w2), ...]   // insertion order
//
// Every undirected edge is stored twice, once for each endpoint, so that
// (a,b,w) ∈ adjacency ⇔ (b,a,w) ∈ adjacency. Parallel edges are allowed;
// self-loops are rejected.
//
// On top of storage the Graph carries two kinds of transient state flags:
//
//   - disabled nodes:   nodes excluded from traversal but kept in storage
//     (Disable/Enable), used to simulate hub failures;
//   - vulnerable edges: edges excluded from "active" queries but kept in
//     storage (MarkVulnerable/ClearVulnerable), used for disaster-aware routing.
//
// Flags never destroy information: Enable after Disable, or ClearVulnerable
// after MarkVulnerable, restores ActiveNeighbors exactly.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error            // O(1), idempotent
//	RemoveNode(id string)               // O(deg(v)·d̄ + V + marks), purges flags
//	HasNode(id string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) error // O(1), auto-creates endpoints
//	RemoveEdge(u, v string)             // O(deg(u)+deg(v)), clears vulnerability
//	HasEdge(u, v string) bool           // O(deg(u))
//
//	// State flags
//	Disable(id) / Enable(id) / IsDisabled(id)
//	MarkVulnerable(u,v) / ClearVulnerable(u,v) / IsVulnerable(u,v)
//	WithDisabled(ids, fn) / WithVulnerable(pairs, fn)  // scoped, restored by defer
//
//	// Queries
//	Nodes() []string                    // insertion order
//	Edges() []Edge                      // each undirected edge once
//	Neighbors(id) []Neighbor            // raw storage copy
//	ActiveNeighbors(id) []Neighbor      // minus disabled nodes and vulnerable edges
//	ActiveNodes() []string
//
// Errors:
//
//	ErrEmptyNodeID    – zero-length node ID
//	ErrBadWeight      – weight is not a finite positive number
//	ErrLoopNotAllowed – u == v in AddEdge
//
// Concurrency: a Graph is not safe for concurrent mutation. Callers that
// share one Graph across goroutines must serialize access themselves.
// Algorithms that flip flags temporarily (failure analysis) restore them
// before returning, so sequential reuse of a Graph is always safe.
package core
