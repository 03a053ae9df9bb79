// Package netres is an in-memory resilience engine for communication
// networks: build an undirected weighted topology, knock out nodes or links,
// and measure what still talks to what.
//
// The module is organized as one package per concern:
//
//	core/         — Graph with disabled nodes and vulnerable edges, scoped overlays
//	unionfind/    — disjoint-set forest used by Kruskal
//	prim_kruskal/ — minimum spanning forest (Kruskal, Prim)
//	dijkstra/     — weighted routing that skips disabled nodes and vulnerable links
//	bfs/          — hop-count routing and connected components
//	dfs/          — articulation points and bounded simple-path enumeration
//	flow/         — k edge-disjoint backup routes and edge connectivity
//	failure/      — node, edge and cascade failure analysis, path reliability
//	coloring/     — Welsh–Powell frequency assignment
//	hierarchy/    — AVL command tree with rebuild and balance report
//	builder/      — topology constructors and fault overlays for tests and demos
//	config/       — YAML scenario and tuning, env overrides via viper
//	metrics/      — Prometheus recorder for failure runs
//	cmd/netres/   — command-line driver
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// Disabling B leaves A─C─D connected; marking C─D vulnerable as well
// isolates D.
package netres
