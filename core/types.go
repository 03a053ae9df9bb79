package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrBadWeight indicates a weight that is zero, negative, NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight must be a finite positive number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Neighbor is one entry of a node's adjacency list.
type Neighbor struct {
	// ID is the neighbor node identifier.
	ID string

	// Weight is the cost of the connecting edge (distance, cost, travel time).
	Weight float64
}

// Edge is the logical, deduplicated view of an undirected edge.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Pair names the two endpoints of an undirected edge. Order is not significant
// for any Graph query that accepts a Pair.
type Pair struct {
	A, B string
}

// Graph is a weighted, undirected network with transient failure flags.
//
// order keeps node insertion order so that every enumeration (Nodes, Edges,
// ActiveNodes) is deterministic. adjacency lists are stored symmetrically.
// vulnerable holds both orientations of every marked edge.
type Graph struct {
	order      []string
	adjacency  map[string][]Neighbor
	disabled   map[string]struct{}
	vulnerable map[Pair]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency:  make(map[string][]Neighbor),
		disabled:   make(map[string]struct{}),
		vulnerable: make(map[Pair]struct{}),
	}
}
