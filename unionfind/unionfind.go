// Package unionfind provides a disjoint-set forest over string elements with
// path compression and union by rank.
//
// A Set is meant to live for one computation (Kruskal builds a fresh one per
// call). Every element must be registered with Add (or New) before Find or
// Union touch it: referring to an unknown element is a caller bug and panics
// with ErrUnknownElement, since it means the set and the graph disagree.
//
// Complexity: Find and Union run in O(α(n)) amortized.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement is the panic value (wrapped) raised when Find or Union
// is given an element that was never added.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// Set is a disjoint-set forest.
type Set struct {
	parent map[string]string
	rank   map[string]int
	count  int // number of disjoint sets
}

// New returns a Set where each of ids is its own singleton set.
// Duplicate ids are registered once.
func New(ids ...string) *Set {
	s := &Set{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		s.Add(id)
	}

	return s
}

// Add registers id as a singleton set. Adding an existing element is a no-op.
func (s *Set) Add(id string) {
	if _, ok := s.parent[id]; ok {
		return
	}
	s.parent[id] = id
	s.rank[id] = 0
	s.count++
}

// Has reports whether id was registered.
func (s *Set) Has(id string) bool {
	_, ok := s.parent[id]
	return ok
}

// Find returns the representative of the set containing id, compressing the
// path on the way (every visited node is re-pointed at its grandparent).
func (s *Set) Find(id string) string {
	if _, ok := s.parent[id]; !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownElement, id))
	}
	for s.parent[id] != id {
		s.parent[id] = s.parent[s.parent[id]]
		id = s.parent[id]
	}

	return id
}

// Union merges the sets containing a and b. It returns false when both were
// already in the same set.
func (s *Set) Union(a, b string) bool {
	rootA, rootB := s.Find(a), s.Find(b)
	if rootA == rootB {
		return false
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case s.rank[rootA] < s.rank[rootB]:
		s.parent[rootA] = rootB
	case s.rank[rootA] > s.rank[rootB]:
		s.parent[rootB] = rootA
	default:
		s.parent[rootB] = rootA
		s.rank[rootA]++
	}
	s.count--

	return true
}

// Connected reports whether a and b share a set.
func (s *Set) Connected(a, b string) bool {
	return s.Find(a) == s.Find(b)
}

// Count returns the number of disjoint sets.
func (s *Set) Count() int { return s.count }

// Len returns the number of registered elements.
func (s *Set) Len() int { return len(s.parent) }
