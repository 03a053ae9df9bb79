package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/netres/core"
)

// Prim computes the minimum spanning tree of the component that contains root
// by growing outwards from root with a min-heap of candidate edges.
// Like Kruskal, it reads every stored edge and ignores failure flags.
//
// Error Conditions:
//   - ErrNilGraph     : if graph is nil.
//   - ErrEmptyRoot    : if root == "".
//   - ErrNodeNotFound : if root is not in the graph.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as visited and push its incident edges.
//  3. While the heap is not empty:
//     a. Pop the lightest candidate (ties broken by push order).
//     b. Skip it if its far endpoint is already in the tree.
//     c. Otherwise accept it and push the new node's outgoing candidates.
//  4. Return the tree edges (From is the node already in the tree) and weight.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, float64, error) {
	// 1. Validate.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasNode(root) {
		return nil, 0, ErrNodeNotFound
	}

	var (
		visited = map[string]bool{root: true}
		tree    = make([]core.Edge, 0, graph.NodeCount()-1)
		total   float64
		pq      = &edgePQ{}
		seq     int
	)
	push := func(from string) {
		for _, nb := range graph.Neighbors(from) {
			if visited[nb.ID] {
				continue
			}
			heap.Push(pq, candidate{edge: core.Edge{From: from, To: nb.ID, Weight: nb.Weight}, seq: seq})
			seq++
		}
	}

	// 2. Seed from root.
	push(root)

	// 3. Grow.
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		if visited[c.edge.To] {
			continue
		}
		visited[c.edge.To] = true
		tree = append(tree, c.edge)
		total += c.edge.Weight
		push(c.edge.To)
	}

	// 4. Done.
	return tree, total, nil
}

// candidate is a heap entry; seq keeps equal weights in push order.
type candidate struct {
	edge core.Edge
	seq  int
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// Weight, then by push sequence.
type edgePQ []candidate

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element after heap adjustment. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
