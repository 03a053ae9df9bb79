package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/netres/core"
)

// ShortestPath returns the cheapest route from start to end that uses only
// active nodes and non-vulnerable edges.
//
// Result rules:
//   - start == end and active: Path == [start], Distance == 0.
//   - nil graph, unknown or disabled endpoint, or no route: Path == nil,
//     Distance == +Inf.
//
// Ties between equally distant nodes are broken by node insertion order, so
// both strategies finalize nodes in the same sequence and return the same path.
//
// Complexity: O(V²) with StrategyScan, O((V + E) log V) with StrategyHeap.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) Result {
	// 1) Validate endpoints.
	if g == nil || !isActive(g, start) || !isActive(g, end) {
		return unreachable()
	}
	if start == end {
		return Result{Path: []string{start}, Distance: 0}
	}

	// 2) Run until end is finalized.
	r := newRunner(g, start, opts)
	r.run(end)

	d, ok := r.dist[end]
	if !ok || !r.visited[end] {
		return unreachable()
	}

	// 3) Walk predecessors back to start.
	path := []string{end}
	for cur := end; cur != start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, Distance: d}
}

// Distances returns the shortest distance from source to every node it can
// reach over the active graph, source included (0). Unreachable nodes are
// absent from the map. A nil graph or an unknown or disabled source yields
// an empty map.
func Distances(g *core.Graph, source string, opts ...Option) map[string]float64 {
	out := make(map[string]float64)
	if g == nil || !isActive(g, source) {
		return out
	}

	r := newRunner(g, source, opts)
	r.run("")
	for id, ok := range r.visited {
		if ok {
			out[id] = r.dist[id]
		}
	}

	return out
}

func isActive(g *core.Graph, id string) bool {
	return g.HasNode(id) && !g.IsDisabled(id)
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	source  string
	nodes   []string           // active nodes in insertion order
	index   map[string]int     // node → position in nodes, used for tie-breaks
	dist    map[string]float64 // best known distance; absent means +Inf
	prev    map[string]string
	visited map[string]bool
}

func newRunner(g *core.Graph, source string, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := g.ActiveNodes()
	index := make(map[string]int, len(nodes))
	for i, id := range nodes {
		index[id] = i
	}

	return &runner{
		g:       g,
		options: cfg,
		source:  source,
		nodes:   nodes,
		index:   index,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string, len(nodes)),
		visited: make(map[string]bool, len(nodes)),
	}
}

// run finalizes nodes in (distance, insertion index) order until none remain
// or target ("" for none) is finalized.
func (r *runner) run(target string) {
	if r.options.Strategy == StrategyHeap {
		r.runHeap(target)
		return
	}
	r.runScan(target)
}

// runScan is the array-scan variant.
func (r *runner) runScan(target string) {
	for {
		// 1) Pick the closest unfinalized node; the first in order wins ties.
		u, best := "", math.Inf(1)
		for _, id := range r.nodes {
			if r.visited[id] {
				continue
			}
			if d, ok := r.dist[id]; ok && d < best {
				u, best = id, d
			}
		}

		// 2) Nothing left within reach.
		if u == "" || best > r.options.MaxDistance {
			return
		}

		// 3) Finalize and relax.
		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u, nil)
	}
}

// runHeap is the lazy decrease-key variant.
func (r *runner) runHeap(target string) {
	pq := make(nodePQ, 0, len(r.nodes))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.source, dist: 0, order: r.index[r.source]})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id

		// Stale entry for an already finalized node.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return
		}

		r.visited[u] = true
		if u == target {
			return
		}
		r.relax(u, &pq)
	}
}

// relax improves distances of u's active neighbors. When pq is non-nil every
// improvement is also pushed onto the heap.
func (r *runner) relax(u string, pq *nodePQ) {
	for _, nb := range r.g.ActiveNeighbors(u) {
		if r.visited[nb.ID] {
			continue
		}
		nd := r.dist[u] + nb.Weight
		if nd > r.options.MaxDistance {
			continue
		}
		// Strictly better only, so the first predecessor found is kept on ties.
		if cur, ok := r.dist[nb.ID]; ok && nd >= cur {
			continue
		}
		r.dist[nb.ID] = nd
		r.prev[nb.ID] = u
		if pq != nil {
			heap.Push(pq, &nodeItem{id: nb.ID, dist: nd, order: r.index[nb.ID]})
		}
	}
}

// nodeItem represents a node and its tentative distance in the heap.
type nodeItem struct {
	id    string
	dist  float64
	order int // insertion index; breaks ties like the scan does
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, order).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, then lower insertion index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element after heap adjustment.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
