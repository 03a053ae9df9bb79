package bfs

import (
	"fmt"

	"github.com/katalvlaran/netres/core"
)

// item is a queued node with its hop count.
type item struct {
	id    string
	depth int
}

// walker holds the state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []item
	res   *Result
}

// BFS walks the active graph from start in non-decreasing hop count.
//
// Error Conditions:
//   - ErrNilGraph      : if g is nil.
//   - ErrBadMaxDepth   : if WithMaxDepth got a negative value.
//   - ErrStartNotFound : if start is not in g.
//   - ErrStartDisabled : if start is disabled.
//   - ctx.Err()        : if the context ends mid-walk.
//   - a wrapped OnVisit error, with the partial Result.
//
// Steps:
//  1. Validate graph, options and start node.
//  2. Enqueue start at depth 0.
//  3. Dequeue, record, call OnVisit, enqueue unseen active neighbors in
//     adjacency order until the queue drains.
//
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}
	if g.IsDisabled(start) {
		return nil, ErrStartDisabled
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]item, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 2. Seed.
	w.push(start, 0, "")

	// 3. Walk.
	return w.res, w.run()
}

// push records id as reached at depth d from parent and queues it.
// The Depth entry doubles as the visited mark.
func (w *walker) push(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, item{id: id, depth: d})
}

func (w *walker) run() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		it := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, it.id)
		if err := w.opts.OnVisit(it.id, it.depth); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", it.id, err)
		}

		next := it.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.graph.ActiveNeighbors(it.id) {
			if _, seen := w.res.Depth[nb.ID]; seen {
				continue
			}
			w.push(nb.ID, next, it.id)
		}
	}

	return nil
}
