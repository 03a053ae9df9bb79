package flow

import "github.com/katalvlaran/netres/core"

// residual holds remaining unit capacities per directed arc. Each node keeps
// its arcs in insertion order; an arc dropped at zero capacity and later
// restored by a reverse push goes to the back of its list.
type residual struct {
	order map[string][]string
	cap   map[string]map[string]int
	flow  map[core.Pair]int // net units pushed u→v; negative means v→u
}

// newResidual gives every distinct neighbor v of u an arc u→v of capacity 1.
// Parallel edges collapse into one arc.
func newResidual(g *core.Graph) *residual {
	r := &residual{
		order: make(map[string][]string, g.NodeCount()),
		cap:   make(map[string]map[string]int, g.NodeCount()),
		flow:  make(map[core.Pair]int),
	}
	for _, u := range g.Nodes() {
		r.cap[u] = make(map[string]int)
		for _, nb := range g.Neighbors(u) {
			if _, dup := r.cap[u][nb.ID]; dup {
				continue
			}
			r.cap[u][nb.ID] = 1
			r.order[u] = append(r.order[u], nb.ID)
		}
	}

	return r
}

// arcs returns u's arcs that still have capacity, in order.
func (r *residual) arcs(u string) []string {
	return r.order[u]
}

// augment pushes one unit along path: forward arcs lose a unit (dropped at
// zero) and reverse arcs gain one.
func (r *residual) augment(path []string) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]

		r.cap[u][v]--
		if r.cap[u][v] == 0 {
			delete(r.cap[u], v)
			r.order[u] = remove(r.order[u], v)
		}

		if _, ok := r.cap[v][u]; !ok {
			r.order[v] = append(r.order[v], u)
		}
		r.cap[v][u]++

		r.flow[core.Pair{A: u, B: v}]++
		r.flow[core.Pair{A: v, B: u}]--
	}
}

func remove(list []string, id string) []string {
	for i, x := range list {
		if x == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}

	return list
}
