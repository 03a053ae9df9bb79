package failure

import (
	"slices"
	"sort"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/netres/bfs"
	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/dijkstra"
)

// Analyzer runs failure scenarios against one graph. Every analysis flips
// failure flags only inside a core scope, so the graph is unchanged when a
// method returns, panics included. An Analyzer is not safe for concurrent
// use, and nothing else may mutate the graph while a method runs.
type Analyzer struct {
	graph *core.Graph
	opts  Options
	log   logr.Logger
}

// NewAnalyzer validates opts and binds them to g.
func NewAnalyzer(g *core.Graph, opts ...Option) (*Analyzer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.Failure.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{graph: g, opts: o, log: o.Logger.WithName("failure")}, nil
}

// Options returns the effective settings.
func (a *Analyzer) Options() Options { return a.opts }

// AnalyzeNodeFailure switches node off and measures how many ordered pairs
// of the remaining live nodes lose their route. An unknown node yields a
// report with only Node set.
//
// Steps:
//  1. Disable node for the duration of the analysis.
//  2. Run one single-source Dijkstra per live node and count unreachable
//     targets; a target missed by any source is isolated.
//  3. Split the live graph into components; everything outside the largest
//     one is affected.
//  4. Restore the node, then log and record the result.
//
// Complexity: O(V · Dijkstra) time, O(V) memory per source.
func (a *Analyzer) AnalyzeNodeFailure(node string) NodeFailureReport {
	rep := NodeFailureReport{Node: node}
	if !a.graph.HasNode(node) {
		return rep
	}
	start := time.Now()
	rep.RunID = uuid.New()

	// 1. Scoped failure.
	a.graph.WithDisabled([]string{node}, func() {
		live := a.graph.ActiveNodes()

		// 2. Pairwise reachability.
		isolated := make(map[string]bool)
		for _, s := range live {
			dist := dijkstra.Distances(a.graph, s, a.opts.Routing...)
			for _, t := range live {
				if t == s {
					continue
				}
				rep.TotalPairs++
				if _, ok := dist[t]; !ok {
					rep.LostPairs++
					isolated[t] = true
				}
			}
		}
		for _, id := range live {
			if isolated[id] {
				rep.IsolatedNodes = append(rep.IsolatedNodes, id)
			}
		}

		// 3. Components outside the largest.
		comps := bfs.Components(a.graph)
		if len(comps) > 1 {
			largest := bfs.Largest(comps)
			for _, c := range comps {
				if c[0] == largest[0] {
					continue
				}
				rep.AffectedNodes = append(rep.AffectedNodes, c...)
			}
		}
	})
	if rep.TotalPairs > 0 {
		rep.ConnectivityLoss = float64(rep.LostPairs) / float64(rep.TotalPairs) * 100
	}

	// 4. Report.
	a.log.V(1).Info("node failure analyzed",
		"run", rep.RunID, "node", node,
		"lostPairs", rep.LostPairs, "totalPairs", rep.TotalPairs,
		"lossPct", rep.ConnectivityLoss)
	a.opts.Recorder.SetConnectivityLoss(node, rep.ConnectivityLoss)
	a.opts.Recorder.ObserveRun(KindNodeFailure, time.Since(start))

	return rep
}

// AnalyzeEdgeFailure marks the edge u-v vulnerable and re-routes every
// ordered pair of live nodes. Pairs whose new route still passes through
// both endpoints are affected; pairs that were connected before and are not
// now are lost. A missing edge yields a report with only From and To set.
func (a *Analyzer) AnalyzeEdgeFailure(u, v string) EdgeFailureReport {
	rep := EdgeFailureReport{From: u, To: v}
	if !a.graph.HasEdge(u, v) {
		return rep
	}
	start := time.Now()
	rep.RunID = uuid.New()

	live := a.graph.ActiveNodes()
	before := make(map[string]map[string]float64, len(live))
	for _, s := range live {
		before[s] = dijkstra.Distances(a.graph, s, a.opts.Routing...)
	}

	a.graph.WithVulnerable([]core.Pair{{A: u, B: v}}, func() {
		for _, s := range live {
			for _, t := range live {
				if s == t {
					continue
				}
				res := dijkstra.ShortestPath(a.graph, s, t, a.opts.Routing...)
				if !res.Reachable() {
					if _, was := before[s][t]; was {
						rep.LostPairs = append(rep.LostPairs, core.Pair{A: s, B: t})
					}
					continue
				}
				if slices.Contains(res.Path, u) && slices.Contains(res.Path, v) {
					rep.AffectedPairs = append(rep.AffectedPairs, core.Pair{A: s, B: t})
				}
			}
		}
	})

	a.log.V(1).Info("edge failure analyzed",
		"run", rep.RunID, "from", u, "to", v,
		"affectedPairs", len(rep.AffectedPairs), "lostPairs", len(rep.LostPairs))
	a.opts.Recorder.ObserveRun(KindEdgeFailure, time.Since(start))

	return rep
}

// CriticalNodes analyzes the failure of every live node and returns the
// reports ordered by ConnectivityLoss, highest first. Equal losses keep
// insertion order. limit <= 0 returns every report.
func (a *Analyzer) CriticalNodes(limit int) []NodeFailureReport {
	start := time.Now()
	live := a.graph.ActiveNodes()
	reports := make([]NodeFailureReport, 0, len(live))
	for _, id := range live {
		reports = append(reports, a.AnalyzeNodeFailure(id))
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].ConnectivityLoss > reports[j].ConnectivityLoss
	})
	if limit > 0 && limit < len(reports) {
		reports = reports[:limit]
	}
	a.opts.Recorder.ObserveRun(KindCritical, time.Since(start))

	return reports
}

// PathReliability is the probability that every hop of path survives,
// taking NominalReliability per healthy edge and VulnerableReliability per
// vulnerable one. Hops are not checked for existence. Paths shorter than two
// nodes are certain (1.0).
func (a *Analyzer) PathReliability(path []string) float64 {
	if len(path) < 2 {
		return 1.0
	}
	r := 1.0
	for i := 1; i < len(path); i++ {
		if a.graph.IsVulnerable(path[i-1], path[i]) {
			r *= a.opts.Failure.VulnerableReliability
		} else {
			r *= a.opts.Failure.NominalReliability
		}
	}

	return r
}
