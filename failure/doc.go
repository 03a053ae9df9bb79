// Package failure measures how a network degrades when parts of it break.
//
// An Analyzer wraps a *core.Graph and answers four questions:
//
//   - AnalyzeNodeFailure: which node pairs lose their route when one node
//     goes down, and what share of connectivity that costs.
//   - AnalyzeEdgeFailure: which routes detour or vanish when one link is
//     marked vulnerable.
//   - SimulateCascade: how a set of initial failures spreads when every node
//     that can reach too little of the surviving network fails in turn.
//     Failed nodes keep relaying traffic unless config.Failure.IsolateFailed
//     is set.
//   - PathReliability: the probability that a route survives, given
//     per-edge survival probabilities.
//
// Reachability is computed with dijkstra over the active graph (disabled
// nodes and vulnerable edges excluded). Failure flags are set through
// core.Graph.WithDisabled and core.Graph.WithVulnerable, so the graph is
// restored when an analysis returns.
//
// Thresholds and reliabilities come from config.Failure. Each analysis logs
// one V(1) line through logr and reports to a metrics.Recorder; both default
// to no-ops.
//
// Example:
//
//	a, err := failure.NewAnalyzer(g, failure.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	rep := a.AnalyzeNodeFailure("Hub")
//	fmt.Printf("%.1f%% of pairs lost\n", rep.ConnectivityLoss)
package failure
