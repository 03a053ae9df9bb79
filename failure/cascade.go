package failure

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/netres/dijkstra"
)

// SimulateCascade fails seeds and propagates: in each round every live node
// that reaches less than CascadeThreshold of the other live nodes fails too.
//
// By default a failed node only stops counting: it leaves the set of nodes
// that must be reached, yet routes may still pass through it. With
// Failure.IsolateFailed set, failed nodes are disabled while the cascade
// runs (restored afterwards) and carry no traffic, so a failed hub takes its
// spokes down with it.
//
// Seeds are deduplicated and always head TotalFailed, even when unknown to
// the graph (such seeds fail nothing else). Nodes failing in the same round
// do not see each other's failure until the next round. Nodes disabled
// before the call are neither evaluated nor counted.
//
// With unbounded routing every node of a component reaches the same share
// of the graph, so a cascade settles after one round. A distance budget set
// through WithRouting(dijkstra.WithMaxDistance(d)) makes reachability local
// and lets failures spread over several rounds.
//
// Propagation stops when a round fails nobody or after MaxCascadeRounds
// rounds; in the latter case Truncated is set.
func (a *Analyzer) SimulateCascade(seeds []string) CascadeReport {
	start := time.Now()
	rep := CascadeReport{RunID: uuid.New()}

	seen := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		if seen[s] {
			continue
		}
		seen[s] = true
		rep.Seeds = append(rep.Seeds, s)
	}
	rep.TotalFailed = slices.Clone(rep.Seeds)

	maxRounds := a.opts.Failure.MaxCascadeRounds
	for round := 1; round <= maxRounds; round++ {
		newly := a.belowThreshold(rep.TotalFailed)
		if len(newly) == 0 {
			break
		}

		rep.TotalFailed = append(rep.TotalFailed, newly...)
		rep.Phases = append(rep.Phases, CascadePhase{
			Round:            round,
			NewlyFailed:      newly,
			TotalFailedSoFar: slices.Clone(rep.TotalFailed),
		})
		rep.Rounds = round
		a.log.V(1).Info("cascade round",
			"run", rep.RunID, "round", round,
			"newlyFailed", newly, "totalFailed", len(rep.TotalFailed))
	}
	rep.Truncated = rep.Rounds == maxRounds

	a.log.V(1).Info("cascade settled",
		"run", rep.RunID, "seeds", rep.Seeds, "rounds", rep.Rounds,
		"totalFailed", len(rep.TotalFailed), "truncated", rep.Truncated)
	a.opts.Recorder.ObserveCascade(len(rep.TotalFailed), rep.Rounds, rep.Truncated)
	a.opts.Recorder.ObserveRun(KindCascade, time.Since(start))

	return rep
}

// belowThreshold returns the nodes failing in the next round, given the
// nodes failed so far.
func (a *Analyzer) belowThreshold(failed []string) []string {
	if !a.opts.Failure.IsolateFailed {
		return a.scan(failed)
	}

	var out []string
	a.graph.WithDisabled(failed, func() {
		out = a.scan(nil)
	})

	return out
}

// scan returns, in insertion order, the active nodes outside failed whose
// reachable share of the other such nodes is under the threshold.
func (a *Analyzer) scan(failed []string) []string {
	down := make(map[string]bool, len(failed))
	for _, id := range failed {
		down[id] = true
	}
	live := make([]string, 0, a.graph.NodeCount())
	for _, id := range a.graph.ActiveNodes() {
		if !down[id] {
			live = append(live, id)
		}
	}
	others := len(live) - 1
	if others <= 0 {
		return nil
	}

	var out []string
	for _, id := range live {
		reached := 0
		for other := range dijkstra.Distances(a.graph, id, a.opts.Routing...) {
			if other != id && !down[other] {
				reached++
			}
		}
		if float64(reached)/float64(others) < a.opts.Failure.CascadeThreshold {
			out = append(out, id)
		}
	}

	return out
}
