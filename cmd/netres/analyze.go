package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/netres/bfs"
	"github.com/katalvlaran/netres/coloring"
	"github.com/katalvlaran/netres/config"
	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/dfs"
	"github.com/katalvlaran/netres/dijkstra"
	"github.com/katalvlaran/netres/failure"
	"github.com/katalvlaran/netres/flow"
	"github.com/katalvlaran/netres/hierarchy"
	"github.com/katalvlaran/netres/metrics"
	"github.com/katalvlaran/netres/prim_kruskal"
)

// Analysis names accepted by -analysis.
const (
	AnalysisMST       = "mst"
	AnalysisRoute     = "route"
	AnalysisDisjoint  = "disjoint"
	AnalysisNode      = "node"
	AnalysisEdge      = "edge"
	AnalysisCascade   = "cascade"
	AnalysisCritical  = "critical"
	AnalysisColor     = "color"
	AnalysisHierarchy = "hierarchy"
)

// Analyses lists every analysis name.
var Analyses = []string{
	AnalysisMST, AnalysisRoute, AnalysisDisjoint, AnalysisNode, AnalysisEdge,
	AnalysisCascade, AnalysisCritical, AnalysisColor, AnalysisHierarchy,
}

// selfRecording analyses report their own run through failure.Analyzer.
var selfRecording = map[string]bool{
	AnalysisNode:     true,
	AnalysisEdge:     true,
	AnalysisCascade:  true,
	AnalysisCritical: true,
}

var (
	errUnknownAnalysis = errors.New("unknown analysis")
	errMissingArg      = errors.New("missing argument")
)

// Request selects an analysis and its inputs.
type Request struct {
	Analysis string
	Node     string
	From, To string
	K        int
	Seeds    []string
	Limit    int
}

// Execute runs req against g and logs the outcome at V(0).
func Execute(g *core.Graph, f config.Failure, req Request, log logr.Logger, rec metrics.Recorder) error {
	an, err := failure.NewAnalyzer(g,
		failure.WithConfig(f),
		failure.WithLogger(log),
		failure.WithRecorder(rec),
		failure.WithRouting(dijkstra.WithHeap()),
	)
	if err != nil {
		return err
	}
	log = log.WithValues("analysis", req.Analysis)
	start := time.Now()

	switch req.Analysis {
	case AnalysisMST:
		edges, total, err := prim_kruskal.Kruskal(g)
		if err != nil {
			return err
		}
		log.Info("spanning forest", "edges", len(edges), "weight", total,
			"components", g.NodeCount()-len(edges))

	case AnalysisRoute:
		if err := need(req.From, "-from", req.To, "-to"); err != nil {
			return err
		}
		res := dijkstra.ShortestPath(g, req.From, req.To, dijkstra.WithHeap())
		if !res.Reachable() {
			log.Info("no route", "from", req.From, "to", req.To)
			break
		}
		_, hops := bfs.ShortestPath(g, req.From, req.To)
		log.Info("route", "path", res.Path, "distance", res.Distance,
			"minHops", hops, "reliability", an.PathReliability(res.Path))

	case AnalysisDisjoint:
		if err := need(req.From, "-from", req.To, "-to"); err != nil {
			return err
		}
		paths := flow.DisjointPaths(g, req.From, req.To, req.K)
		for i, p := range paths {
			log.Info("disjoint path", "index", i, "path", p, "reliability", an.PathReliability(p))
		}
		log.Info("disjoint paths", "found", len(paths), "requested", req.K,
			"edgeConnectivity", flow.EdgeConnectivity(g, req.From, req.To))

	case AnalysisNode:
		if err := need(req.Node, "-node"); err != nil {
			return err
		}
		rep := an.AnalyzeNodeFailure(req.Node)
		log.Info("node failure", "run", rep.RunID, "node", rep.Node,
			"lossPct", round2(rep.ConnectivityLoss), "lostPairs", rep.LostPairs,
			"isolated", rep.IsolatedNodes, "affected", rep.AffectedNodes)

	case AnalysisEdge:
		if err := need(req.From, "-from", req.To, "-to"); err != nil {
			return err
		}
		rep := an.AnalyzeEdgeFailure(req.From, req.To)
		log.Info("edge failure", "run", rep.RunID, "from", rep.From, "to", rep.To,
			"affectedPairs", len(rep.AffectedPairs), "lostPairs", len(rep.LostPairs))

	case AnalysisCascade:
		if len(req.Seeds) == 0 {
			return fmt.Errorf("%w: -seeds or scenario seeds", errMissingArg)
		}
		rep := an.SimulateCascade(req.Seeds)
		for _, ph := range rep.Phases {
			log.Info("cascade phase", "run", rep.RunID, "round", ph.Round, "newlyFailed", ph.NewlyFailed)
		}
		log.Info("cascade", "run", rep.RunID, "seeds", rep.Seeds, "rounds", rep.Rounds,
			"totalFailed", rep.TotalFailed, "truncated", rep.Truncated)

	case AnalysisCritical:
		for i, rep := range an.CriticalNodes(req.Limit) {
			log.Info("critical node", "rank", i+1, "node", rep.Node, "lossPct", round2(rep.ConnectivityLoss))
		}
		log.Info("articulation points", "nodes", dfs.ArticulationPoints(g))

	case AnalysisColor:
		best, all := coloring.Best(g)
		for _, r := range all {
			ok, violations := coloring.Validate(g, r.Coloring)
			log.V(1).Info("heuristic", "name", r.Heuristic, "colors", r.Colors,
				"valid", ok, "violations", len(violations))
		}
		eff := coloring.AnalyzeEfficiency(g, best.Coloring)
		for _, id := range g.Nodes() {
			log.Info("channel", "node", id, "band", coloring.FrequencyBand(best.Coloring[id]))
		}
		log.Info("coloring", "heuristic", best.Heuristic, "colors", best.Colors,
			"efficiencyPct", round2(eff.Efficiency), "sharedChannel", coloring.MaximumIndependentSet(g))

	case AnalysisHierarchy:
		roster := hierarchy.New[string]()
		for _, id := range g.Nodes() {
			roster.Insert(id)
		}
		balanced := hierarchy.Rebuild(roster)
		before, after := hierarchy.Analyze(roster), hierarchy.Analyze(balanced)
		log.Info("command hierarchy", "size", after.Size,
			"heightBefore", before.Height, "heightAfter", after.Height,
			"optimal", after.OptimalHeight, "order", balanced.PreOrder())

	default:
		return fmt.Errorf("%w %q", errUnknownAnalysis, req.Analysis)
	}

	if !selfRecording[req.Analysis] {
		rec.ObserveRun(req.Analysis, time.Since(start))
	}

	return nil
}

// need checks (value, flag) pairs for empty values.
func need(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			return fmt.Errorf("%w: %s", errMissingArg, pairs[i+1])
		}
	}

	return nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
