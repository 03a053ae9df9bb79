package failure

import (
	"errors"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/katalvlaran/netres/config"
	"github.com/katalvlaran/netres/core"
	"github.com/katalvlaran/netres/dijkstra"
	"github.com/katalvlaran/netres/metrics"
)

// ErrNilGraph indicates that NewAnalyzer was given a nil graph.
var ErrNilGraph = errors.New("failure: graph is nil")

// Analysis kinds reported to metrics.Recorder.ObserveRun.
const (
	KindNodeFailure = "node_failure"
	KindEdgeFailure = "edge_failure"
	KindCascade     = "cascade"
	KindCritical    = "critical_nodes"
)

// Options configures an Analyzer.
type Options struct {
	// Failure holds thresholds and reliabilities. Validated by NewAnalyzer.
	Failure config.Failure

	// Logger receives one V(1) line per analysis. Default: logr.Discard().
	Logger logr.Logger

	// Recorder receives timings and results. Default: metrics.Noop{}.
	Recorder metrics.Recorder

	// Routing is passed to every dijkstra call.
	Routing []dijkstra.Option
}

// Option configures Options.
type Option func(*Options)

// WithConfig replaces the failure settings.
func WithConfig(f config.Failure) Option {
	return func(o *Options) { o.Failure = f }
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder sets the metrics recorder. A nil recorder is ignored.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithRouting forwards dijkstra options (strategy, distance cap) to every
// reachability query.
func WithRouting(opts ...dijkstra.Option) Option {
	return func(o *Options) { o.Routing = append(o.Routing, opts...) }
}

// DefaultOptions returns config.Default().Failure with a discarding logger
// and a no-op recorder.
func DefaultOptions() Options {
	return Options{
		Failure:  config.Default().Failure,
		Logger:   logr.Discard(),
		Recorder: metrics.Noop{},
	}
}

// NodeFailureReport describes the network with one node switched off.
type NodeFailureReport struct {
	// RunID correlates the report with its log line.
	RunID uuid.UUID
	// Node is the failed node.
	Node string
	// TotalPairs counts ordered pairs of distinct live nodes.
	TotalPairs int
	// LostPairs counts those pairs left without a route.
	LostPairs int
	// IsolatedNodes lists nodes unreachable from at least one live node.
	IsolatedNodes []string
	// AffectedNodes lists live nodes outside the largest remaining component.
	AffectedNodes []string
	// ConnectivityLoss is LostPairs / TotalPairs × 100, or 0 without pairs.
	ConnectivityLoss float64
}

// EdgeFailureReport describes the network with one edge marked vulnerable.
type EdgeFailureReport struct {
	RunID uuid.UUID
	From  string
	To    string
	// AffectedPairs are ordered pairs whose new route still visits both
	// endpoints, i.e. traffic that detours around the broken link.
	AffectedPairs []core.Pair
	// LostPairs were connected before the failure and are not after it.
	LostPairs []core.Pair
}

// CascadePhase is one propagation round that failed at least one node.
type CascadePhase struct {
	Round            int
	NewlyFailed      []string
	TotalFailedSoFar []string
}

// CascadeReport is the outcome of SimulateCascade.
type CascadeReport struct {
	RunID  uuid.UUID
	Seeds  []string
	Phases []CascadePhase
	// TotalFailed holds the seeds followed by every node failed by
	// propagation, in the order they failed.
	TotalFailed []string
	// Rounds counts propagation rounds that failed nodes.
	Rounds int
	// Truncated is set when every allowed round failed nodes, so the
	// cascade may not have settled.
	Truncated bool
}
