// Package metrics records how long resilience analyses take and how far
// cascades spread. Algorithm packages depend only on the Recorder interface;
// the Prometheus implementation is wired in by the command line tool.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder receives analysis measurements.
type Recorder interface {
	// ObserveRun records one completed analysis of the given kind.
	ObserveRun(analysis string, d time.Duration)
	// SetConnectivityLoss records the last connectivity loss (percent) for a node.
	SetConnectivityLoss(node string, pct float64)
	// ObserveCascade records the size and depth of a finished cascade.
	ObserveCascade(failed, rounds int, truncated bool)
}

// Noop discards everything.
type Noop struct{}

func (Noop) ObserveRun(string, time.Duration)    {}
func (Noop) SetConnectivityLoss(string, float64) {}
func (Noop) ObserveCascade(int, int, bool)       {}

// Registry is a Prometheus-backed Recorder.
type Registry struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	ConnectivityLoss *prometheus.GaugeVec
	CascadeFailed    prometheus.Histogram
	CascadeRounds    prometheus.Histogram
	CascadeTruncated prometheus.Counter
}

// NewRegistry creates every metric under namespace and registers it with reg.
// A nil reg uses a fresh prometheus.Registry.
func NewRegistry(reg prometheus.Registerer, namespace string) *Registry {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Registry{}
	f := promauto.With(reg)

	r.AnalysesTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of completed analyses",
		},
		[]string{"analysis"},
	)

	r.AnalysisDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Analysis latency in seconds",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		},
		[]string{"analysis"},
	)

	r.ConnectivityLoss = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connectivity_loss_percent",
			Help:      "Share of node pairs that lose their route when the node fails",
		},
		[]string{"node"},
	)

	r.CascadeFailed = f.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cascade_failed_nodes",
			Help:      "Nodes failed at the end of a cascade, seeds included",
			Buckets:   prometheus.LinearBuckets(1, 5, 10),
		},
	)

	r.CascadeRounds = f.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cascade_rounds",
			Help:      "Propagation rounds run by a cascade",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		},
	)

	r.CascadeTruncated = f.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cascade_truncated_total",
			Help:      "Cascades stopped by the round ceiling",
		},
	)

	return r
}

// ObserveRun records an analysis with its duration.
func (r *Registry) ObserveRun(analysis string, d time.Duration) {
	r.AnalysesTotal.WithLabelValues(analysis).Inc()
	r.AnalysisDuration.WithLabelValues(analysis).Observe(d.Seconds())
}

// SetConnectivityLoss sets the loss gauge of node.
func (r *Registry) SetConnectivityLoss(node string, pct float64) {
	r.ConnectivityLoss.WithLabelValues(node).Set(pct)
}

// ObserveCascade records a finished cascade.
func (r *Registry) ObserveCascade(failed, rounds int, truncated bool) {
	r.CascadeFailed.Observe(float64(failed))
	r.CascadeRounds.Observe(float64(rounds))
	if truncated {
		r.CascadeTruncated.Inc()
	}
}
