package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netres/metrics"
)

func TestNewRegistry(t *testing.T) {
	r := metrics.NewRegistry(nil, "netres")
	require.NotNil(t, r)
	assert.NotNil(t, r.AnalysesTotal)
	assert.NotNil(t, r.AnalysisDuration)
	assert.NotNil(t, r.ConnectivityLoss)
	assert.NotNil(t, r.CascadeFailed)
	assert.NotNil(t, r.CascadeRounds)
	assert.NotNil(t, r.CascadeTruncated)
}

func TestObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRegistry(reg, "netres")

	r.ObserveRun("node_failure", 3*time.Millisecond)
	r.ObserveRun("node_failure", 5*time.Millisecond)
	r.ObserveRun("cascade", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("node_failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.AnalysesTotal.WithLabelValues("cascade")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.AnalysisDuration))
}

func TestSetConnectivityLoss(t *testing.T) {
	r := metrics.NewRegistry(nil, "netres")
	r.SetConnectivityLoss("Hub", 66.5)
	r.SetConnectivityLoss("Hub", 50)

	assert.Equal(t, 50.0, testutil.ToFloat64(r.ConnectivityLoss.WithLabelValues("Hub")))
}

func TestObserveCascade(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRegistry(reg, "netres")

	r.ObserveCascade(4, 2, false)
	r.ObserveCascade(9, 10, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.CascadeTruncated))

	expected := `
# HELP netres_cascade_truncated_total Cascades stopped by the round ceiling
# TYPE netres_cascade_truncated_total counter
netres_cascade_truncated_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "netres_cascade_truncated_total"))
}

func TestNoopSatisfiesRecorder(t *testing.T) {
	var rec metrics.Recorder = metrics.Noop{}
	assert.NotPanics(t, func() {
		rec.ObserveRun("x", time.Second)
		rec.SetConnectivityLoss("n", 1)
		rec.ObserveCascade(1, 1, true)
	})

	var _ metrics.Recorder = (*metrics.Registry)(nil)
}
