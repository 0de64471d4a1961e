package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics instruments reconciliation runs.
type Metrics struct {
	rowsWritten *prometheus.CounterVec
	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
}

var (
	reconOnce     sync.Once
	reconRegistry *Metrics
)

// Reconciliation returns the process-wide reconciliation metrics, registering
// them on first use.
func Reconciliation() *Metrics {
	reconOnce.Do(func() {
		reconRegistry = &Metrics{
			rowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "reconciliation_rows_written_total",
				Help: "Result rows written per reconciliation type.",
			}, []string{"reconciliation_type"}),
			runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "reconciliation_runs_total",
				Help: "Unit invocations by reconciliation type and outcome.",
			}, []string{"reconciliation_type", "outcome"}),
			runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "reconciliation_run_duration_seconds",
				Help:    "Wall-clock duration of one unit invocation.",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
			}, []string{"reconciliation_type"}),
		}
		prometheus.MustRegister(
			reconRegistry.rowsWritten,
			reconRegistry.runsTotal,
			reconRegistry.runDuration,
		)
	})
	return reconRegistry
}

// ObserveRun records one unit invocation.
func (m *Metrics) ObserveRun(recType string, succeeded bool, d time.Duration) {
	outcome := "success"
	if !succeeded {
		outcome = "failure"
	}
	m.runsTotal.WithLabelValues(recType, outcome).Inc()
	m.runDuration.WithLabelValues(recType).Observe(d.Seconds())
}

// AddRowsWritten records the rows persisted by a successful replace-write.
func (m *Metrics) AddRowsWritten(recType string, n int) {
	m.rowsWritten.WithLabelValues(recType).Add(float64(n))
}

// Handler exposes the default registry for an optional /metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
