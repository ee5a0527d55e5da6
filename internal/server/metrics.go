package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/se04-aizu-2025/se04project-white-mocha/internal/observe"
)

// Metrics holds the run counters. Each Metrics owns its registry so that
// several servers (and tests) can coexist in one process.
type Metrics struct {
	registry   *prometheus.Registry
	runsTotal  *prometheus.CounterVec
	runSteps   *prometheus.HistogramVec
	operations *prometheus.CounterVec
}

// NewMetrics registers the sortscope collectors on a fresh registry, along
// with the standard Go and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortscope_runs_total",
			Help: "Sort runs by algorithm and outcome",
		}, []string{"algorithm", "status"}),
		runSteps: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortscope_run_steps",
			Help:    "Events per successful run, including DONE",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortscope_operations_total",
			Help: "Observed operations by algorithm and kind",
		}, []string{"algorithm", "op"}),
	}
}

// Registry returns the registry served on /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Tap returns an observer that counts operations for algorithm key. It is
// meant for engine.WithTap.
func (m *Metrics) Tap(key string) observe.Observer {
	return &operationCounter{
		compare: m.operations.WithLabelValues(key, "compare"),
		swap:    m.operations.WithLabelValues(key, "swap"),
		set:     m.operations.WithLabelValues(key, "set"),
	}
}

// observeRun records the outcome of one /run request. Unknown keys are
// folded into one label value to keep cardinality bounded.
func (m *Metrics) observeRun(key, status string, steps int) {
	if status == "unknown_algorithm" {
		key = "unknown"
	}
	m.runsTotal.WithLabelValues(key, status).Inc()
	if status == "ok" {
		m.runSteps.WithLabelValues(key).Observe(float64(steps))
	}
}

type operationCounter struct {
	compare, swap, set prometheus.Counter
}

func (o *operationCounter) Compare(i, j int)     { o.compare.Inc() }
func (o *operationCounter) Swap(i, j int)        { o.swap.Inc() }
func (o *operationCounter) Set(index, value int) { o.set.Inc() }
