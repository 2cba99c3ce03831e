package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ai_interviewer"

// Metrics groups the counters recorded by the interview workflow. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	cacheLookups *prometheus.CounterVec
	modelCalls   *prometheus.CounterVec
	reports      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "question_cache_lookups_total",
			Help:      "Question cache lookups partitioned by result (hit, miss, error).",
		}, []string{"result"}),
		modelCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_calls_total",
			Help:      "Language model calls partitioned by operation and status.",
		}, []string{"operation", "status"}),
		reports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Persisted interview reports partitioned by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) CacheError() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("error").Inc()
}

func (m *Metrics) ModelCall(operation string, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.modelCalls.WithLabelValues(operation, status).Inc()
}

func (m *Metrics) Report(selected bool) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if selected {
		outcome = "selected"
	}
	m.reports.WithLabelValues(outcome).Inc()
}
