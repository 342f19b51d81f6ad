package kernel

// metrics.go is a thin abstraction over Prometheus, wired exactly the way
// Voskan-arena-cache/pkg/metrics.go wires it: a metricsSink interface with
// a no-op implementation (default, zero overhead) and a Prometheus
// implementation activated only when the caller opts in via
// WithComponentMetrics, WithExecutorMetrics or WithSchedulerMetrics.
// Metric names are the domain-appropriate analogues of the teacher's
// hits/misses/evictions/arena_bytes:
//
//	┌───────────────────────────┬───────┬────────────────┐
//	│ Metric                    │ Type  │ Labels         │
//	├───────────────────────────┼───────┼────────────────┤
//	│ posted_total              │ Ctr   │ executor       │
//	│ completed_total           │ Ctr   │ executor       │
//	│ steps_total               │ Ctr   │ scheduler      │
//	│ awake_total               │ Ctr   │ component      │
//	│ asleep_total               │ Ctr   │ component      │
//	│ functor_errors_total      │ Ctr   │ component      │
//	│ barrier_wait_seconds      │ Hist  │ phase          │
//	└───────────────────────────┴───────┴────────────────┘
//
// © 2025 flowkernel authors. MIT License.

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metricsSink is the internal interface abstracting away the concrete
// backend (Prometheus vs noop). Components, Executors and Schedulers only
// know about the generic methods here.
type metricsSink interface {
	incPosted(executor string)
	incCompleted(executor string)
	incStep(scheduler string)
	incAwake(component string)
	incAsleep(component string)
	incFunctorError(component string)
	observeBarrierWait(phase string, seconds float64)
}

type noopMetrics struct{}

func (noopMetrics) incPosted(string)              {}
func (noopMetrics) incCompleted(string)            {}
func (noopMetrics) incStep(string)                 {}
func (noopMetrics) incAwake(string)                {}
func (noopMetrics) incAsleep(string)               {}
func (noopMetrics) incFunctorError(string)         {}
func (noopMetrics) observeBarrierWait(string, float64) {}

type promMetrics struct {
	posted       *prometheus.CounterVec
	completed    *prometheus.CounterVec
	steps        *prometheus.CounterVec
	awake        *prometheus.CounterVec
	asleep       *prometheus.CounterVec
	functorErr   *prometheus.CounterVec
	barrierWait  *prometheus.HistogramVec
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	pm := &promMetrics{
		posted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowkernel",
			Name:      "posted_total",
			Help:      "Number of work units posted to an executor.",
		}, []string{"executor"}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowkernel",
			Name:      "completed_total",
			Help:      "Number of work units completed by an executor.",
		}, []string{"executor"}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowkernel",
			Name:      "steps_total",
			Help:      "Number of Step() calls observed by a scheduler.",
		}, []string{"scheduler"}),
		awake: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowkernel",
			Name:      "awake_total",
			Help:      "Number of times a component transitioned to awake.",
		}, []string{"component"}),
		asleep: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowkernel",
			Name:      "asleep_total",
			Help:      "Number of times a component transitioned to asleep.",
		}, []string{"component"}),
		functorErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flowkernel",
			Name:      "functor_errors_total",
			Help:      "Number of functor errors captured during a barrier.",
		}, []string{"component"}),
		barrierWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flowkernel",
			Name:      "barrier_wait_seconds",
			Help:      "Wall-clock time a phase's barrier spent waiting for posted work.",
		}, []string{"phase"}),
	}
	reg.MustRegister(pm.posted, pm.completed, pm.steps, pm.awake, pm.asleep, pm.functorErr, pm.barrierWait)
	return pm
}

func (m *promMetrics) incPosted(executor string)    { m.posted.WithLabelValues(executor).Inc() }
func (m *promMetrics) incCompleted(executor string) { m.completed.WithLabelValues(executor).Inc() }
func (m *promMetrics) incStep(scheduler string)     { m.steps.WithLabelValues(scheduler).Inc() }
func (m *promMetrics) incAwake(component string)    { m.awake.WithLabelValues(component).Inc() }
func (m *promMetrics) incAsleep(component string)   { m.asleep.WithLabelValues(component).Inc() }
func (m *promMetrics) incFunctorError(component string) {
	m.functorErr.WithLabelValues(component).Inc()
}
func (m *promMetrics) observeBarrierWait(phase string, seconds float64) {
	m.barrierWait.WithLabelValues(phase).Observe(seconds)
}

// newMetricsSink decides which implementation to use; reg == nil disables
// metrics (the default, zero-overhead path).
func newMetricsSink(reg *prometheus.Registry) metricsSink {
	if reg == nil {
		return noopMetrics{}
	}
	return newPromMetrics(reg)
}
