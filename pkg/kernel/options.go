package kernel

// options.go collects the functional options shared by all three scheduler
// variants, following Voskan-arena-cache/pkg/config.go's config-struct +
// functional-option idiom end to end (structure, validation style, the
// pattern of a private config type filled in by an Option interface before
// the exported constructor reads it).
//
// © 2025 flowkernel authors. MIT License.

import "github.com/prometheus/client_golang/prometheus"

// schedulerConfig bundles the knobs shared by NewFlatScheduler,
// NewPhasedScheduler and NewVirtualTimeScheduler.
type schedulerConfig struct {
	name     string
	tieBreak bool
	metrics  metricsSink
	log      logger
}

// SchedulerOption configures any of the three scheduler constructors.
type SchedulerOption interface {
	applyScheduler(*schedulerConfig)
}

type schedulerOptionFunc func(*schedulerConfig)

func (f schedulerOptionFunc) applyScheduler(c *schedulerConfig) { f(c) }

// WithSchedulerName sets the label used for this scheduler's Prometheus
// metrics.
func WithSchedulerName(name string) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		if name != "" {
			c.name = name
		}
	})
}

// WithSchedulerLogger attaches a logger for rare scheduler-level events.
func WithSchedulerLogger(l logger) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		if l != nil {
			c.log = l
		}
	})
}

// WithSchedulerMetrics attaches a Prometheus registry for step/barrier
// counters, labeled by this scheduler's name (see WithSchedulerName).
func WithSchedulerMetrics(reg *prometheus.Registry) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		c.metrics = newMetricsSink(reg)
	})
}

// WithTieBreak activates the event queue's monotonic-sequence secondary sort
// key for same-virtual-time events, per spec.md §9's "same-time
// tie-breaking" open question. It is only consulted by
// NewVirtualTimeScheduler; the flat and phased variants ignore it since they
// have no concept of simultaneous events to order.
func WithTieBreak(enabled bool) SchedulerOption {
	return schedulerOptionFunc(func(c *schedulerConfig) {
		c.tieBreak = enabled
	})
}
