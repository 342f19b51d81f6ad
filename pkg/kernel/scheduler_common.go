package kernel

// scheduler_common.go factors the barrier procedure shared by all three
// scheduler variants: post a batch of independent work units to the
// executor, then sync, timing the wait for Prometheus (barrier_wait_seconds)
// per spec.md §5's ordering guarantees -- a hard barrier completes before
// the next phase's work is dispatched, full stop.
//
// © 2025 flowkernel authors. MIT License.

import "time"

// runBarrier posts every work unit in work to exec and blocks until all of
// them (and any error among them) have completed, per spec.md §4.5/§7.
func runBarrier(exec Executor, phase string, metrics metricsSink, work []func() error) error {
	for _, w := range work {
		if err := exec.Post(w); err != nil {
			return err
		}
	}
	start := time.Now()
	err := exec.Sync()
	metrics.observeBarrierWait(phase, time.Since(start).Seconds())
	return err
}

// collectExecute returns a work unit that runs a component's Collect then
// Execute phases back to back, matching spec.md §4.6.1's
// `exec.post(|| { c.collect(); c.execute(); })`.
func collectExecute(c *Component) func() error {
	return func() error {
		if err := c.Collect(); err != nil {
			return err
		}
		return c.Execute()
	}
}

// expose returns a work unit that runs a component's Expose phase.
func expose(c *Component) func() error {
	return func() error {
		return c.Expose()
	}
}
