package kernel

// scheduler_flat.go implements FlatScheduler, the simplest of the three
// scheduler variants (spec.md §4.6.1): every registered component collects
// and executes in one barrier, then every component exposes in a second
// barrier. No phase ordering, no virtual time.
//
// © 2025 flowkernel authors. MIT License.

// FlatScheduler runs every registered component through one collect+execute
// barrier followed by one expose barrier, each step.
type FlatScheduler struct {
	name       string
	components []*Component
	exec       Executor
	metrics    metricsSink
	log        logger
}

// NewFlatScheduler constructs a FlatScheduler driven by exec.
func NewFlatScheduler(exec Executor, opts ...SchedulerOption) *FlatScheduler {
	cfg := &schedulerConfig{
		name:    "flat",
		metrics: noopMetrics{},
		log:     nopLogger{},
	}
	for _, o := range opts {
		o.applyScheduler(cfg)
	}
	return &FlatScheduler{
		name:    cfg.name,
		exec:    exec,
		metrics: cfg.metrics,
		log:     cfg.log,
	}
}

// AddComponent registers c to run on every Step.
func (s *FlatScheduler) AddComponent(c *Component) {
	s.components = append(s.components, c)
}

// Step runs one full collect/execute/expose round across every registered
// component, per spec.md §4.6.1:
//
//	for each component c: post(|| { c.collect(); c.execute(); })
//	sync()
//	for each component c: post(|| c.expose())
//	sync()
func (s *FlatScheduler) Step() error {
	work := make([]func() error, 0, len(s.components))
	for _, c := range s.components {
		work = append(work, collectExecute(c))
	}
	if err := runBarrier(s.exec, "collect_execute", s.metrics, work); err != nil {
		return err
	}

	work = work[:0]
	for _, c := range s.components {
		work = append(work, expose(c))
	}
	if err := runBarrier(s.exec, "expose", s.metrics, work); err != nil {
		return err
	}

	s.metrics.incStep(s.name)
	s.log.Debugw("step complete", "scheduler", s.name, "components", len(s.components))
	return nil
}
