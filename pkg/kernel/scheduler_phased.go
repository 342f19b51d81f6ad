package kernel

// scheduler_phased.go implements PhasedScheduler (spec.md §4.6.2): each
// registered component belongs to an integer phase, and Step runs the flat
// collect/execute/expose procedure once per phase, phases ascending. A
// later phase's collect therefore observes the prior phase's expose,
// letting a pipeline drain one stage per phase within a single Step call.
//
// © 2025 flowkernel authors. MIT License.

import "sort"

// PhasedScheduler runs components grouped into ascending integer phases,
// each phase a full flat-scheduler barrier round.
type PhasedScheduler struct {
	name    string
	exec    Executor
	metrics metricsSink
	log     logger

	byPhase map[int][]*Component
	phases  []int // sorted ascending, rebuilt lazily
	dirty   bool
}

// NewPhasedScheduler constructs a PhasedScheduler driven by exec.
func NewPhasedScheduler(exec Executor, opts ...SchedulerOption) *PhasedScheduler {
	cfg := &schedulerConfig{
		name:    "phased",
		metrics: noopMetrics{},
		log:     nopLogger{},
	}
	for _, o := range opts {
		o.applyScheduler(cfg)
	}
	return &PhasedScheduler{
		name:    cfg.name,
		exec:    exec,
		metrics: cfg.metrics,
		log:     cfg.log,
		byPhase: make(map[int][]*Component),
	}
}

// AddComponent registers c to run in the given phase. Phases need not be
// contiguous or start at zero; they are only compared for ordering.
func (s *PhasedScheduler) AddComponent(c *Component, phase int) {
	if _, ok := s.byPhase[phase]; !ok {
		s.dirty = true
	}
	s.byPhase[phase] = append(s.byPhase[phase], c)
}

func (s *PhasedScheduler) sortedPhases() []int {
	if s.dirty {
		s.phases = s.phases[:0]
		for p := range s.byPhase {
			s.phases = append(s.phases, p)
		}
		sort.Ints(s.phases)
		s.dirty = false
	}
	return s.phases
}

// Step runs every phase's flat barrier round, ascending, per spec.md
// §4.6.2. A functor error in an earlier phase aborts the remaining phases,
// consistent with the collect/execute/expose error policy of §7.
func (s *PhasedScheduler) Step() error {
	for _, phase := range s.sortedPhases() {
		components := s.byPhase[phase]

		work := make([]func() error, 0, len(components))
		for _, c := range components {
			work = append(work, collectExecute(c))
		}
		if err := runBarrier(s.exec, "collect_execute", s.metrics, work); err != nil {
			return err
		}

		work = work[:0]
		for _, c := range components {
			work = append(work, expose(c))
		}
		if err := runBarrier(s.exec, "expose", s.metrics, work); err != nil {
			return err
		}
	}

	s.metrics.incStep(s.name)
	s.log.Debugw("step complete", "scheduler", s.name, "phases", len(s.byPhase))
	return nil
}
