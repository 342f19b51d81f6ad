package kernel

// scheduler_vtime.go implements VirtualTimeScheduler (spec.md §4.6.3): each
// registered component owns a Timing (Offset, Interval, Sleep) that drives
// an alternating wake/sleep cadence, advanced by an internal min-heap event
// queue (event.go) rather than wall-clock time.
//
// Step drains every event sharing the queue's current minimum time into two
// buckets:
//
//   - asleep bucket: components finishing a wake period, which owe Expose.
//   - awake bucket: components beginning a wake period, which owe
//     Collect+Execute.
//
// The two buckets run as two separate barriers, asleep first: a component
// going to sleep publishes its final output for this wake period before any
// component scheduled to wake at the same tick collects its inputs, so a
// same-tick producer/consumer pair observes the freshest value. Each
// drained event is immediately re-armed for its next transition before the
// next Step call, per spec.md §4.6.3's "awake and asleep two-bucket barrier
// procedure."
//
// © 2025 flowkernel authors. MIT License.

// VirtualTimeScheduler drives components through alternating wake/sleep
// periods measured in VirtualTicks rather than wall-clock time.
type VirtualTimeScheduler struct {
	name    string
	exec    Executor
	metrics metricsSink
	log     logger

	queue *eventQueue
	now   VirtualTick
}

// NewVirtualTimeScheduler constructs a VirtualTimeScheduler driven by exec.
// WithTieBreak(true) activates the event queue's monotonic-sequence
// secondary sort key for same-time events.
func NewVirtualTimeScheduler(exec Executor, opts ...SchedulerOption) *VirtualTimeScheduler {
	cfg := &schedulerConfig{
		name:    "vtime",
		metrics: noopMetrics{},
		log:     nopLogger{},
	}
	for _, o := range opts {
		o.applyScheduler(cfg)
	}
	return &VirtualTimeScheduler{
		name:    cfg.name,
		exec:    exec,
		metrics: cfg.metrics,
		log:     cfg.log,
		queue:   newEventQueue(cfg.tieBreak),
	}
}

// AddComponent registers c with the given Timing and arms its first wake
// event at t.Offset.
func (s *VirtualTimeScheduler) AddComponent(c *Component, t Timing) {
	s.queue.push(vtEvent{time: t.Offset, comp: c, timing: t, asleep: false})
}

// Now returns the virtual time as of the last completed Step call.
func (s *VirtualTimeScheduler) Now() VirtualTick { return s.now }

// Step advances to the queue's next scheduled tick and runs the two-bucket
// barrier procedure for every event sharing that tick. It fails with
// NoScheduledWorkError if no component has any outstanding event.
func (s *VirtualTimeScheduler) Step() error {
	tick, ok := s.queue.peekTime()
	if !ok {
		return &NoScheduledWorkError{}
	}
	s.now = tick

	var asleepBucket, awakeBucket []vtEvent
	for {
		t, ok := s.queue.peekTime()
		if !ok || t != tick {
			break
		}
		ev := s.queue.pop()
		if ev.asleep {
			asleepBucket = append(asleepBucket, ev)
		} else {
			awakeBucket = append(awakeBucket, ev)
		}
	}

	work := make([]func() error, 0, len(asleepBucket))
	for _, ev := range asleepBucket {
		work = append(work, expose(ev.comp))
	}
	err := runBarrier(s.exec, "expose", s.metrics, work)
	for _, ev := range asleepBucket {
		s.metrics.incAsleep(ev.comp.Name())
		s.queue.push(vtEvent{
			time:   tick + ev.timing.Sleep,
			comp:   ev.comp,
			timing: ev.timing,
			asleep: false,
		})
	}

	work = work[:0]
	for _, ev := range awakeBucket {
		work = append(work, collectExecute(ev.comp))
	}
	if err == nil {
		err = runBarrier(s.exec, "collect_execute", s.metrics, work)
	}
	for _, ev := range awakeBucket {
		s.metrics.incAwake(ev.comp.Name())
		s.queue.push(vtEvent{
			time:   tick + ev.timing.Interval,
			comp:   ev.comp,
			timing: ev.timing,
			asleep: true,
		})
	}
	if err != nil {
		return err
	}

	s.metrics.incStep(s.name)
	s.log.Debugw("step complete", "scheduler", s.name, "tick", uint64(tick),
		"asleep", len(asleepBucket), "awake", len(awakeBucket))
	return nil
}
