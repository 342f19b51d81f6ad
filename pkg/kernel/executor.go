package kernel

// executor.go implements the Executor abstraction: a sink for independent
// work units with a post/sync barrier. Two variants are provided:
//
//   - Serial runs posted work inline on the caller; Sync is a no-op beyond
//     surfacing captured errors. Deterministic, no threads -- used by tests
//     that need reproducible ordering.
//   - Pool dispatches posted work to a fixed-size worker pool: a condvar-
//     guarded request queue where a fixed number of long-lived worker
//     goroutines pull from a shared queue, woken by a sync.Cond. Sync
//     blocks on a second condvar until completed==posted, then resets both
//     counters: posted/completed atomic counters, with a condition
//     variable guarding the transition from work-outstanding to done.
//
// The functor-error aggregation performed by Pool.Sync collects a per-unit
// error slice, then joins it with errors.Join: every posted unit in a
// phase is allowed to finish (or fail) before Sync returns, and the first
// captured error is what Sync (and therefore the scheduler's Step)
// surfaces.
//
// Queue entries are internal/taskpool.Task values recycled across
// Post/Sync cycles rather than freshly allocated per work unit, since a
// Step at steady state posts (and retires) the same roughly-constant
// number of closures every tick.
//
// © 2025 flowkernel authors. MIT License.

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/riftline/flowkernel/internal/taskpool"
)

// Executor is a sink for independent work units, with a barrier.
type Executor interface {
	// Post enqueues a nullary work unit. It fails with PoolShutDownError if
	// the executor has begun teardown.
	Post(work func() error) error
	// Sync blocks until every unit posted since the last Sync has
	// completed, then resets the pending count and returns the first
	// captured functor error, if any.
	Sync() error
}

// Serial runs posted work inline on the caller. Sync is a no-op beyond
// surfacing errors captured during Post.
type Serial struct {
	errs []error
}

// NewSerialExecutor constructs a Serial executor.
func NewSerialExecutor() *Serial {
	return &Serial{}
}

// Post implements Executor.
func (s *Serial) Post(work func() error) error {
	if err := work(); err != nil {
		s.errs = append(s.errs, err)
	}
	return nil
}

// Sync implements Executor.
func (s *Serial) Sync() error {
	err := firstFunctorError(s.errs)
	s.errs = nil
	return err
}

// Pool dispatches posted work to a fixed-size worker pool.
type Pool struct {
	name string

	queueMu   sync.Mutex
	queueCond *sync.Cond
	queue     []*taskpool.Task
	closed    bool
	wg        sync.WaitGroup
	tasks     *taskpool.Pool

	posted    atomic.Int64
	completed atomic.Int64

	doneMu   sync.Mutex
	doneCond *sync.Cond

	errMu sync.Mutex
	errs  []error

	metrics metricsSink
	log     logger
}

// NewPoolExecutor constructs a Pool with the given number of workers
// (defaulting to runtime.GOMAXPROCS(0), at least 1, per spec.md §4.5).
func NewPoolExecutor(opts ...ExecutorOption) *Pool {
	cfg := &executorConfig{
		name:    "default",
		workers: runtime.GOMAXPROCS(0),
		metrics: noopMetrics{},
		log:     nopLogger{},
	}
	for _, o := range opts {
		o.applyExecutor(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	p := &Pool{
		name:    cfg.name,
		metrics: cfg.metrics,
		log:     cfg.log,
		tasks:   taskpool.New(),
	}
	p.queueCond = sync.NewCond(&p.queueMu)
	p.doneCond = sync.NewCond(&p.doneMu)

	p.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.queueMu.Lock()
		for !p.closed && len(p.queue) == 0 {
			p.queueCond.Wait()
		}
		if len(p.queue) == 0 {
			p.queueMu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.queueMu.Unlock()

		err := task.Fn()

		if err != nil {
			p.errMu.Lock()
			p.errs = append(p.errs, err)
			p.errMu.Unlock()
		}
		p.tasks.Put(task)
		p.completed.Add(1)
		p.metrics.incCompleted(p.name)

		p.doneMu.Lock()
		p.doneCond.Broadcast()
		p.doneMu.Unlock()
	}
}

// Post implements Executor.
func (p *Pool) Post(work func() error) error {
	p.queueMu.Lock()
	if p.closed {
		p.queueMu.Unlock()
		return &PoolShutDownError{}
	}
	p.queue = append(p.queue, p.tasks.Get(work))
	p.posted.Add(1)
	p.metrics.incPosted(p.name)
	p.queueCond.Broadcast()
	p.queueMu.Unlock()
	return nil
}

// Sync implements Executor.
func (p *Pool) Sync() error {
	p.doneMu.Lock()
	for p.completed.Load() < p.posted.Load() {
		p.doneCond.Wait()
	}
	p.doneMu.Unlock()

	p.errMu.Lock()
	errs := p.errs
	p.errs = nil
	p.errMu.Unlock()

	p.posted.Store(0)
	p.completed.Store(0)

	return firstFunctorError(errs)
}

// Close begins teardown: no further Post calls succeed, and Close blocks
// until every worker goroutine has exited (spec.md §4.5: "the Executor owns
// its threads. Teardown joins all workers.").
func (p *Pool) Close() {
	p.queueMu.Lock()
	p.closed = true
	p.queueCond.Broadcast()
	p.queueMu.Unlock()
	p.wg.Wait()
}

// executorConfig bundles the knobs that influence Pool construction,
// following Voskan-arena-cache/pkg/config.go's config[K,V] shape.
type executorConfig struct {
	name    string
	workers int
	metrics metricsSink
	log     logger
}

// ExecutorOption is the functional option passed to NewPoolExecutor.
type ExecutorOption interface {
	applyExecutor(*executorConfig)
}

type executorOptionFunc func(*executorConfig)

func (f executorOptionFunc) applyExecutor(c *executorConfig) { f(c) }

// WithWorkers overrides the default worker count (host hardware
// parallelism).
func WithWorkers(n int) ExecutorOption {
	return executorOptionFunc(func(c *executorConfig) {
		if n > 0 {
			c.workers = n
		}
	})
}

// WithExecutorName sets the label used for this executor's Prometheus
// metrics.
func WithExecutorName(name string) ExecutorOption {
	return executorOptionFunc(func(c *executorConfig) {
		if name != "" {
			c.name = name
		}
	})
}

// WithExecutorLogger attaches a logger to the pool. The pool itself emits
// no log lines.
func WithExecutorLogger(l logger) ExecutorOption {
	return executorOptionFunc(func(c *executorConfig) {
		if l != nil {
			c.log = l
		}
	})
}

// WithExecutorMetrics attaches a Prometheus registry for posted/completed
// counters, labeled by this executor's name (see WithExecutorName).
func WithExecutorMetrics(reg *prometheus.Registry) ExecutorOption {
	return executorOptionFunc(func(c *executorConfig) {
		c.metrics = newMetricsSink(reg)
	})
}
