// Package taskpool recycles the small wrapper structs a worker pool uses to
// carry a posted closure and its eventual error, so that a high-rate
// Post/Sync cycle does not allocate one wrapper per work unit.
//
// Grounded on original_source's brica::ResourcePool::enqueue contract
// (enqueue a nullary callable, wait for it), generalized here to a
// recyclable carrier instead of a synchronous pass-through, since the pool
// executor already owns a request queue (pkg/kernel/executor.go) and only
// needs somewhere cheap to park the closure between Post and the worker
// that eventually runs it.
//
// © 2025 flowkernel authors. MIT License.
package taskpool

import "sync"

// Task carries one posted work unit and the error it produced, if any.
type Task struct {
	Fn  func() error
	Err error
}

// Pool recycles *Task values across Post/Sync cycles.
type Pool struct {
	pool sync.Pool
}

// New constructs an empty Pool.
func New() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() interface{} { return &Task{} },
		},
	}
}

// Get returns a Task wrapping fn, reusing a previously Put Task when one is
// available.
func (p *Pool) Get(fn func() error) *Task {
	t := p.pool.Get().(*Task)
	t.Fn = fn
	t.Err = nil
	return t
}

// Put clears t and returns it to the pool for reuse. Callers must not touch
// t again after calling Put.
func (p *Pool) Put(t *Task) {
	t.Fn = nil
	t.Err = nil
	p.pool.Put(t)
}
