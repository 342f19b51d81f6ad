package kernel

// event.go implements the virtual-time scheduler's internal event queue: a
// min-heap of (time, component, timing, asleep, sequence) quintuples
// ordered by time ascending. The heap itself is the generic sift-up/
// sift-down core in internal/genheap.
//
// Same-time ties are, by default, broken in heap-pop order -- which is
// implementation-defined and must not be relied upon. When a scheduler is
// constructed WithTieBreak(true), the monotonic sequence field below acts
// as the secondary sort key instead, giving callers a safe,
// observable-equivalent refinement when they need deterministic ordering.
//
// © 2025 flowkernel authors. MIT License.

import "github.com/riftline/flowkernel/internal/genheap"

type vtEvent struct {
	time    VirtualTick
	comp    *Component
	timing  Timing
	asleep  bool // true: owes Expose (finishing a wake period); false: owes Collect+Execute
	seq     uint64
}

type eventQueue struct {
	events   []vtEvent
	nextSeq  uint64
	tieBreak bool
}

func newEventQueue(tieBreak bool) *eventQueue {
	return &eventQueue{tieBreak: tieBreak}
}

func (q *eventQueue) less(a, b vtEvent) bool {
	if a.time != b.time {
		return a.time < b.time
	}
	if q.tieBreak {
		return a.seq < b.seq
	}
	return false
}

func (q *eventQueue) push(e vtEvent) {
	e.seq = q.nextSeq
	q.nextSeq++
	genheap.Push(&q.events, e, q.less)
}

func (q *eventQueue) pop() vtEvent {
	return genheap.Pop(&q.events, q.less)
}

func (q *eventQueue) peekTime() (VirtualTick, bool) {
	if len(q.events) == 0 {
		return 0, false
	}
	return genheap.Peek(q.events).time, true
}

func (q *eventQueue) empty() bool {
	return len(q.events) == 0
}
