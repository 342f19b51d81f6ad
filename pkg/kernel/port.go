package kernel

// port.go implements Port: a single-slot mailbox shared between exactly one
// writer Component and zero or more reader Components. Because writers only
// ever call Set during a component's expose phase and readers only ever call
// Get during a component's collect phase, and the scheduler's barrier
// (exec.Sync) fully completes between those phases, no mutex is required on
// the slot itself — an atomic pointer swap gives the release/acquire pair
// the barrier's happens-before edge already provides. This mirrors the
// teacher's own reasoning for lock-free hot paths guarded by an external
// synchronisation point (see Voskan-arena-cache/internal/genring: "genring
// does not use its own locks -- the parent shard already serialises
// access").
//
// © 2025 flowkernel authors. MIT License.

import "sync/atomic"

// Port is an identity-typed handle onto a single Buffer slot. Two handles
// compare equal (via Same) iff they refer to the same underlying slot.
type Port struct {
	slot *atomic.Value // holds Buffer
}

// NewPort allocates a fresh, empty Port.
func NewPort() *Port {
	p := &Port{slot: &atomic.Value{}}
	p.slot.Store(Buffer{})
	return p
}

// Set replaces the Buffer held by the port. Called only from the owning
// writer's expose phase.
func (p *Port) Set(b Buffer) {
	p.slot.Store(b)
}

// Get returns the most recently Set Buffer (an alias of its backing
// storage). Called only from a reader's collect phase. A Port that has
// never been Set returns the zero Buffer.
func (p *Port) Get() Buffer {
	v := p.slot.Load()
	if v == nil {
		return Buffer{}
	}
	return v.(Buffer)
}

// Same reports whether p and other are handles onto the same slot (identity
// comparison, per spec P3).
func (p *Port) Same(other *Port) bool {
	return p != nil && other != nil && p.slot == other.slot
}
