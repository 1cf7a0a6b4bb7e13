package modnames

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/jmod/internal/core/ports"
)

// entry is one cached answer. Once invalid it never becomes valid again.
type entry struct {
	name  string
	gen   uint64
	valid atomic.Bool

	mu       sync.Mutex
	subs     []ports.Subscription
	released bool
}

func newEntry(gen uint64) *entry {
	e := &entry{gen: gen}
	e.valid.Store(true)
	return e
}

// watch ties sub to the lifetime of the entry. A subscription taken out after
// the entry was invalidated is released right away.
func (e *entry) watch(sub ports.Subscription) {
	if sub == nil {
		return
	}
	e.mu.Lock()
	if e.released {
		e.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	e.subs = append(e.subs, sub)
	e.mu.Unlock()
}

// invalidate marks the entry invalid and releases its subscriptions exactly once.
func (e *entry) invalidate() {
	e.valid.Store(false)

	e.mu.Lock()
	if e.released {
		e.mu.Unlock()
		return
	}
	e.released = true
	subs := e.subs
	e.subs = nil
	e.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
