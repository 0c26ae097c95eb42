// Package refresh lets an action in one view invalidate cached data in
// unrelated views without coupling them: a mutation calls Trigger, every
// subscribed poller observes the new counter value and re-fetches.
package refresh

import "sync"

// Bus is a process-wide, monotonically increasing counter. The counter
// strictly increases by 1 per Trigger and resets only on process restart.
// Subscribers compare by value change, not absolute value; a slow
// subscriber coalesces to the latest value rather than seeing every
// intermediate one.
type Bus struct {
	mu     sync.Mutex
	value  uint64
	nextID int
	subs   map[int]chan uint64
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan uint64)}
}

// Trigger increments the counter by exactly 1 and notifies subscribers.
// It never blocks and cannot fail.
func (b *Bus) Trigger() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value++
	for _, ch := range b.subs {
		// Replace any undelivered value with the latest.
		select {
		case ch <- b.value:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- b.value:
			default:
			}
		}
	}
}

// Value returns the current counter.
func (b *Bus) Value() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Subscribe registers a consumer. The returned channel delivers counter
// changes; the returned func detaches it. Subscribing does not deliver the
// current value: a consumer fetches on mount and on every change, as two
// independent triggers.
func (b *Bus) Subscribe() (<-chan uint64, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan uint64, 1)
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return ch, cancel
}
