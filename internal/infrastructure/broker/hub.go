// Package broker fans committed changes out to in-process live subscriptions.
package broker

import (
	"sync"

	"volleyhub/internal/ports/output"
)

const subscriberBuffer = 16

var _ output.ChangeFeed = (*Hub)(nil)

// Hub is the in-process change feed. Publish never blocks: a subscriber whose
// buffer is full gets an empty Change, which forces a full re-query.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan output.Change
}

func NewHub() *Hub {
	return &Hub{subs: map[int]chan output.Change{}}
}

func (h *Hub) Publish(change output.Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- change:
		default:
			// Slow reader: drop the oldest entry and leave a resync marker.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- output.Change{}:
			default:
			}
		}
	}
}

func (h *Hub) Subscribe() (<-chan output.Change, func()) {
	ch := make(chan output.Change, subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, release
}

// Subscribers reports how many subscriptions are open.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
