// Package session broadcasts session-expiry events to interested consumers.
// The notifier is handed to components through the composition root; there is
// no package-level instance.
package session

import (
	"sync"
	"time"
)

// ExpiryEvent describes one expired session observed by the auth layer.
type ExpiryEvent struct {
	Email      string
	RemoteAddr string
	Path       string
	OccurredAt time.Time
}

// Notifier fans session-expiry events out to subscribers. Publishing never
// blocks: a subscriber that has fallen behind misses events instead of
// stalling request handling.
type Notifier struct {
	mu   sync.RWMutex
	subs map[int]chan ExpiryEvent
	next int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan ExpiryEvent)}
}

// Subscribe registers a consumer. The returned cancel function removes the
// subscription and closes the channel; it is safe to call more than once.
func (n *Notifier) Subscribe() (<-chan ExpiryEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan ExpiryEvent, 16)
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if sub, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Notify delivers the event to every subscriber with room in its buffer.
func (n *Notifier) Notify(ev ExpiryEvent) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, ch := range n.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
