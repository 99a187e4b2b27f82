// Package notify fans out payload-less change notifications to in-process
// subscribers. A notification only means "something in this scope changed";
// consumers are expected to re-read, never to diff.
package notify

import (
	"sync"

	"github.com/Utiqano/football/logging"
)

// Scope names the record set a change belongs to.
type Scope string

const (
	ScopeParticipation Scope = "participation"
	ScopeVotes         Scope = "votes"
)

// Subscription delivers invalidations on C until Unsubscribe is called.
// The channel has capacity one and sends are lossy: a subscriber that has
// not drained a pending invalidation will not receive duplicates, which is
// fine because a single re-read covers any number of missed changes.
type Subscription struct {
	C   chan Scope
	hub *Hub
	id  int
}

// Unsubscribe detaches the subscription from the hub. Safe to call more
// than once. The channel is closed so range loops terminate.
func (s *Subscription) Unsubscribe() {
	s.hub.remove(s.id)
}

// Hub is the process-wide change notification fan-out point.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*Subscription
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*Subscription)}
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		C:   make(chan Scope, 1),
		hub: h,
		id:  h.nextID,
	}
	h.subs[sub.id] = sub
	return sub
}

// Publish notifies every live subscriber that scope changed. Never blocks:
// a subscriber with an undrained pending notification keeps the older one.
func (h *Hub) Publish(scope Scope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub.C <- scope:
		default:
		}
	}
	logging.Log.Debugf("NOTIFY: published %s to %d subscribers", scope, len(h.subs))
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(sub.C)
	}
}

// Subscribers reports the current number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
