package state

import (
	"sync"

	"yoga-front/internal/domain"
)

// Holder is the single in-memory store of "is a user logged in, and with
// what identity". One instance is constructed by the application root and
// injected into every screen and the guard. Implements domain.SessionState
// and domain.TokenSource.
type Holder struct {
	mu          sync.Mutex
	identity    *domain.Identity
	subscribers map[int]chan bool
	nextSubID   int
}

// NewHolder creates a logged-out holder with no identity.
func NewHolder() *Holder {
	return &Holder{subscribers: make(map[int]chan bool)}
}

// LogIn stores the identity and notifies subscribers. A prior identity is
// replaced. The identity's shape is trusted as delivered by the auth
// gateway.
func (h *Holder) LogIn(identity *domain.Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.identity = identity
	h.notify(true)
}

// LogOut clears the identity unconditionally and notifies subscribers.
// Safe to call when already logged out.
func (h *Holder) LogOut() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.identity = nil
	h.notify(false)
}

// IsLogged reports whether an identity is currently held.
func (h *Holder) IsLogged() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity != nil
}

// Identity returns the held identity, or nil when logged out.
func (h *Holder) Identity() *domain.Identity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity
}

// AuthToken returns the Authorization header value for the held identity.
func (h *Holder) AuthToken() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.identity == nil {
		return "", false
	}
	return h.identity.Type + " " + h.identity.Token, true
}

// Subscribe registers an observer of the logged-in status. The returned
// channel immediately replays the current value, then receives every
// change. The cancel function releases the subscription; it is safe to
// call more than once.
func (h *Holder) Subscribe() (<-chan bool, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextSubID
	h.nextSubID++

	ch := make(chan bool, 1)
	ch <- h.identity != nil
	h.subscribers[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, id)
	}
	return ch, cancel
}

// notify pushes the value to every subscriber, coalescing with any
// undelivered previous value so a slow observer never blocks the
// mutation point. Caller must hold mu.
func (h *Holder) notify(logged bool) {
	for _, ch := range h.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- logged
	}
}
