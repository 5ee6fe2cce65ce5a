package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ErrSessionNotFound reports an unknown or expired session token.
var ErrSessionNotFound = errors.New("session not found")

// ErrBusy rejects a duplicate submission while a round-trip for the same
// session is still in flight.
var ErrBusy = errors.New("previous request still in flight")

// Live is one active session. All access goes through Manager.With so the
// state only ever changes under the session mutex, which makes each
// external round-trip atomic with respect to session state.
type Live struct {
	mu         sync.Mutex
	state      State
	limiter    *rate.Limiter
	lastActive time.Time
	busy       bool
}

// Manager owns every live session, keyed by opaque token.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Live
	now      func() time.Time
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Live),
		now:      time.Now,
	}
}

// Create starts a new session already reduced with the given events and
// returns its token.
func (m *Manager) Create(events ...Event) (string, error) {
	st := Initial()
	for _, e := range events {
		next, err := Reduce(st, e)
		if err != nil {
			return "", err
		}
		st = next
	}

	token := uuid.NewString()
	live := &Live{
		state:      st,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
		lastActive: m.now(),
	}

	m.mu.Lock()
	m.sessions[token] = live
	m.mu.Unlock()
	return token, nil
}

// With runs fn while holding the session's mutex. fn receives the current
// state and returns the next one; returning an error leaves the stored
// state untouched.
func (m *Manager) With(token string, fn func(State) (State, error)) error {
	live, err := m.get(token)
	if err != nil {
		return err
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	live.lastActive = m.now()
	next, err := fn(live.state)
	if err != nil {
		return err
	}
	live.state = next
	return nil
}

// Begin marks the session busy for one external round-trip. It fails with
// ErrBusy when a round-trip is already in flight or when submissions
// arrive faster than the per-session rate limit allows.
func (m *Manager) Begin(token string) error {
	live, err := m.get(token)
	if err != nil {
		return err
	}

	live.mu.Lock()
	defer live.mu.Unlock()

	if live.busy || !live.limiter.Allow() {
		return ErrBusy
	}
	live.busy = true
	return nil
}

// End releases the in-flight marker set by Begin.
func (m *Manager) End(token string) {
	live, err := m.get(token)
	if err != nil {
		return
	}
	live.mu.Lock()
	live.busy = false
	live.mu.Unlock()
}

// Snapshot returns a copy of the session state.
func (m *Manager) Snapshot(token string) (State, error) {
	live, err := m.get(token)
	if err != nil {
		return State{}, err
	}
	live.mu.Lock()
	defer live.mu.Unlock()
	return live.state, nil
}

// Delete removes a session.
func (m *Manager) Delete(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// PruneIdle drops sessions idle for longer than ttl and returns how many
// were removed.
func (m *Manager) PruneIdle(ttl time.Duration) int {
	cutoff := m.now().Add(-ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, live := range m.sessions {
		live.mu.Lock()
		idle := live.lastActive.Before(cutoff) && !live.busy
		live.mu.Unlock()
		if idle {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

func (m *Manager) get(token string) (*Live, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	live, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return live, nil
}
