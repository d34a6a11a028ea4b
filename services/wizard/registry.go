package wizard

import (
	"sync"
	"time"
)

// Registry holds the live sessions by id. Session state lives in
// process memory for the duration of a visit; only draft snapshots go
// to the database.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	ttl      time.Duration
}

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

const defaultSessionTTL = 24 * time.Hour

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		ttl:      defaultSessionTTL,
	}
}

// GetOrCreate returns the session with the given id, creating a fresh
// one (with a new id) when the id is unknown or empty.
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if e, ok := r.sessions[id]; ok {
			e.lastSeen = time.Now()
			return e.session
		}
	}

	s := NewSession()
	r.sessions[s.ID] = &registryEntry{session: s, lastSeen: time.Now()}
	return s
}

// Sweep drops sessions idle longer than the TTL and returns how many
// were removed. Called periodically from a background goroutine.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.ttl)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
