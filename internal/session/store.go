// Package session keeps short-lived per-visitor state, such as the last
// generated graph, and hands it to handlers through the request context.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Slot is the key/value state of one session.
type Slot struct {
	id string

	mu     sync.RWMutex
	values map[string]any
}

func (s *Slot) ID() string {
	return s.id
}

func (s *Slot) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Slot) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *Slot) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

type entry struct {
	slot     *Slot
	lastSeen time.Time
}

// Store holds sessions in memory. A session expires once it has not been
// seen for longer than the TTL.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

func (st *Store) TTL() time.Duration {
	return st.ttl
}

// Create starts a new empty session with a random identifier.
func (st *Store) Create() *Slot {
	slot := &Slot{id: uuid.NewString(), values: make(map[string]any)}

	st.mu.Lock()
	st.entries[slot.id] = &entry{slot: slot, lastSeen: st.now()}
	st.mu.Unlock()

	return slot
}

// Get returns a live session and refreshes its last-seen time.
func (st *Store) Get(id string) (*Slot, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	e, ok := st.entries[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if st.expired(e, now) {
		delete(st.entries, id)
		return nil, false
	}
	e.lastSeen = now
	return e.slot, true
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

// Sweep drops expired sessions and returns how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	removed := 0
	for id, e := range st.entries {
		if st.expired(e, now) {
			delete(st.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := st.Sweep(); removed > 0 {
				log.Debug().
					Int("removed", removed).
					Int("remaining", st.Len()).
					Msg("Expired sessions swept")
			}
		}
	}
}

func (st *Store) expired(e *entry, now time.Time) bool {
	return st.ttl > 0 && now.Sub(e.lastSeen) > st.ttl
}
