package form

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions keeps live form state between page renders, keyed by the session
// id embedded in the form markup. Abandoned sessions expire so closing the
// browser mid-edit does not leak entries.
type Sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	forms map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	form      *ApartmentForm
	expiresAt time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:   ttl,
		forms: make(map[uuid.UUID]*sessionEntry),
	}
}

// Create registers a fresh form in create mode and returns it.
func (s *Sessions) Create() *ApartmentForm {
	f := NewApartmentForm()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.forms[f.ID] = &sessionEntry{form: f, expiresAt: time.Now().Add(s.ttl)}
	return f
}

// Get returns the form for a session id. Every hit extends the session, so
// a form stays alive as long as the user keeps interacting with it.
func (s *Sessions) Get(id uuid.UUID) (*ApartmentForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	entry, ok := s.forms[id]
	if !ok {
		return nil, false
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	return entry.form, true
}

// Drop removes a session once its form has been submitted or cancelled.
func (s *Sessions) Drop(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, id)
}

// sweep drops expired entries. Callers must hold s.mu.
func (s *Sessions) sweep() {
	now := time.Now()
	for id, entry := range s.forms {
		if now.After(entry.expiresAt) {
			delete(s.forms, id)
		}
	}
}
