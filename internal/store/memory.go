package store

import (
	"sync"

	"github.com/rcapers/bj-term/internal/session"
)

// MemoryStore is an in-memory implementation of session persistence. It is
// used when the database cannot be opened and as a test double.
type MemoryStore struct {
	session *session.Session
	rounds  map[string][]session.RoundRecord
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rounds: make(map[string][]session.RoundRecord),
	}
}

// SaveSession keeps a copy of the ledger
func (s *MemoryStore) SaveSession(sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *sess
	s.session = &cp
	return nil
}

// LoadSession returns the saved ledger, or nil when nothing was saved
func (s *MemoryStore) LoadSession() (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, nil
	}
	cp := *s.session
	return &cp, nil
}

// SaveRound appends a settled round to the history
func (s *MemoryStore) SaveRound(rec session.RoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rounds[rec.SessionID] = append(s.rounds[rec.SessionID], rec)
	return nil
}

// Rounds returns the history for a session, most recent first
func (s *MemoryStore) Rounds(sessionID string) ([]session.RoundRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.rounds[sessionID]
	out := make([]session.RoundRecord, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		out = append(out, recs[i])
	}
	return out, nil
}
