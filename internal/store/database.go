package store

import (
	"github.com/rcapers/bj-term/internal/db"
	"github.com/rcapers/bj-term/internal/session"
)

// DatabaseStore is a SQLite-backed implementation of session persistence
type DatabaseStore struct {
	db *db.Database
}

// NewDatabaseStore creates a new database store
func NewDatabaseStore(database *db.Database) *DatabaseStore {
	return &DatabaseStore{
		db: database,
	}
}

// SaveSession persists the ledger to the database
func (s *DatabaseStore) SaveSession(sess *session.Session) error {
	return s.db.SaveSession(sess)
}

// LoadSession retrieves the most recent saved session
func (s *DatabaseStore) LoadSession() (*session.Session, error) {
	return s.db.LoadSession()
}

// SaveRound appends a settled round to the history
func (s *DatabaseStore) SaveRound(rec session.RoundRecord) error {
	return s.db.SaveRound(rec)
}

// Rounds retrieves a session's round history
func (s *DatabaseStore) Rounds(sessionID string) ([]session.RoundRecord, error) {
	return s.db.Rounds(sessionID)
}
