package store

import "github.com/rcapers/bj-term/internal/session"

// Store defines the interface for session persistence
type Store interface {
	// SaveSession persists the ledger; called at round boundaries and on quit
	SaveSession(s *session.Session) error

	// LoadSession retrieves the most recent saved session, or nil when no
	// save exists (which is not an error)
	LoadSession() (*session.Session, error)

	// SaveRound appends a settled round to the history
	SaveRound(rec session.RoundRecord) error

	// Rounds retrieves the history for a session, most recent first
	Rounds(sessionID string) ([]session.RoundRecord, error)
}
