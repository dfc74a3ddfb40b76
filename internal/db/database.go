package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rcapers/bj-term/internal/session"
)

// Database persists the session ledger and round history in SQLite.
type Database struct {
	db *sql.DB
}

// NewDatabase opens (or creates) the SQLite database at the given path.
func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	if err := initTables(db); err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// initTables creates the necessary tables if they don't exist
func initTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			balance INTEGER NOT NULL,
			games_played INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			losses INTEGER NOT NULL DEFAULT 0,
			pushes INTEGER NOT NULL DEFAULT 0,
			blackjacks INTEGER NOT NULL DEFAULT 0,
			double_downs INTEGER NOT NULL DEFAULT 0,
			insurances INTEGER NOT NULL DEFAULT 0,
			biggest_win INTEGER NOT NULL DEFAULT 0,
			biggest_loss INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			best_streak INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating sessions table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			bet INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			delta INTEGER NOT NULL,
			player_score INTEGER NOT NULL,
			dealer_score INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions (id)
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating rounds table: %v", err)
	}

	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// SaveSession upserts the session ledger.
func (d *Database) SaveSession(s *session.Session) error {
	_, err := d.db.Exec(`
		INSERT INTO sessions (
			id, balance, games_played, wins, losses, pushes, blackjacks,
			double_downs, insurances, biggest_win, biggest_loss,
			current_streak, best_streak, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			balance = excluded.balance,
			games_played = excluded.games_played,
			wins = excluded.wins,
			losses = excluded.losses,
			pushes = excluded.pushes,
			blackjacks = excluded.blackjacks,
			double_downs = excluded.double_downs,
			insurances = excluded.insurances,
			biggest_win = excluded.biggest_win,
			biggest_loss = excluded.biggest_loss,
			current_streak = excluded.current_streak,
			best_streak = excluded.best_streak,
			updated_at = excluded.updated_at
	`,
		s.ID, s.Balance, s.Stats.GamesPlayed, s.Stats.Wins, s.Stats.Losses,
		s.Stats.Pushes, s.Stats.Blackjacks, s.Stats.DoubleDowns,
		s.Stats.Insurances, s.Stats.BiggestWin, s.Stats.BiggestLoss,
		s.Stats.CurrentStreak, s.Stats.BestStreak, s.UpdatedAt,
	)
	return err
}

// LoadSession retrieves the most recently saved session. A missing record is
// not an error: the caller falls back to a fresh session.
func (d *Database) LoadSession() (*session.Session, error) {
	var s session.Session

	err := d.db.QueryRow(`
		SELECT id, balance, games_played, wins, losses, pushes, blackjacks,
			double_downs, insurances, biggest_win, biggest_loss,
			current_streak, best_streak, updated_at
		FROM sessions ORDER BY updated_at DESC LIMIT 1
	`).Scan(
		&s.ID, &s.Balance, &s.Stats.GamesPlayed, &s.Stats.Wins,
		&s.Stats.Losses, &s.Stats.Pushes, &s.Stats.Blackjacks,
		&s.Stats.DoubleDowns, &s.Stats.Insurances, &s.Stats.BiggestWin,
		&s.Stats.BiggestLoss, &s.Stats.CurrentStreak, &s.Stats.BestStreak,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

// SaveRound appends a settled round to the history.
func (d *Database) SaveRound(rec session.RoundRecord) error {
	_, err := d.db.Exec(`
		INSERT INTO rounds (id, session_id, bet, outcome, delta, player_score, dealer_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID, rec.SessionID, rec.Bet, rec.Outcome, rec.Delta,
		rec.PlayerScore, rec.DealerScore, rec.CreatedAt,
	)
	return err
}

// Rounds retrieves a session's round history, most recent first.
func (d *Database) Rounds(sessionID string) ([]session.RoundRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, session_id, bet, outcome, delta, player_score, dealer_score, created_at
		FROM rounds WHERE session_id = ? ORDER BY created_at DESC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []session.RoundRecord
	for rows.Next() {
		var rec session.RoundRecord
		if err := rows.Scan(
			&rec.ID, &rec.SessionID, &rec.Bet, &rec.Outcome, &rec.Delta,
			&rec.PlayerScore, &rec.DealerScore, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}
