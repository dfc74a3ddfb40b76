package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rcapers/bj-term/internal/game"
)

// DefaultBalance is the bankroll a brand-new session starts with.
const DefaultBalance = 100

// Stats accumulates outcome counters across rounds. BiggestWin and
// BiggestLoss are positive magnitudes; CurrentStreak is signed, positive for
// a run of wins and negative for a run of losses, and resets on a push.
type Stats struct {
	GamesPlayed   int `json:"gamesPlayed"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Pushes        int `json:"pushes"`
	Blackjacks    int `json:"blackjacks"`
	DoubleDowns   int `json:"doubleDowns"`
	Insurances    int `json:"insurances"`
	BiggestWin    int `json:"biggestWin"`
	BiggestLoss   int `json:"biggestLoss"`
	CurrentStreak int `json:"currentStreak"`
	BestStreak    int `json:"bestStreak"`
}

// WinRate returns the percentage of played rounds the player won.
func (s Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100.0
}

// Session is the ledger that outlives rounds: the bankroll plus cumulative
// statistics. It is mutated exactly once per round, by Apply.
type Session struct {
	ID        string    `json:"id"`
	Balance   int       `json:"balance"`
	Stats     Stats     `json:"stats"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a session with the default bankroll and zeroed statistics.
func New() *Session {
	return NewWithBalance(DefaultBalance)
}

// NewWithBalance creates a fresh session with the given starting bankroll.
func NewWithBalance(balance int) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Balance:   balance,
		UpdatedAt: time.Now(),
	}
}

// Apply settles a resolved round into the ledger: balance and statistics
// move together. It returns achievement events for any record the round set
// (bigger biggest-win, longer best streak); callers forward them to whoever
// listens.
func (s *Session) Apply(res game.Result) []game.Event {
	var achievements []game.Event

	s.Stats.GamesPlayed++
	if res.Doubled {
		s.Stats.DoubleDowns++
	}
	if res.Insured {
		s.Stats.Insurances++
	}

	switch {
	case res.Outcome.IsWin():
		s.Stats.Wins++
		if res.Outcome == game.OutcomeBlackjack {
			s.Stats.Blackjacks++
		}
		if s.Stats.CurrentStreak < 0 {
			s.Stats.CurrentStreak = 0
		}
		s.Stats.CurrentStreak++
		if res.Delta > s.Stats.BiggestWin {
			s.Stats.BiggestWin = res.Delta
			achievements = append(achievements, game.Event{
				Type:    game.EventAchievement,
				Message: "New biggest win",
			})
		}
	case res.Outcome == game.OutcomeLoss:
		s.Stats.Losses++
		if s.Stats.CurrentStreak > 0 {
			s.Stats.CurrentStreak = 0
		}
		s.Stats.CurrentStreak--
		if -res.Delta > s.Stats.BiggestLoss {
			s.Stats.BiggestLoss = -res.Delta
		}
	default:
		s.Stats.Pushes++
		s.Stats.CurrentStreak = 0
	}

	if streak := abs(s.Stats.CurrentStreak); streak > s.Stats.BestStreak {
		s.Stats.BestStreak = streak
		if streak > 1 {
			achievements = append(achievements, game.Event{
				Type:    game.EventAchievement,
				Message: "New best streak",
			})
		}
	}

	s.Balance += res.Delta
	s.UpdatedAt = time.Now()
	return achievements
}

// RoundRecord is one settled round in the session history.
type RoundRecord struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	Bet         int       `json:"bet"`
	Outcome     string    `json:"outcome"`
	Delta       int       `json:"delta"`
	PlayerScore int       `json:"playerScore"`
	DealerScore int       `json:"dealerScore"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Record builds the history entry for a round this session just settled.
func (s *Session) Record(roundID string, res game.Result, bet int) RoundRecord {
	return RoundRecord{
		ID:          roundID,
		SessionID:   s.ID,
		Bet:         bet,
		Outcome:     string(res.Outcome),
		Delta:       res.Delta,
		PlayerScore: res.PlayerScore,
		DealerScore: res.DealerScore,
		CreatedAt:   time.Now(),
	}
}

// Broke reports whether the bankroll can no longer cover any bet.
func (s *Session) Broke() bool {
	return s.Balance <= 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
