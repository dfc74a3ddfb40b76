package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcapers/bj-term/internal/game"
)

func win(delta int) game.Result {
	return game.Result{Outcome: game.OutcomeWin, Delta: delta}
}

func loss(delta int) game.Result {
	return game.Result{Outcome: game.OutcomeLoss, Delta: -delta}
}

func push() game.Result {
	return game.Result{Outcome: game.OutcomePush}
}

func TestNewSessionDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultBalance, s.Balance)
	assert.Equal(t, Stats{}, s.Stats)
	assert.NotEmpty(t, s.ID)
}

func TestApplyMovesBalanceAndCounters(t *testing.T) {
	s := NewWithBalance(100)

	s.Apply(win(10))
	assert.Equal(t, 110, s.Balance)
	assert.Equal(t, 1, s.Stats.GamesPlayed)
	assert.Equal(t, 1, s.Stats.Wins)

	s.Apply(loss(20))
	assert.Equal(t, 90, s.Balance)
	assert.Equal(t, 1, s.Stats.Losses)

	s.Apply(push())
	assert.Equal(t, 90, s.Balance)
	assert.Equal(t, 1, s.Stats.Pushes)
	assert.Equal(t, 3, s.Stats.GamesPlayed)
}

func TestApplyStreaks(t *testing.T) {
	s := NewWithBalance(100)

	s.Apply(win(10))
	s.Apply(win(10))
	assert.Equal(t, 2, s.Stats.CurrentStreak)
	assert.Equal(t, 2, s.Stats.BestStreak)

	s.Apply(loss(10))
	assert.Equal(t, -1, s.Stats.CurrentStreak)
	s.Apply(loss(10))
	s.Apply(loss(10))
	assert.Equal(t, -3, s.Stats.CurrentStreak)

	// best streak tracks the maximum absolute value and never decreases
	assert.Equal(t, 3, s.Stats.BestStreak)

	s.Apply(push())
	assert.Equal(t, 0, s.Stats.CurrentStreak)
	assert.Equal(t, 3, s.Stats.BestStreak)

	s.Apply(win(10))
	assert.Equal(t, 1, s.Stats.CurrentStreak)
	assert.Equal(t, 3, s.Stats.BestStreak)
}

func TestApplyBiggestWinAndLoss(t *testing.T) {
	s := NewWithBalance(100)

	s.Apply(win(10))
	s.Apply(win(30))
	s.Apply(win(20))
	assert.Equal(t, 30, s.Stats.BiggestWin)

	s.Apply(loss(5))
	s.Apply(loss(25))
	s.Apply(loss(15))
	assert.Equal(t, 25, s.Stats.BiggestLoss)
}

func TestApplyBlackjackAndSideBetCounters(t *testing.T) {
	s := NewWithBalance(100)

	s.Apply(game.Result{Outcome: game.OutcomeBlackjack, Delta: 15})
	assert.Equal(t, 1, s.Stats.Wins)
	assert.Equal(t, 1, s.Stats.Blackjacks)
	assert.Equal(t, 115, s.Balance)

	s.Apply(game.Result{Outcome: game.OutcomeLoss, Delta: -20, Doubled: true})
	assert.Equal(t, 1, s.Stats.DoubleDowns)

	s.Apply(game.Result{Outcome: game.OutcomePush, Insured: true})
	assert.Equal(t, 1, s.Stats.Insurances)
}

func TestApplyAchievements(t *testing.T) {
	s := NewWithBalance(100)

	evs := s.Apply(win(10))
	require.Len(t, evs, 1)
	assert.Equal(t, game.EventAchievement, evs[0].Type)

	// smaller win sets no record
	evs = s.Apply(win(5))
	var messages []string
	for _, ev := range evs {
		messages = append(messages, ev.Message)
	}
	assert.NotContains(t, messages, "New biggest win")

	// the second consecutive win is a new best streak
	assert.Contains(t, messages, "New best streak")
}

func TestRecordBuildsHistoryEntry(t *testing.T) {
	s := NewWithBalance(100)
	res := game.Result{Outcome: game.OutcomeWin, Delta: 10, PlayerScore: 19, DealerScore: 17}

	rec := s.Record("round-1", res, 10)
	assert.Equal(t, "round-1", rec.ID)
	assert.Equal(t, s.ID, rec.SessionID)
	assert.Equal(t, "win", rec.Outcome)
	assert.Equal(t, 10, rec.Delta)
	assert.Equal(t, 19, rec.PlayerScore)
	assert.Equal(t, 17, rec.DealerScore)
}

func TestWinRate(t *testing.T) {
	s := NewWithBalance(100)
	assert.Zero(t, s.Stats.WinRate())

	s.Apply(win(10))
	s.Apply(loss(10))
	s.Apply(win(10))
	s.Apply(push())
	assert.InDelta(t, 50.0, s.Stats.WinRate(), 0.001)
}
