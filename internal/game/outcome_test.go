package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		player      Hand
		dealer      Hand
		bet         int
		wantOutcome Outcome
		wantDelta   int
	}{
		{
			name:        "player bust loses even against a dealer bust",
			player:      Hand{card(King), card(Queen), card(Five)},
			dealer:      Hand{card(King), card(Queen), card(Five)},
			bet:         10,
			wantOutcome: OutcomeLoss,
			wantDelta:   -10,
		},
		{
			name:        "natural pays three to two",
			player:      Hand{card(Ace), card(King)},
			dealer:      Hand{card(Nine), card(Nine)},
			bet:         10,
			wantOutcome: OutcomeBlackjack,
			wantDelta:   15,
		},
		{
			name:        "natural payout floors on odd bets",
			player:      Hand{card(Ace), card(King)},
			dealer:      Hand{card(Nine), card(Nine)},
			bet:         5,
			wantOutcome: OutcomeBlackjack,
			wantDelta:   7,
		},
		{
			name:        "both naturals push",
			player:      Hand{card(Ace), card(King)},
			dealer:      Hand{card(Ace), card(Queen)},
			bet:         10,
			wantOutcome: OutcomePush,
			wantDelta:   0,
		},
		{
			name:        "dealer natural beats a plain twenty one",
			player:      Hand{card(Seven), card(Seven), card(Seven)},
			dealer:      Hand{card(Ace), card(King)},
			bet:         10,
			wantOutcome: OutcomeLoss,
			wantDelta:   -10,
		},
		{
			name:        "dealer bust pays even money",
			player:      Hand{card(Ten), card(Six)},
			dealer:      Hand{card(King), card(Six), card(Nine)},
			bet:         10,
			wantOutcome: OutcomeWin,
			wantDelta:   10,
		},
		{
			name:        "higher score wins",
			player:      Hand{card(Ten), card(Nine)},
			dealer:      Hand{card(Ten), card(Seven)},
			bet:         10,
			wantOutcome: OutcomeWin,
			wantDelta:   10,
		},
		{
			name:        "lower score loses",
			player:      Hand{card(Ten), card(Seven)},
			dealer:      Hand{card(Ten), card(Nine)},
			bet:         10,
			wantOutcome: OutcomeLoss,
			wantDelta:   -10,
		},
		{
			name:        "equal scores push",
			player:      Hand{card(Ten), card(Nine)},
			dealer:      Hand{card(King), card(Nine)},
			bet:         10,
			wantOutcome: OutcomePush,
			wantDelta:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.player, tt.dealer, tt.bet, 0)
			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantDelta, res.Delta)
		})
	}
}

// A doubled hand reaching 21 with three cards is not a natural and never
// earns the 3:2 bonus.
func TestResolveThreeCardTwentyOneIsNotNatural(t *testing.T) {
	player := Hand{card(Five), card(Six), card(King)}

	res := Resolve(player, Hand{card(Ten), card(Nine)}, 20, 0)
	assert.Equal(t, OutcomeWin, res.Outcome)
	assert.Equal(t, 20, res.Delta)

	// and it still loses to a dealer natural
	res = Resolve(player, Hand{card(Ace), card(King)}, 20, 0)
	assert.Equal(t, OutcomeLoss, res.Outcome)
	assert.Equal(t, -20, res.Delta)
}

func TestResolveInsurance(t *testing.T) {
	dealerNatural := Hand{card(Ace), card(King)}

	t.Run("dealer natural settles the insured round as a push", func(t *testing.T) {
		res := Resolve(Hand{card(Nine), card(Nine)}, dealerNatural, 10, 5)
		assert.Equal(t, OutcomePush, res.Outcome)
		assert.Equal(t, 0, res.Delta)
		assert.True(t, res.Insured)
	})

	t.Run("insured player natural keeps the side bet winnings", func(t *testing.T) {
		res := Resolve(Hand{card(Ace), card(Queen)}, dealerNatural, 10, 5)
		assert.Equal(t, OutcomePush, res.Outcome)
		assert.Equal(t, 10, res.Delta)
	})

	t.Run("no dealer natural forfeits the stake", func(t *testing.T) {
		res := Resolve(Hand{card(Ten), card(Nine)}, Hand{card(Ace), card(Nine)}, 10, 5)
		assert.Equal(t, OutcomeLoss, res.Outcome)
		assert.Equal(t, -15, res.Delta)
	})

	t.Run("winning the main bet still pays net of the stake", func(t *testing.T) {
		res := Resolve(Hand{card(Ten), card(Ten)}, Hand{card(Ace), card(Eight)}, 10, 5)
		assert.Equal(t, OutcomeWin, res.Outcome)
		assert.Equal(t, 5, res.Delta)
	})
}
