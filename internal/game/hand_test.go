package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func card(rank Rank) Card {
	return Card{Suit: Spades, Rank: rank}
}

func TestHandScore(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want int
	}{
		{"empty", Hand{}, 0},
		{"numerals", Hand{card(Two), card(Three)}, 5},
		{"face cards", Hand{card(King), card(Queen)}, 20},
		{"natural", Hand{card(Ace), card(King)}, 21},
		{"both aces cannot be eleven", Hand{card(Ace), card(Ace), card(Nine)}, 21},
		{"three aces and an eight", Hand{card(Ace), card(Ace), card(Ace), card(Eight)}, 21},
		{"soft hand", Hand{card(Ace), card(Six)}, 17},
		{"demoted ace", Hand{card(Ace), card(Six), card(King)}, 17},
		{"bust", Hand{card(King), card(Queen), card(Five)}, 25},
		{"ten counts ten", Hand{card(Ten), card(Seven)}, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hand.Score())
		})
	}
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, Hand{card(Ace), card(King)}.IsBlackjack())
	assert.True(t, Hand{card(Ten), card(Ace)}.IsBlackjack())

	// 21 with three cards is not a natural
	assert.False(t, Hand{card(Seven), card(Seven), card(Seven)}.IsBlackjack())
	assert.False(t, Hand{card(Ace), card(Five), card(Five)}.IsBlackjack())

	// two cards short of 21 is not a natural either
	assert.False(t, Hand{card(King), card(Queen)}.IsBlackjack())
}

func TestIsBust(t *testing.T) {
	assert.False(t, Hand{card(King), card(Queen)}.IsBust())
	assert.False(t, Hand{card(Ace), card(Ace), card(Nine)}.IsBust())
	assert.True(t, Hand{card(King), card(Queen), card(Five)}.IsBust())
}

func TestIsSoft(t *testing.T) {
	assert.True(t, Hand{card(Ace), card(Six)}.IsSoft())
	assert.False(t, Hand{card(Ace), card(Six), card(King)}.IsSoft())
	assert.False(t, Hand{card(King), card(Seven)}.IsSoft())
}

func TestDealerPolicy(t *testing.T) {
	assert.True(t, DealerShouldHit(Hand{card(Ten), card(Six)}))
	assert.False(t, DealerShouldHit(Hand{card(Ten), card(Seven)}))

	// soft 17 is treated like a hard 17
	assert.False(t, DealerShouldHit(Hand{card(Ace), card(Six)}))
	assert.True(t, DealerShouldHit(Hand{card(Ace), card(Five)}))
}
