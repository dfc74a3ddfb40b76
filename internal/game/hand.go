package game

import "strings"

// Hand is an ordered sequence of cards held by the player or the dealer for
// the lifetime of one round.
type Hand []Card

// Score calculates the best blackjack total of the hand, accounting for aces.
func (h Hand) Score() int {
	score := 0
	aces := 0

	// First pass: calculate score treating aces as 11
	for _, card := range h {
		if card.Rank == Ace {
			aces++
		}
		score += card.Value()
	}

	// Second pass: convert aces from 11 to 1 as needed to avoid busting
	for aces > 0 && score > 21 {
		score -= 10
		aces--
	}

	return score
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totaling 21.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Score() == 21
}

// IsBust reports whether the hand's best score exceeds 21.
func (h Hand) IsBust() bool {
	return h.Score() > 21
}

// IsSoft reports whether an ace is still counted as 11 in the best score.
func (h Hand) IsSoft() bool {
	score := 0
	aces := 0
	for _, card := range h {
		if card.Rank == Ace {
			aces++
		}
		score += card.Value()
	}
	for aces > 0 && score > 21 {
		score -= 10
		aces--
	}
	return aces > 0
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, card := range h {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
