package game

import (
	"math/rand"
	"time"
)

// LowWaterMark is the number of remaining cards below which a draw forces a
// full reset-and-reshuffle before being served.
const LowWaterMark = 10

// Deck is an ordered sequence of cards acting as the shoe. It is owned
// exclusively by the round currently drawing from it.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a freshly shuffled standard 52-card deck.
func NewDeck() *Deck {
	d := &Deck{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	d.Reset()
	return d
}

// NewDeckFromSource creates a deck shuffled with the given source, so tests
// can fix the draw order.
func NewDeckFromSource(src rand.Source) *Deck {
	d := &Deck{rng: rand.New(src)}
	d.Reset()
	return d
}

// Reset repopulates the deck with all 52 cards and shuffles them.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	d.shuffle()
}

// shuffle randomizes the card order with a Fisher-Yates pass.
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. When the shoe has run below the
// low-water mark it is reset and reshuffled first, so a draw always succeeds.
func (d *Deck) Draw() Card {
	if len(d.cards) < LowWaterMark {
		d.Reset()
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// Remaining returns the number of cards left in the shoe.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
