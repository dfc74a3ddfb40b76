package game

type Suit string
type Rank string

const (
	Spades   Suit = "Spades"
	Diamonds Suit = "Diamonds"
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
)

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Suits and Ranks enumerate the canonical deck order.
var (
	Suits = []Suit{Spades, Diamonds, Hearts, Clubs}
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Card is an immutable rank+suit pair. Two cards are equal iff both fields match.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Value returns the blackjack value of the card. Aces count as 11 here;
// demotion to 1 is the hand evaluator's job.
func (c Card) Value() int {
	switch c.Rank {
	case Ace:
		return 11
	case Ten, Jack, Queen, King:
		return 10
	case Two:
		return 2
	case Three:
		return 3
	case Four:
		return 4
	case Five:
		return 5
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	default:
		return 0
	}
}

// Symbol returns the suit glyph used by the terminal renderer.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

func (c Card) String() string {
	return string(c.Rank) + c.Suit.Symbol()
}
