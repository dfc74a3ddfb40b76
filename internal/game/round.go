package game

import (
	"errors"

	"github.com/google/uuid"
)

type RoundState string

const (
	StateBetting    RoundState = "betting"    // Waiting for a valid bet
	StateDealt      RoundState = "dealt"      // Initial cards are out
	StateInsurance  RoundState = "insurance"  // Dealer shows an ace, side bet offered
	StatePlayerTurn RoundState = "playerTurn" // Player decides hit/stand/double
	StateDealerTurn RoundState = "dealerTurn" // Dealer draws to 17
	StateResolved   RoundState = "resolved"   // Hands are final, outcome computed
	StateAbandoned  RoundState = "abandoned"  // Player quit mid-round, no settlement
)

var (
	// ErrInvalidBet rejects a bet that is not a positive amount within the
	// player's balance. The round stays in the betting state.
	ErrInvalidBet = errors.New("bet must be positive and no more than your balance")

	// ErrIllegalAction rejects an action the current state does not allow,
	// such as doubling with more than two cards. The state is unchanged.
	ErrIllegalAction = errors.New("action not allowed now")

	// ErrInsufficientFunds rejects doubling or insuring without the balance
	// to cover the extra stake. The state is unchanged.
	ErrInsufficientFunds = errors.New("not enough balance for that")
)

// Round drives one betting round from bet to resolution. It owns the player
// and dealer hands and borrows the deck exclusively for its lifetime; the
// session ledger is only touched by the caller once the round resolves.
type Round struct {
	ID        string
	deck      *Deck
	player    Hand
	dealer    Hand
	balance   int // ledger balance at round start
	available int // balance minus stakes committed so far
	bet       int
	insurance int
	doubled   bool
	state     RoundState
	result    *Result
	events    *Emitter
}

// NewRound starts a round against the given shoe with the ledger's current
// balance. events may be nil when nobody is listening.
func NewRound(deck *Deck, balance int, events *Emitter) *Round {
	if events == nil {
		events = &Emitter{}
	}
	return &Round{
		ID:        uuid.New().String(),
		deck:      deck,
		balance:   balance,
		available: balance,
		state:     StateBetting,
		events:    events,
	}
}

// State returns the round's current state.
func (r *Round) State() RoundState {
	return r.state
}

// Bet returns the current stake, doubled if a double-down happened.
func (r *Round) Bet() int {
	return r.bet
}

// Result returns the resolved outcome, or false while the round is still
// in play or was abandoned.
func (r *Round) Result() (Result, bool) {
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// PlaceBet accepts the stake and deals two cards each to player and dealer.
// The dealer's second card stays conceptually face-down until the dealer
// turn. An ace up-card opens the insurance offer.
func (r *Round) PlaceBet(bet int) error {
	if r.state != StateBetting {
		return ErrIllegalAction
	}
	if bet <= 0 || bet > r.available {
		return ErrInvalidBet
	}

	r.bet = bet
	r.available -= bet
	r.player = Hand{r.deck.Draw(), r.deck.Draw()}
	r.dealer = Hand{r.deck.Draw(), r.deck.Draw()}
	r.state = StateDealt
	r.events.Emit(Event{Type: EventDeal})

	if r.dealer[0].Rank == Ace {
		r.state = StateInsurance
	} else {
		r.state = StatePlayerTurn
	}
	return nil
}

// TakeInsurance stakes half the bet on the dealer holding a natural. If the
// dealer does, the round settles immediately; otherwise the stake is
// forfeited at resolution and play continues.
func (r *Round) TakeInsurance() error {
	if r.state != StateInsurance {
		return ErrIllegalAction
	}
	stake := r.bet / 2
	if stake > r.available {
		return ErrInsufficientFunds
	}

	r.insurance = stake
	r.available -= stake

	if r.dealer.IsBlackjack() {
		r.resolve()
		return nil
	}
	r.state = StatePlayerTurn
	return nil
}

// DeclineInsurance passes on the side bet and moves to the player turn. A
// dealer natural then surfaces through the normal resolution precedence.
func (r *Round) DeclineInsurance() error {
	if r.state != StateInsurance {
		return ErrIllegalAction
	}
	r.state = StatePlayerTurn
	return nil
}

// Hit draws one card into the player's hand. Busting resolves the round
// immediately; the dealer turn is skipped.
func (r *Round) Hit() error {
	if r.state != StatePlayerTurn {
		return ErrIllegalAction
	}

	r.player = append(r.player, r.deck.Draw())
	r.events.Emit(Event{Type: EventDeal})
	if r.player.IsBust() {
		r.resolve()
	}
	return nil
}

// Stand ends the player's turn and runs the dealer to completion.
func (r *Round) Stand() error {
	if r.state != StatePlayerTurn {
		return ErrIllegalAction
	}
	r.dealerTurn()
	return nil
}

// CanDouble reports whether a double-down is currently legal: two cards in
// hand and the balance to match the original stake.
func (r *Round) CanDouble() bool {
	return r.state == StatePlayerTurn && len(r.player) == 2 && r.available >= r.bet
}

// Double doubles the stake, draws exactly one card, and forces the round
// onward: straight to resolution on a bust, otherwise to the dealer turn.
// The player may not act again.
func (r *Round) Double() error {
	if r.state != StatePlayerTurn || len(r.player) != 2 {
		return ErrIllegalAction
	}
	if r.available < r.bet {
		return ErrInsufficientFunds
	}

	r.available -= r.bet
	r.bet *= 2
	r.doubled = true
	r.player = append(r.player, r.deck.Draw())
	r.events.Emit(Event{Type: EventDeal})

	if r.player.IsBust() {
		r.resolve()
		return nil
	}
	r.dealerTurn()
	return nil
}

// Abandon quits the round before resolution. No outcome is produced and the
// ledger must be left exactly as it was before the round started.
func (r *Round) Abandon() {
	if r.state == StateResolved {
		return
	}
	r.state = StateAbandoned
}

// dealerTurn draws for the dealer under the fixed house policy, then
// resolves the round. Deterministic given the shoe's order.
func (r *Round) dealerTurn() {
	r.state = StateDealerTurn
	for DealerShouldHit(r.dealer) {
		r.dealer = append(r.dealer, r.deck.Draw())
	}
	r.resolve()
}

func (r *Round) resolve() {
	res := Resolve(r.player, r.dealer, r.bet, r.insurance)
	res.Doubled = r.doubled
	r.result = &res
	r.state = StateResolved

	switch {
	case res.Outcome.IsWin():
		r.events.Emit(Event{Type: EventWin})
	case res.Outcome == OutcomeLoss:
		r.events.Emit(Event{Type: EventLoss})
	default:
		r.events.Emit(Event{Type: EventPush})
	}
}

// Snapshot is an immutable view of the round for presentation layers. The
// dealer's hole card is included; HoleHidden tells renderers to conceal it.
type Snapshot struct {
	RoundID    string     `json:"roundId"`
	State      RoundState `json:"state"`
	PlayerHand Hand       `json:"playerHand"`
	DealerHand Hand       `json:"dealerHand"`
	HoleHidden bool       `json:"holeHidden"`
	Balance    int        `json:"balance"`
	Bet        int        `json:"bet"`
}

// Snapshot copies the current round state for rendering. The engine never
// blocks on what consumers do with it.
func (r *Round) Snapshot() Snapshot {
	hidden := r.state == StateDealt || r.state == StateInsurance || r.state == StatePlayerTurn
	return Snapshot{
		RoundID:    r.ID,
		State:      r.state,
		PlayerHand: append(Hand{}, r.player...),
		DealerHand: append(Hand{}, r.dealer...),
		HoleHidden: hidden,
		Balance:    r.balance,
		Bet:        r.bet,
	}
}
