package game

// Outcome categorizes the result of a resolved round.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeLoss      Outcome = "loss"
	OutcomePush      Outcome = "push"
)

// IsWin reports whether the outcome pays the player.
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// Result is the resolved round: its category and the net balance change,
// insurance settlement included.
type Result struct {
	Outcome     Outcome `json:"outcome"`
	Delta       int     `json:"delta"`
	PlayerScore int     `json:"playerScore"`
	DealerScore int     `json:"dealerScore"`
	Doubled     bool    `json:"doubled"`
	Insured     bool    `json:"insured"`
}

// Resolve maps final hands and the bet to an outcome and balance delta.
// Precedence, first match wins:
//
//  1. player bust            -> loss
//  2. player natural only    -> blackjack, pays 3:2 (floored)
//  3. both naturals          -> push
//  4. dealer natural only    -> loss
//  5. dealer bust            -> win
//  6. player score higher    -> win
//  7. dealer score higher    -> loss
//  8. equal scores           -> push
//
// A natural is strictly a 2-card 21: a doubled hand totaling 21 with three
// cards resolves by steps 5-8 and never earns the 3:2 bonus.
//
// insuranceBet is 0 when no insurance was taken. A taken stake pays 2:1 when
// the dealer holds a natural and is forfeited otherwise; an insured round
// lost only to a dealer natural therefore nets zero and counts as a push.
func Resolve(player, dealer Hand, bet, insuranceBet int) Result {
	res := Result{
		PlayerScore: player.Score(),
		DealerScore: dealer.Score(),
		Insured:     insuranceBet > 0,
	}

	switch {
	case player.IsBust():
		res.Outcome = OutcomeLoss
		res.Delta = -bet
	case player.IsBlackjack() && !dealer.IsBlackjack():
		res.Outcome = OutcomeBlackjack
		res.Delta = bet * 3 / 2
	case player.IsBlackjack() && dealer.IsBlackjack():
		res.Outcome = OutcomePush
	case dealer.IsBlackjack():
		res.Outcome = OutcomeLoss
		res.Delta = -bet
	case dealer.IsBust():
		res.Outcome = OutcomeWin
		res.Delta = bet
	case res.PlayerScore > res.DealerScore:
		res.Outcome = OutcomeWin
		res.Delta = bet
	case res.PlayerScore < res.DealerScore:
		res.Outcome = OutcomeLoss
		res.Delta = -bet
	default:
		res.Outcome = OutcomePush
	}

	if insuranceBet > 0 {
		if dealer.IsBlackjack() {
			res.Delta += 2 * insuranceBet
			if res.Outcome == OutcomeLoss && !player.IsBust() {
				res.Outcome = OutcomePush
			}
		} else {
			res.Delta -= insuranceBet
		}
	}

	return res
}
