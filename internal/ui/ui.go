package ui

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/rcapers/bj-term/internal/game"
	"github.com/rcapers/bj-term/internal/session"
)

// Action is a player decision selected at the terminal.
type Action string

const (
	ActionHit    Action = "Hit"
	ActionStand  Action = "Stand"
	ActionDouble Action = "Double down"
	ActionQuit   Action = "Quit"
)

// MenuChoice is a top-level menu selection between rounds.
type MenuChoice string

const (
	MenuPlay  MenuChoice = "Play a round"
	MenuStats MenuChoice = "Statistics"
	MenuQuit  MenuChoice = "Quit"
)

// Banner prints the big-text title shown at startup.
func Banner() {
	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgLightRed.ToStyle()),
		putils.LettersFromStringWithStyle("Jack", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		pterm.Println("BLACKJACK")
		return
	}
	pterm.Print(title)
	pterm.Println()
}

// MainMenu asks what to do next.
func MainMenu() MenuChoice {
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("What would you like to do?").
		WithOptions([]string{string(MenuPlay), string(MenuStats), string(MenuQuit)}).
		Show()
	return MenuChoice(choice)
}

// PromptBet reads a bet amount. Non-numeric input is re-prompted locally;
// range validation belongs to the engine, which rejects and re-prompts too.
func PromptBet(balance int) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Enter your bet (1-%d)", balance)).
			Show()
		bet, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			pterm.Error.Println("Invalid input, please enter a number.")
			continue
		}
		return bet
	}
}

// PromptAction asks for the player's next move.
func PromptAction(canDouble bool) Action {
	options := []string{string(ActionHit), string(ActionStand)}
	if canDouble {
		options = append(options, string(ActionDouble))
	}
	options = append(options, string(ActionQuit))

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Your move").
		WithOptions(options).
		Show()
	return Action(choice)
}

// PromptInsurance offers the side bet when the dealer shows an ace.
func PromptInsurance(stake int) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		Show(pterm.Sprintf("Dealer shows an ace. Take insurance for $%d?", stake))
	return ok
}

// RenderRound draws both hands from a snapshot. While the hole card is
// concealed the dealer's second card renders face-down and the dealer total
// reads Hidden.
func RenderRound(snap game.Snapshot) {
	pterm.Println()
	if snap.HoleHidden {
		pterm.Printfln("Dealer's hand (Total: %s):", pterm.LightYellow("Hidden"))
	} else {
		pterm.Printfln("Dealer's hand (Total: %d):", snap.DealerHand.Score())
	}
	printHand(snap.DealerHand, snap.HoleHidden)

	pterm.Println()
	pterm.Printfln("Your hand (Total: %d):", snap.PlayerHand.Score())
	printHand(snap.PlayerHand, false)
	pterm.Println()
}

// ShowResult announces the outcome and the new balance.
func ShowResult(res game.Result, balance int) {
	switch {
	case res.Outcome == game.OutcomeBlackjack:
		pterm.Success.Printfln("Blackjack! You win $%d. New balance: $%d", res.Delta, balance)
	case res.Outcome == game.OutcomeWin:
		pterm.Success.Printfln("You win $%d! New balance: $%d", res.Delta, balance)
	case res.Outcome == game.OutcomeLoss && res.PlayerScore > 21:
		pterm.Error.Printfln("You bust! You lose $%d. New balance: $%d", -res.Delta, balance)
	case res.Outcome == game.OutcomeLoss:
		pterm.Error.Printfln("You lose $%d. New balance: $%d", -res.Delta, balance)
	default:
		pterm.Info.Printfln("Push. Your bet is returned. Balance: $%d", balance)
	}
}

// ShowEvent surfaces achievement events; the other event types are already
// visible through the rendered round.
func ShowEvent(ev game.Event) {
	if ev.Type == game.EventAchievement {
		pterm.Success.Printfln("Achievement: %s!", ev.Message)
	}
}

// ShowStats renders the session statistics table.
func ShowStats(s *session.Session) {
	data := pterm.TableData{
		{"Balance", pterm.Sprintf("$%d", s.Balance)},
		{"Games played", strconv.Itoa(s.Stats.GamesPlayed)},
		{"Wins", strconv.Itoa(s.Stats.Wins)},
		{"Losses", strconv.Itoa(s.Stats.Losses)},
		{"Pushes", strconv.Itoa(s.Stats.Pushes)},
		{"Blackjacks", strconv.Itoa(s.Stats.Blackjacks)},
		{"Double downs", strconv.Itoa(s.Stats.DoubleDowns)},
		{"Insurances taken", strconv.Itoa(s.Stats.Insurances)},
		{"Win rate", pterm.Sprintf("%.1f%%", s.Stats.WinRate())},
		{"Biggest win", pterm.Sprintf("$%d", s.Stats.BiggestWin)},
		{"Biggest loss", pterm.Sprintf("$%d", s.Stats.BiggestLoss)},
		{"Current streak", strconv.Itoa(s.Stats.CurrentStreak)},
		{"Best streak", strconv.Itoa(s.Stats.BestStreak)},
	}
	pterm.DefaultTable.WithBoxed().WithData(data).Render()
}

// ShowGoodbye prints the exit message.
func ShowGoodbye(broke bool) {
	if broke {
		pterm.Println("You're out of money. Thanks for playing!")
		return
	}
	pterm.Println("Thanks for playing!")
}

// printHand draws the cards of one hand side by side as box art. hideHole
// replaces every card after the first with a face-down back.
func printHand(hand game.Hand, hideHole bool) {
	if len(hand) == 0 {
		return
	}

	visuals := make([][]string, len(hand))
	for i, card := range hand {
		if hideHole && i > 0 {
			visuals[i] = backVisual()
		} else {
			visuals[i] = cardVisual(card)
		}
	}

	// Join card rows horizontally, one text row at a time
	for row := 0; row < cardRows; row++ {
		parts := make([]string, len(visuals))
		for i, v := range visuals {
			parts[i] = v[row]
		}
		pterm.Println(strings.Join(parts, " "))
	}
}

const cardRows = 7

// cardVisual builds the box-drawing visual of one face-up card.
func cardVisual(c game.Card) []string {
	rank := string(c.Rank)
	suit := c.Suit.Symbol()
	if c.Suit == game.Hearts || c.Suit == game.Diamonds {
		suit = pterm.Red(suit)
	}
	return []string{
		"╔═══════╗",
		pterm.Sprintf("║ %-5s ║", rank),
		"║       ║",
		pterm.Sprintf("║   %s   ║", suit),
		"║       ║",
		pterm.Sprintf("║ %5s ║", rank),
		"╚═══════╝",
	}
}

// backVisual builds the face-down card back.
func backVisual() []string {
	return []string{
		"╔═══════╗",
		"║░░░░░░░║",
		"║░░░░░░░║",
		"║░░░░░░░║",
		"║░░░░░░░║",
		"║░░░░░░░║",
		"╚═══════╝",
	}
}
