package tui

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/games"
	"github.com/Flapjacck/pbat/internal/store"
)

// RunBlackjack plays blackjack sessions until the player leaves the table.
func (a *App) RunBlackjack() error {
	decks, ok := a.selectNumber("BLACKJACK", "Decks in shoe", a.Cfg.Decks, 1, games.MaxDecks, 1)
	if !ok {
		return nil
	}
	bankrollInt, ok := a.selectNumber("BLACKJACK", "Bankroll $", a.Cfg.Bankroll,
		int(games.MinBankroll.IntPart()), int(games.MaxBankroll.IntPart()), int(games.BankrollStep.IntPart()))
	if !ok {
		return nil
	}
	bankroll := decimal.NewFromInt(int64(bankrollInt))

	seeds, err := a.newSeeds()
	if err != nil {
		return err
	}
	table, err := games.NewBlackjackTable(decks, bankroll, seeds, 0)
	if err != nil {
		return err
	}

	session := &store.Session{
		Game:           "blackjack",
		ServerSeedHash: seeds.ServerHash(),
		ClientSeed:     seeds.Client,
		BankrollStart:  bankroll,
		BankrollEnd:    bankroll,
		EngineVersion:  games.Version,
	}
	if err := a.DB.CreateSession(session); err != nil {
		return err
	}

	for {
		bet, ok := a.selectBet(table)
		if !ok {
			break
		}
		round, err := table.StartRound(bet)
		if err != nil {
			a.Term.Println(a.styles.lose.Render(err.Error()))
			a.waitForKey()
			continue
		}

		if round.Phase() == games.PhaseInsurance {
			a.drawBlackjack(table, round, "Dealer shows an ace.")
			take := a.confirm("Take insurance for $" + round.InsuranceCost().String() + "?")
			net, err := table.ResolveInsurance(round, take)
			if err != nil {
				return err
			}
			if take {
				if net.IsPositive() {
					a.message(winColor, "Insurance pays $"+net.String())
				} else {
					a.message(loseColor, "Insurance lost $"+net.Neg().String())
				}
				a.waitForKey()
			}
		}

		if err := a.playHand(table, round); err != nil {
			return err
		}
		if round.Phase() == games.PhaseDealer {
			if _, err := round.PlayDealer(); err != nil {
				return err
			}
		}

		settlement, err := table.Finish(round)
		if err != nil {
			return err
		}
		a.drawBlackjack(table, round, "")
		a.showSettlement(round, settlement)

		session.Rounds++
		session.BankrollEnd = table.Bankroll
		if err := a.DB.SaveRounds(session.ID, []store.Round{blackjackRound(session.ID, round, settlement)}); err != nil {
			return err
		}
		if err := a.DB.UpdateSession(session); err != nil {
			return err
		}

		if table.Broke() {
			a.message(loseColor, "Bankroll gone. Game over.")
			a.waitForKey()
			break
		}
		if !a.confirm("Play another hand?") {
			break
		}
	}
	a.endSession(session, seeds)
	return nil
}

// playHand runs the player's turn: hit, stand or double down.
func (a *App) playHand(table *games.BlackjackTable, round *games.BlackjackRound) error {
	for round.Phase() == games.PhasePlayer {
		hint := "h hit · s stand"
		if round.CanDouble(table.Bankroll) {
			hint += " · d double"
		}
		a.drawBlackjack(table, round, hint)

		key, err := a.Term.ReadKey()
		if err != nil {
			return err
		}
		if key.Key != KeyRune {
			continue
		}
		switch key.Rune {
		case 'h', 'H':
			if _, err := round.Hit(); err != nil {
				return err
			}
		case 's', 'S':
			if err := round.Stand(); err != nil {
				return err
			}
		case 'd', 'D':
			if round.CanDouble(table.Bankroll) {
				if _, err := table.DoubleDown(round); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// drawBlackjack repaints the table: both hands, bankroll, bet and a hint line.
func (a *App) drawBlackjack(table *games.BlackjackTable, round *games.BlackjackRound, hint string) {
	a.Term.Clear()
	a.Term.Println(a.styles.title.Render("  BLACKJACK  "))
	a.Term.Printf("%s   shoe: %d cards left\n\n",
		a.styles.money.Render("Bankroll $"+table.Bankroll.String()+"  Bet $"+round.Bet.String()),
		table.Shoe.Remaining())
	a.Term.Println(a.renderHand(round.Dealer))
	a.Term.Println("")
	a.Term.Println(a.renderHand(round.Player))
	a.Term.Println("")
	if round.FreshShoe {
		a.Term.Println(a.styles.hint.Render("cut card reached, shoe reshuffled"))
	}
	if hint != "" {
		a.Term.Println(a.styles.hint.Render(hint))
	}
}

// showSettlement prints the round result and waits for a key.
func (a *App) showSettlement(round *games.BlackjackRound, s games.Settlement) {
	switch s.Result {
	case games.ResultPlayerWin:
		profit := s.Credit.Sub(round.Bet)
		a.Term.Println(a.styles.win.Render(fmt.Sprintf("You win $%s (%s)", profit.String(), s.Reason)))
	case games.ResultDealerWin:
		a.Term.Println(a.styles.lose.Render(fmt.Sprintf("Dealer wins, you lose $%s (%s)", round.Bet.String(), s.Reason)))
	default:
		a.Term.Println(a.styles.hint.Render("Push, bet returned (" + s.Reason + ")"))
	}
	a.waitForKey()
}

// selectBet adjusts the bet in 5% bankroll increments.
func (a *App) selectBet(table *games.BlackjackTable) (decimal.Decimal, bool) {
	inc := table.BetIncrement()
	bet := inc
	for {
		a.Term.Clear()
		a.Term.Println(a.styles.title.Render("  BLACKJACK  "))
		a.Term.Println("")
		a.Term.Println(a.styles.money.Render("Bankroll $" + table.Bankroll.String()))
		a.Term.Println("")
		a.Term.Printf("Bet: %s\n\n", a.styles.selected.Render(" $"+bet.String()+" "))
		a.Term.Println(a.styles.hint.Render("up/down adjust · enter deal · esc leave table"))

		key, err := a.Term.ReadKey()
		if err != nil {
			return decimal.Zero, false
		}
		switch key.Key {
		case KeyUp:
			next := bet.Add(inc)
			if next.LessThanOrEqual(table.Bankroll) {
				bet = next
			}
		case KeyDown:
			next := bet.Sub(inc)
			if next.GreaterThanOrEqual(inc) {
				bet = next
			}
		case KeyEnter:
			if bet.GreaterThan(table.Bankroll) {
				bet = table.Bankroll
			}
			return bet, true
		case KeyEscape, KeyCtrlC:
			return decimal.Zero, false
		}
	}
}

// blackjackRound flattens a settled round into its stored form.
func blackjackRound(sessionID string, r *games.BlackjackRound, s games.Settlement) store.Round {
	details, _ := json.Marshal(map[string]any{
		"player":        handStrings(r.Player),
		"player_value":  r.Player.Value,
		"dealer":        handStrings(r.Dealer),
		"dealer_value":  r.Dealer.Value,
		"doubled":       r.Player.Doubled,
		"charlie":       s.Charlie,
		"insurance":     r.InsuranceTaken,
		"insurance_net": r.InsuranceNet.String(),
		"fresh_shoe":    r.FreshShoe,
		"reason":        s.Reason,
	})
	return store.Round{
		SessionID: sessionID,
		Nonce:     r.ShoeNonce,
		Bet:       r.Bet,
		Payout:    s.Credit,
		Metric:    float64(r.Player.Value),
		Result:    string(s.Result),
		Details:   string(details),
	}
}

func handStrings(h *games.Hand) []string {
	out := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		out = append(out, c.String())
	}
	return out
}
