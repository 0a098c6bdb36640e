package tui

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/games"
	"github.com/Flapjacck/pbat/internal/store"
)

var rouletteBetKinds = []games.BetKind{
	games.BetStraight,
	games.BetRed, games.BetBlack,
	games.BetEven, games.BetOdd,
	games.BetLow, games.BetHigh,
	games.BetFirstDozen, games.BetSecondDozen, games.BetThirdDozen,
	games.BetFirstColumn, games.BetSecondColumn, games.BetThirdColumn,
}

// RunRoulette plays roulette sessions until the player leaves the table.
func (a *App) RunRoulette() error {
	seeds, err := a.newSeeds()
	if err != nil {
		return err
	}
	chips := decimal.NewFromInt(int64(a.Cfg.Chips))
	if chips.LessThanOrEqual(decimal.Zero) {
		chips = games.StartingChips
	}
	table := games.NewRouletteTable(chips, seeds, 0)

	session := &store.Session{
		Game:           "roulette",
		ServerSeedHash: seeds.ServerHash(),
		ClientSeed:     seeds.Client,
		BankrollStart:  chips,
		BankrollEnd:    chips,
		EngineVersion:  games.Version,
	}
	if err := a.DB.CreateSession(session); err != nil {
		return err
	}

	for {
		a.drawRoulette(table)
		key, err := a.Term.ReadKey()
		if err != nil {
			return err
		}
		switch {
		case key.Key == KeyEscape || key.Key == KeyCtrlC:
			table.ClearBets()
			a.endSession(session, seeds)
			return nil
		case key.Key == KeyRune && (key.Rune == 'b' || key.Rune == 'B'):
			if err := a.placeBet(table); err != nil {
				return err
			}
		case key.Key == KeyRune && (key.Rune == 'c' || key.Rune == 'C'):
			table.ClearBets()
		case key.Key == KeyEnter:
			staked := table.Staked()
			bets := append([]games.RouletteBet(nil), table.Bets...)
			res, err := table.Spin()
			if err != nil {
				a.Term.Println(a.styles.lose.Render(err.Error()))
				a.waitForKey()
				continue
			}
			a.spinAnimation()
			a.showSpin(table, res)

			session.Rounds++
			session.BankrollEnd = table.Chips
			if err := a.DB.SaveRounds(session.ID, []store.Round{rouletteRound(session.ID, res, staked, bets)}); err != nil {
				return err
			}
			if err := a.DB.UpdateSession(session); err != nil {
				return err
			}

			if table.Broke() {
				a.message(loseColor, "Out of chips. Game over.")
				a.waitForKey()
				a.endSession(session, seeds)
				return nil
			}
		}
	}
}

// placeBet walks the bet-kind menu, then number and amount selectors.
func (a *App) placeBet(table *games.RouletteTable) error {
	items := make([]string, len(rouletteBetKinds))
	for i, k := range rouletteBetKinds {
		items[i] = k.String()
	}
	idx, ok := a.selectItem("ROULETTE · PLACE BET", items)
	if !ok {
		return nil
	}
	kind := rouletteBetKinds[idx]

	number := 0
	if kind == games.BetStraight {
		number, ok = a.selectNumber("ROULETTE · STRAIGHT BET", "Pocket", 0, 0, 36, 1)
		if !ok {
			return nil
		}
	}

	maxAmount := int(table.Chips.IntPart())
	if maxAmount < 1 {
		a.message(loseColor, "No chips left to stake.")
		a.waitForKey()
		return nil
	}
	amount, ok := a.selectNumber("ROULETTE · STAKE", "Chips", 1, 1, maxAmount, 1)
	if !ok {
		return nil
	}

	if err := table.PlaceBet(kind, number, decimal.NewFromInt(int64(amount))); err != nil {
		a.Term.Println(a.styles.lose.Render(err.Error()))
		a.waitForKey()
	}
	return nil
}

// drawRoulette repaints the felt: chips, placed bets and recent history.
func (a *App) drawRoulette(table *games.RouletteTable) {
	a.Term.Clear()
	a.Term.Println(a.styles.title.Render("  ROULETTE  "))
	a.Term.Println("")
	a.Term.Println(a.styles.money.Render("Chips " + table.Chips.String() + "  On felt " + table.Staked().String()))
	a.Term.Println("")
	if len(table.Bets) == 0 {
		a.Term.Println(a.styles.hint.Render("no bets placed"))
	} else {
		for _, b := range table.Bets {
			a.Term.Printf("  %-12s %s\n", b.Label(), b.Amount.String())
		}
	}
	a.Term.Println("")
	if len(table.History) > 0 {
		a.Term.Println("Last spins: " + a.historyStrip(table.History))
	}
	a.Term.Println("")
	a.Term.Println(a.styles.hint.Render("b bet · c clear · enter spin · esc leave table"))
}

// historyStrip colors past pockets red, black or green.
func (a *App) historyStrip(history []int) string {
	var sb strings.Builder
	for i := len(history) - 1; i >= 0; i-- {
		sb.WriteString(a.renderPocket(history[i]))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func (a *App) renderPocket(n int) string {
	s := strconv.Itoa(n)
	switch games.PocketColor(n) {
	case "red":
		return a.styles.pocketRed.Render(s)
	case "green":
		return a.styles.pocketGrn.Render(s)
	default:
		return s
	}
}

// spinAnimation ticks a few dots while the wheel "spins".
func (a *App) spinAnimation() {
	a.Term.Print("Spinning")
	for i := 0; i < 5; i++ {
		time.Sleep(120 * time.Millisecond)
		a.Term.Print(".")
	}
	a.Term.Println("")
}

// showSpin prints the winning pocket, its wheel neighbours and the payout.
func (a *App) showSpin(table *games.RouletteTable, res games.SpinResult) {
	neigh := games.WheelNeighbors(res.Pocket, 2)
	parts := make([]string, len(neigh))
	for i, n := range neigh {
		parts[i] = a.renderPocket(n)
	}
	a.Term.Println("Wheel:  " + strings.Join(parts, "  "))
	a.Term.Printf("Ball lands on %s (%s)\n", a.renderPocket(res.Pocket), games.PocketColor(res.Pocket))

	if res.TotalWon.IsPositive() {
		a.Term.Println(a.styles.win.Render("You collect " + res.TotalWon.String() + " chips"))
		for _, w := range res.Winners {
			a.Term.Printf("  %-12s pays %s\n", w.Label(), w.Payout(res.Pocket).String())
		}
	} else {
		a.Term.Println(a.styles.lose.Render("No winning bets"))
	}
	a.waitForKey()
}

// rouletteRound flattens a settled spin into its stored form.
func rouletteRound(sessionID string, res games.SpinResult, staked decimal.Decimal, bets []games.RouletteBet) store.Round {
	labels := make([]string, 0, len(bets))
	for _, b := range bets {
		labels = append(labels, b.Label()+" "+b.Amount.String())
	}
	details, _ := json.Marshal(map[string]any{
		"pocket": res.Pocket,
		"color":  res.Color,
		"bets":   labels,
	})
	return store.Round{
		SessionID: sessionID,
		Nonce:     res.Nonce,
		Bet:       staked,
		Payout:    res.TotalWon,
		Metric:    float64(res.Pocket),
		Result:    res.Color,
		Details:   string(details),
	}
}
