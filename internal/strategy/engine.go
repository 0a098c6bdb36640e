package strategy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/games"
)

// Simulator plays one round for the scripting engine. vm carries the
// script's current bet configuration (bet type, straight number).
type Simulator interface {
	// Name returns the game's registry ID.
	Name() string

	// PlayRound stakes bet and returns the total payout, stake included.
	PlayRound(bet decimal.Decimal, vm *VM) (decimal.Decimal, error)
}

// Engine drives a betting script: it loads the source, then loops calling
// dobet() and playing the requested round until the script stops, the
// balance runs out, or the round limit is hit.
type Engine struct {
	vm    *VM
	stats *Statistics
	sim   Simulator
}

// NewEngine creates an engine for the given simulator.
func NewEngine(sim Simulator) *Engine {
	return &Engine{sim: sim}
}

// Stats returns the statistics of the last run.
func (e *Engine) Stats() *Statistics { return e.stats }

// Logs returns the script's log output from the last run.
func (e *Engine) Logs() []LogEntry {
	if e.vm == nil {
		return nil
	}
	return e.vm.Logs()
}

// Run executes a script for at most maxRounds rounds.
func (e *Engine) Run(ctx context.Context, script string, startBalance float64, maxRounds int) (*Statistics, error) {
	if maxRounds <= 0 {
		maxRounds = 1000
	}

	e.vm = NewVM()
	e.stats = NewStatistics(startBalance)
	if err := e.vm.Load(script); err != nil {
		return nil, err
	}

	// Defaults scripts can override before or inside dobet().
	e.vm.Set("game", e.sim.Name())
	e.vm.Set("nextbet", 1.0)
	e.vm.Set("bettype", "RED")
	e.vm.Set("number", 0)
	e.vm.Set("win", false)
	e.vm.Set("sleeptime", int64(0))
	e.syncStats()

	for round := 0; round < maxRounds; round++ {
		select {
		case <-ctx.Done():
			return e.stats, ctx.Err()
		default:
		}

		if err := e.vm.CallDoBet(); err != nil {
			return e.stats, err
		}
		if e.vm.StopRequested() {
			break
		}

		bet := e.vm.Float("nextbet")
		if bet <= 0 {
			return e.stats, fmt.Errorf("round %d: nextbet must be positive, got %v", round+1, bet)
		}
		if bet > e.stats.Balance {
			return e.stats, errors.New("balance exhausted")
		}

		stake := decimal.NewFromFloat(bet)
		payout, err := e.sim.PlayRound(stake, e.vm)
		if err != nil {
			return e.stats, err
		}

		payoutF, _ := payout.Float64()
		e.stats.Record(bet, payoutF)
		e.vm.Set("win", payoutF > bet)
		e.syncStats()

		if ms := e.vm.Int("sleeptime"); ms > 0 {
			select {
			case <-ctx.Done():
				return e.stats, ctx.Err()
			case <-time.After(time.Duration(ms) * time.Millisecond):
			}
			e.vm.Set("sleeptime", int64(0))
		}
	}
	return e.stats, nil
}

// syncStats pushes the statistics into the script's globals.
func (e *Engine) syncStats() {
	e.vm.Set("balance", e.stats.Balance)
	e.vm.Set("previousbet", e.stats.PreviousBet)
	e.vm.Set("bets", e.stats.Bets)
	e.vm.Set("wins", e.stats.Wins)
	e.vm.Set("losses", e.stats.Losses)
	e.vm.Set("pushes", e.stats.Pushes)
	e.vm.Set("wagered", e.stats.Wagered)
	e.vm.Set("profit", e.stats.Profit)
	e.vm.Set("currentstreak", e.stats.CurrentStreak)
	e.vm.Set("winstreak", e.stats.WinStreak)
	e.vm.Set("losestreak", e.stats.LoseStreak)
}

// RouletteSim resolves single roulette bets straight from the seed stream.
type RouletteSim struct {
	seeds engine.Seeds
	nonce uint64
}

// NewRouletteSim creates a roulette simulator starting at the given nonce.
func NewRouletteSim(seeds engine.Seeds, nonce uint64) *RouletteSim {
	return &RouletteSim{seeds: seeds, nonce: nonce}
}

// Name returns the game's registry ID.
func (s *RouletteSim) Name() string { return "roulette" }

// PlayRound spins one pocket and settles the bet described by the script's
// bettype and number globals.
func (s *RouletteSim) PlayRound(bet decimal.Decimal, vm *VM) (decimal.Decimal, error) {
	kind, err := games.ParseBetKind(vm.String("bettype"))
	if err != nil {
		return decimal.Zero, err
	}
	b := games.RouletteBet{Kind: kind, Number: vm.Int("number"), Amount: bet}
	if b.Kind == games.BetStraight && (b.Number < 0 || b.Number > 36) {
		return decimal.Zero, fmt.Errorf("straight bet number must be 0-36, got %d", b.Number)
	}

	pocket := games.SpinPocket(s.seeds, s.nonce)
	s.nonce++
	vm.Set("lastpocket", pocket)
	vm.Set("lastcolor", games.PocketColor(pocket))
	return b.Payout(pocket), nil
}

// BlackjackSim autoplays blackjack hands with a fixed dealer-mirror policy:
// hit below hard 17, never double, never take insurance.
type BlackjackSim struct {
	shoe *games.Shoe
}

// NewBlackjackSim creates a blackjack simulator with a fresh shoe.
func NewBlackjackSim(decks int, seeds engine.Seeds, nonce uint64) (*BlackjackSim, error) {
	shoe, err := games.NewShoe(decks, seeds, nonce)
	if err != nil {
		return nil, err
	}
	return &BlackjackSim{shoe: shoe}, nil
}

// Name returns the game's registry ID.
func (s *BlackjackSim) Name() string { return "blackjack" }

// PlayRound plays one hand to completion and returns the settlement credit.
func (s *BlackjackSim) PlayRound(bet decimal.Decimal, vm *VM) (decimal.Decimal, error) {
	round := games.NewBlackjackRound(s.shoe, bet)

	if round.Phase() == games.PhaseInsurance {
		if _, err := round.ResolveInsurance(false); err != nil {
			return decimal.Zero, err
		}
	}
	for round.Phase() == games.PhasePlayer {
		if round.Player.Value < 17 {
			if _, err := round.Hit(); err != nil {
				return decimal.Zero, err
			}
		} else if err := round.Stand(); err != nil {
			return decimal.Zero, err
		}
	}
	if round.Phase() == games.PhaseDealer {
		if _, err := round.PlayDealer(); err != nil {
			return decimal.Zero, err
		}
	}

	settlement, err := round.Settle()
	if err != nil {
		return decimal.Zero, err
	}
	vm.Set("playervalue", round.Player.Value)
	vm.Set("dealervalue", round.Dealer.Value)
	return settlement.Credit, nil
}
