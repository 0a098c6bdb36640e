package strategy

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/engine"
	"github.com/Flapjacck/pbat/internal/games"
)

var testSeeds = engine.Seeds{Server: "test_server_seed", Client: "test_client_seed"}

func TestRunFlatBetRoulette(t *testing.T) {
	script := `
		function dobet() {
			nextbet = 1;
			bettype = "RED";
		}
	`
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	stats, err := eng.Run(context.Background(), script, 100, 50)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Bets != 50 {
		t.Errorf("bets = %d, want 50", stats.Bets)
	}
	if stats.Wagered != 50 {
		t.Errorf("wagered = %g, want 50", stats.Wagered)
	}
	if stats.Wins+stats.Losses+stats.Pushes != stats.Bets {
		t.Errorf("wins %d + losses %d + pushes %d != bets %d",
			stats.Wins, stats.Losses, stats.Pushes, stats.Bets)
	}

	// The same seeds replay to the same result.
	eng2 := NewEngine(NewRouletteSim(testSeeds, 0))
	stats2, err := eng2.Run(context.Background(), script, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Balance != stats2.Balance {
		t.Errorf("balances differ between identical runs: %g vs %g", stats.Balance, stats2.Balance)
	}
}

func TestRunStopFunction(t *testing.T) {
	script := `
		var rounds = 0;
		function dobet() {
			rounds++;
			if (rounds > 3) {
				stop();
				return;
			}
			nextbet = 1;
		}
	`
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	stats, err := eng.Run(context.Background(), script, 100, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Bets != 3 {
		t.Errorf("bets = %d, want 3 before stop()", stats.Bets)
	}
}

func TestRunScriptSeesState(t *testing.T) {
	script := `
		function dobet() {
			if (bets > 0 && typeof lastpocket !== "number") {
				throw "lastpocket not set";
			}
			if (balance <= 0) {
				throw "balance not synced";
			}
			log("round " + bets + " balance " + balance);
			nextbet = 1;
			bettype = "BLACK";
		}
	`
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	if _, err := eng.Run(context.Background(), script, 100, 5); err != nil {
		t.Fatalf("Run: %v", err)
	}
	logs := eng.Logs()
	if len(logs) != 5 {
		t.Fatalf("%d log entries, want 5", len(logs))
	}
	if !strings.HasPrefix(logs[0].Message, "round 0") {
		t.Errorf("first log = %q", logs[0].Message)
	}
}

func TestRunMartingale(t *testing.T) {
	script := `
		function dobet() {
			if (win) {
				nextbet = 1;
			} else {
				nextbet = previousbet > 0 ? previousbet * 2 : 1;
			}
			bettype = "RED";
		}
	`
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	stats, err := eng.Run(context.Background(), script, 1000, 20)
	if err != nil && err.Error() != "balance exhausted" {
		t.Fatalf("Run: %v", err)
	}
	if stats.HighestBet < 1 {
		t.Errorf("highest bet = %g, want at least the base bet", stats.HighestBet)
	}
}

func TestRunRejectsBadBets(t *testing.T) {
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	if _, err := eng.Run(context.Background(), `function dobet() { nextbet = -5; }`, 100, 10); err == nil {
		t.Error("negative bet should fail")
	}

	eng = NewEngine(NewRouletteSim(testSeeds, 0))
	if _, err := eng.Run(context.Background(), `function dobet() { nextbet = 1e9; }`, 100, 10); err == nil {
		t.Error("bet above balance should fail")
	}
}

func TestRunMissingDoBet(t *testing.T) {
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	if _, err := eng.Run(context.Background(), `var x = 1;`, 100, 10); err == nil {
		t.Error("script without dobet() should fail to load")
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	eng := NewEngine(NewRouletteSim(testSeeds, 0))
	if _, err := eng.Run(ctx, `function dobet() { nextbet = 1; }`, 100, 10); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestRouletteSimPayout(t *testing.T) {
	sim := NewRouletteSim(testSeeds, 0)
	vm := NewVM()
	if err := vm.Load(`function dobet() {}`); err != nil {
		t.Fatal(err)
	}

	pocket := games.SpinPocket(testSeeds, 0)
	vm.Set("bettype", "STRAIGHT")
	vm.Set("number", pocket)

	payout, err := sim.PlayRound(decimal.NewFromInt(1), vm)
	if err != nil {
		t.Fatal(err)
	}
	if !payout.Equal(decimal.NewFromInt(36)) {
		t.Errorf("straight hit payout = %s, want 36", payout)
	}
	if vm.Int("lastpocket") != int(pocket) {
		t.Errorf("lastpocket = %d, want %d", vm.Int("lastpocket"), pocket)
	}
}

func TestRouletteSimUnknownBetType(t *testing.T) {
	sim := NewRouletteSim(testSeeds, 0)
	vm := NewVM()
	if err := vm.Load(`function dobet() {}`); err != nil {
		t.Fatal(err)
	}
	vm.Set("bettype", "SNAKE")
	if _, err := sim.PlayRound(decimal.NewFromInt(1), vm); err == nil {
		t.Error("unknown bet type should fail")
	}
}

func TestBlackjackSimPlaysWholeHands(t *testing.T) {
	sim, err := NewBlackjackSim(1, testSeeds, 0)
	if err != nil {
		t.Fatal(err)
	}
	eng := NewEngine(sim)
	stats, err := eng.Run(context.Background(), `function dobet() { nextbet = 1; }`, 100, 20)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Bets != 20 {
		t.Errorf("bets = %d, want 20", stats.Bets)
	}
}
