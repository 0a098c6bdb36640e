package games

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWheelLayout(t *testing.T) {
	seen := map[int]bool{}
	sum := 0
	for _, n := range wheelNumbers {
		if n < 0 || n > 36 {
			t.Errorf("pocket %d out of range", n)
		}
		if seen[n] {
			t.Errorf("pocket %d appears twice on the wheel", n)
		}
		seen[n] = true
		sum += n
	}
	if len(seen) != 37 {
		t.Errorf("wheel has %d distinct pockets, want 37", len(seen))
	}
	if sum != 666 {
		t.Errorf("wheel sum = %d, want 666", sum)
	}
}

func TestPocketColor(t *testing.T) {
	if got := PocketColor(0); got != "green" {
		t.Errorf("PocketColor(0) = %q, want green", got)
	}
	reds := 0
	for n := 1; n <= 36; n++ {
		switch PocketColor(n) {
		case "red":
			reds++
		case "black":
		default:
			t.Errorf("PocketColor(%d) = %q", n, PocketColor(n))
		}
	}
	if reds != 18 {
		t.Errorf("%d red pockets, want 18", reds)
	}
	if PocketColor(32) != "red" || PocketColor(15) != "black" {
		t.Error("32 should be red and 15 black")
	}
}

func TestWheelNeighbors(t *testing.T) {
	n := WheelNeighbors(0, 2)
	want := []int{3, 26, 0, 32, 15}
	if len(n) != len(want) {
		t.Fatalf("neighbors = %v, want %v", n, want)
	}
	for i := range want {
		if n[i] != want[i] {
			t.Errorf("neighbors = %v, want %v", n, want)
			break
		}
	}
	if WheelNeighbors(99, 2) != nil {
		t.Error("unknown pocket should have no neighbors")
	}
}

func TestBetWins(t *testing.T) {
	tests := []struct {
		name    string
		bet     RouletteBet
		winning int
		want    bool
	}{
		{"straight hit", RouletteBet{Kind: BetStraight, Number: 17}, 17, true},
		{"straight miss", RouletteBet{Kind: BetStraight, Number: 17}, 18, false},
		{"straight zero", RouletteBet{Kind: BetStraight, Number: 0}, 0, true},
		{"red hit", RouletteBet{Kind: BetRed}, 32, true},
		{"red miss", RouletteBet{Kind: BetRed}, 15, false},
		{"black hit", RouletteBet{Kind: BetBlack}, 15, true},
		{"even hit", RouletteBet{Kind: BetEven}, 4, true},
		{"even excludes zero", RouletteBet{Kind: BetEven}, 0, false},
		{"odd hit", RouletteBet{Kind: BetOdd}, 7, true},
		{"low hit", RouletteBet{Kind: BetLow}, 18, true},
		{"low excludes zero", RouletteBet{Kind: BetLow}, 0, false},
		{"high hit", RouletteBet{Kind: BetHigh}, 19, true},
		{"high miss", RouletteBet{Kind: BetHigh}, 18, false},
		{"first dozen", RouletteBet{Kind: BetFirstDozen}, 12, true},
		{"second dozen", RouletteBet{Kind: BetSecondDozen}, 13, true},
		{"third dozen", RouletteBet{Kind: BetThirdDozen}, 36, true},
		{"dozen excludes zero", RouletteBet{Kind: BetFirstDozen}, 0, false},
		{"first column", RouletteBet{Kind: BetFirstColumn}, 34, true},
		{"second column", RouletteBet{Kind: BetSecondColumn}, 35, true},
		{"third column", RouletteBet{Kind: BetThirdColumn}, 36, true},
		{"column excludes zero", RouletteBet{Kind: BetThirdColumn}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bet.Wins(tt.winning); got != tt.want {
				t.Errorf("Wins(%d) = %v, want %v", tt.winning, got, tt.want)
			}
		})
	}
}

func TestBetPayout(t *testing.T) {
	ten := decimal.NewFromInt(10)
	tests := []struct {
		name    string
		bet     RouletteBet
		winning int
		want    int64
	}{
		{"straight pays 35 to 1", RouletteBet{Kind: BetStraight, Number: 7, Amount: ten}, 7, 360},
		{"even money pays 1 to 1", RouletteBet{Kind: BetRed, Amount: ten}, 32, 20},
		{"dozen pays 2 to 1", RouletteBet{Kind: BetSecondDozen, Amount: ten}, 20, 30},
		{"column pays 2 to 1", RouletteBet{Kind: BetFirstColumn, Amount: ten}, 1, 30},
		{"losing bet pays nothing", RouletteBet{Kind: BetRed, Amount: ten}, 15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bet.Payout(tt.winning); !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("Payout(%d) = %s, want %d", tt.winning, got, tt.want)
			}
		})
	}
}

func TestParseBetKind(t *testing.T) {
	for kind, name := range betKindNames {
		got, err := ParseBetKind(name)
		if err != nil {
			t.Errorf("ParseBetKind(%q): %v", name, err)
		}
		if got != kind {
			t.Errorf("ParseBetKind(%q) = %v, want %v", name, got, kind)
		}
	}
	if _, err := ParseBetKind("SNAKE"); err == nil {
		t.Error("unknown bet name should fail")
	}
}

func TestSpinPocketRangeAndDeterminism(t *testing.T) {
	for nonce := uint64(0); nonce < 200; nonce++ {
		p := SpinPocket(testSeeds, nonce)
		if p < 0 || p > 36 {
			t.Fatalf("nonce %d: pocket %d out of range", nonce, p)
		}
		if p != SpinPocket(testSeeds, nonce) {
			t.Fatalf("nonce %d: spin is not deterministic", nonce)
		}
	}
}

func TestPlaceBetValidation(t *testing.T) {
	table := NewRouletteTable(decimal.NewFromInt(100), testSeeds, 0)

	if err := table.PlaceBet(BetStraight, 37, decimal.NewFromInt(1)); err == nil {
		t.Error("straight bet on 37 should fail")
	}
	if err := table.PlaceBet(BetRed, 0, decimal.NewFromInt(101)); err != ErrChipsShort {
		t.Errorf("oversized bet error = %v, want ErrChipsShort", err)
	}
	if err := table.PlaceBet(BetRed, 0, decimal.Zero); err == nil {
		t.Error("zero bet should fail")
	}

	for i := 0; i < MaxRouletteBets; i++ {
		if err := table.PlaceBet(BetRed, 0, decimal.NewFromInt(1)); err != nil {
			t.Fatalf("bet %d: %v", i, err)
		}
	}
	if err := table.PlaceBet(BetRed, 0, decimal.NewFromInt(1)); err != ErrTableFull {
		t.Errorf("11th bet error = %v, want ErrTableFull", err)
	}
}

func TestClearBetsRefunds(t *testing.T) {
	table := NewRouletteTable(decimal.NewFromInt(100), testSeeds, 0)
	table.PlaceBet(BetRed, 0, decimal.NewFromInt(30))
	table.PlaceBet(BetStraight, 7, decimal.NewFromInt(20))

	if !table.Chips.Equal(decimal.NewFromInt(50)) {
		t.Errorf("chips after betting = %s, want 50", table.Chips)
	}
	if !table.Staked().Equal(decimal.NewFromInt(50)) {
		t.Errorf("staked = %s, want 50", table.Staked())
	}
	table.ClearBets()
	if !table.Chips.Equal(decimal.NewFromInt(100)) {
		t.Errorf("chips after clear = %s, want 100", table.Chips)
	}
	if len(table.Bets) != 0 {
		t.Errorf("%d bets left on the felt, want 0", len(table.Bets))
	}
}

func TestSpinSettlesAndClears(t *testing.T) {
	table := NewRouletteTable(decimal.NewFromInt(100), testSeeds, 0)

	if _, err := table.Spin(); err != ErrNoBets {
		t.Errorf("spin without bets error = %v, want ErrNoBets", err)
	}

	pocket := SpinPocket(testSeeds, 0)
	table.PlaceBet(BetStraight, pocket, decimal.NewFromInt(1))
	table.PlaceBet(BetStraight, (pocket+1)%37, decimal.NewFromInt(1))

	res, err := table.Spin()
	if err != nil {
		t.Fatal(err)
	}
	if res.Pocket != pocket {
		t.Errorf("pocket = %d, want %d", res.Pocket, pocket)
	}
	if !res.TotalWon.Equal(decimal.NewFromInt(36)) {
		t.Errorf("total won = %s, want 36", res.TotalWon)
	}
	if len(res.Winners) != 1 {
		t.Errorf("%d winning bets, want 1", len(res.Winners))
	}
	// 100 - 2 staked + 36 back.
	if !table.Chips.Equal(decimal.NewFromInt(134)) {
		t.Errorf("chips = %s, want 134", table.Chips)
	}
	if len(table.Bets) != 0 {
		t.Error("felt should be clear after a spin")
	}
	if table.Nonce() != 1 {
		t.Errorf("nonce = %d, want 1", table.Nonce())
	}
	if len(table.History) != 1 || table.History[0] != pocket {
		t.Errorf("history = %v, want [%d]", table.History, pocket)
	}
}

func TestHistoryWindow(t *testing.T) {
	table := NewRouletteTable(decimal.NewFromInt(1000), testSeeds, 0)
	for i := 0; i < SpinHistorySize+5; i++ {
		table.PlaceBet(BetRed, 0, decimal.NewFromInt(1))
		if _, err := table.Spin(); err != nil {
			t.Fatal(err)
		}
	}
	if len(table.History) != SpinHistorySize {
		t.Fatalf("history length = %d, want %d", len(table.History), SpinHistorySize)
	}
	// The newest entry is the most recent spin's pocket.
	want := SpinPocket(testSeeds, uint64(SpinHistorySize+4))
	if got := table.History[len(table.History)-1]; got != want {
		t.Errorf("newest history entry = %d, want %d", got, want)
	}
}

func TestRouletteReplay(t *testing.T) {
	g := &RouletteGame{}
	out, err := g.Replay(testSeeds, 12, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := SpinPocket(testSeeds, 12)
	if int(out.Metric) != want {
		t.Errorf("metric = %g, want %d", out.Metric, want)
	}
	if out.Details["color"] != PocketColor(want) {
		t.Errorf("color = %v, want %s", out.Details["color"], PocketColor(want))
	}
}
