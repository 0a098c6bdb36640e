package games

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/engine"
)

const (
	// MaxRouletteBets caps the bets on the felt at once.
	MaxRouletteBets = 10
	// SpinHistorySize is how many past winning pockets the table remembers.
	SpinHistorySize = 15
)

// StartingChips is the default roulette buy-in.
var StartingChips = decimal.NewFromInt(100)

var (
	ErrTableFull  = errors.New("no room for another bet")
	ErrNoBets     = errors.New("place at least one bet first")
	ErrChipsShort = errors.New("not enough chips for that bet")
)

// SpinResult is the settled outcome of one wheel spin.
type SpinResult struct {
	Nonce    uint64
	Pocket   int
	Color    string
	TotalWon decimal.Decimal
	Winners  []RouletteBet
}

// RouletteTable tracks chips, the bets on the felt and recent history for
// one session. Chips come off the balance when a bet is placed; clearing
// the felt refunds them.
type RouletteTable struct {
	Chips   decimal.Decimal
	Bets    []RouletteBet
	History []int

	seeds engine.Seeds
	nonce uint64
}

// NewRouletteTable opens a table with a chip balance and a seed stream
// positioned at the given nonce.
func NewRouletteTable(chips decimal.Decimal, seeds engine.Seeds, nonce uint64) *RouletteTable {
	return &RouletteTable{
		Chips:   chips,
		Bets:    make([]RouletteBet, 0, MaxRouletteBets),
		History: make([]int, 0, SpinHistorySize),
		seeds:   seeds,
		nonce:   nonce,
	}
}

// PlaceBet stakes chips on a bet and adds it to the felt.
func (t *RouletteTable) PlaceBet(kind BetKind, number int, amount decimal.Decimal) error {
	if len(t.Bets) >= MaxRouletteBets {
		return ErrTableFull
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("bet must be positive")
	}
	if amount.GreaterThan(t.Chips) {
		return ErrChipsShort
	}
	if kind == BetStraight && (number < 0 || number > 36) {
		return fmt.Errorf("straight bet number must be 0-36, got %d", number)
	}
	t.Chips = t.Chips.Sub(amount)
	t.Bets = append(t.Bets, RouletteBet{Kind: kind, Number: number, Amount: amount})
	return nil
}

// ClearBets refunds every staked chip and empties the felt.
func (t *RouletteTable) ClearBets() {
	for _, b := range t.Bets {
		t.Chips = t.Chips.Add(b.Amount)
	}
	t.Bets = t.Bets[:0]
}

// Spin draws the winning pocket at the next nonce, credits winning bets and
// clears the felt.
func (t *RouletteTable) Spin() (SpinResult, error) {
	if len(t.Bets) == 0 {
		return SpinResult{}, ErrNoBets
	}

	nonce := t.nonce
	t.nonce++
	pocket := SpinPocket(t.seeds, nonce)

	res := SpinResult{
		Nonce:    nonce,
		Pocket:   pocket,
		Color:    PocketColor(pocket),
		TotalWon: decimal.Zero,
	}
	for _, b := range t.Bets {
		if payout := b.Payout(pocket); payout.IsPositive() {
			res.TotalWon = res.TotalWon.Add(payout)
			res.Winners = append(res.Winners, b)
		}
	}
	t.Chips = t.Chips.Add(res.TotalWon)
	t.Bets = t.Bets[:0]
	t.pushHistory(pocket)
	return res, nil
}

// pushHistory keeps a rolling window of the last SpinHistorySize pockets.
func (t *RouletteTable) pushHistory(pocket int) {
	if len(t.History) >= SpinHistorySize {
		copy(t.History, t.History[1:])
		t.History[len(t.History)-1] = pocket
		return
	}
	t.History = append(t.History, pocket)
}

// Staked returns the total amount currently on the felt.
func (t *RouletteTable) Staked() decimal.Decimal {
	total := decimal.Zero
	for _, b := range t.Bets {
		total = total.Add(b.Amount)
	}
	return total
}

// Broke reports whether the chips are gone with nothing on the felt.
func (t *RouletteTable) Broke() bool {
	return len(t.Bets) == 0 && t.Chips.LessThanOrEqual(decimal.Zero)
}

// Nonce returns the nonce the next spin will use.
func (t *RouletteTable) Nonce() uint64 { return t.nonce }
