package games

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/engine"
)

// Bankroll limits match the cabinet's start screen: $100 to $10,000 in $100
// steps, defaulting to $500.
var (
	MinBankroll     = decimal.NewFromInt(100)
	MaxBankroll     = decimal.NewFromInt(10000)
	DefaultBankroll = decimal.NewFromInt(500)
	BankrollStep    = decimal.NewFromInt(100)

	minBetIncrement = decimal.NewFromInt(5)
	betPercent      = decimal.NewFromInt(5).Div(decimal.NewFromInt(100))
)

var ErrBankrollShort = errors.New("bankroll does not cover the bet")

// BlackjackTable owns the shoe and the bankroll across rounds of a session.
type BlackjackTable struct {
	Shoe     *Shoe
	Bankroll decimal.Decimal
}

// NewBlackjackTable shuffles a fresh shoe at the given nonce.
func NewBlackjackTable(decks int, bankroll decimal.Decimal, seeds engine.Seeds, nonce uint64) (*BlackjackTable, error) {
	if bankroll.LessThan(MinBankroll) || bankroll.GreaterThan(MaxBankroll) {
		return nil, fmt.Errorf("bankroll must be between $%s and $%s", MinBankroll, MaxBankroll)
	}
	shoe, err := NewShoe(decks, seeds, nonce)
	if err != nil {
		return nil, err
	}
	return &BlackjackTable{Shoe: shoe, Bankroll: bankroll}, nil
}

// BetIncrement is 5% of the current bankroll, never less than $5.
func (t *BlackjackTable) BetIncrement() decimal.Decimal {
	inc := t.Bankroll.Mul(betPercent).RoundDown(0)
	if inc.LessThan(minBetIncrement) {
		inc = minBetIncrement
	}
	return inc
}

// StartRound debits the bet and deals a new round.
func (t *BlackjackTable) StartRound(bet decimal.Decimal) (*BlackjackRound, error) {
	if bet.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("bet must be positive")
	}
	if bet.GreaterThan(t.Bankroll) {
		return nil, ErrBankrollShort
	}
	t.Bankroll = t.Bankroll.Sub(bet)
	return NewBlackjackRound(t.Shoe, bet), nil
}

// ResolveInsurance applies the insurance side bet's net result to the bankroll.
func (t *BlackjackTable) ResolveInsurance(r *BlackjackRound, take bool) (decimal.Decimal, error) {
	net, err := r.ResolveInsurance(take)
	if err != nil {
		return decimal.Zero, err
	}
	t.Bankroll = t.Bankroll.Add(net)
	return net, nil
}

// DoubleDown debits the second stake and doubles the round's bet.
func (t *BlackjackTable) DoubleDown(r *BlackjackRound) (Card, error) {
	if !r.CanDouble(t.Bankroll) {
		return Card{}, ErrCannotDouble
	}
	stake := r.Bet
	card, err := r.Double()
	if err != nil {
		return Card{}, err
	}
	t.Bankroll = t.Bankroll.Sub(stake)
	return card, nil
}

// Finish settles the round and credits the bankroll.
func (t *BlackjackTable) Finish(r *BlackjackRound) (Settlement, error) {
	s, err := r.Settle()
	if err != nil {
		return Settlement{}, err
	}
	t.Bankroll = t.Bankroll.Add(s.Credit)
	return s, nil
}

// Broke reports whether the table's bankroll is exhausted.
func (t *BlackjackTable) Broke() bool {
	return t.Bankroll.LessThanOrEqual(decimal.Zero)
}
