package games

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BetKind enumerates the table bets the cabinet offers.
type BetKind int

const (
	BetStraight BetKind = iota
	BetRed
	BetBlack
	BetEven
	BetOdd
	BetLow
	BetHigh
	BetFirstDozen
	BetSecondDozen
	BetThirdDozen
	BetFirstColumn
	BetSecondColumn
	BetThirdColumn
)

var betKindNames = map[BetKind]string{
	BetStraight:     "STRAIGHT",
	BetRed:          "RED",
	BetBlack:        "BLACK",
	BetEven:         "EVEN",
	BetOdd:          "ODD",
	BetLow:          "LOW",
	BetHigh:         "HIGH",
	BetFirstDozen:   "1ST12",
	BetSecondDozen:  "2ND12",
	BetThirdDozen:   "3RD12",
	BetFirstColumn:  "1COL",
	BetSecondColumn: "2COL",
	BetThirdColumn:  "3COL",
}

func (k BetKind) String() string {
	if name, ok := betKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("BetKind(%d)", int(k))
}

// ParseBetKind resolves a bet-type name like "RED" or "1ST12".
func ParseBetKind(name string) (BetKind, error) {
	for k, n := range betKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown bet type %q", name)
}

// payoutMultiplier is the total returned per unit staked on a winning bet,
// stake included: straight 36x (35:1), even-money 2x, dozens/columns 3x.
func (k BetKind) payoutMultiplier() decimal.Decimal {
	switch k {
	case BetStraight:
		return decimal.NewFromInt(36)
	case BetFirstDozen, BetSecondDozen, BetThirdDozen,
		BetFirstColumn, BetSecondColumn, BetThirdColumn:
		return decThree
	default:
		return decTwo
	}
}

// RouletteBet is one placed bet. Number is only meaningful for straight bets.
type RouletteBet struct {
	Kind   BetKind
	Number int
	Amount decimal.Decimal
}

// Wins reports whether the bet covers the winning pocket. Zero loses every
// outside bet.
func (b RouletteBet) Wins(winning int) bool {
	switch b.Kind {
	case BetStraight:
		return b.Number == winning
	case BetRed:
		return PocketColor(winning) == "red"
	case BetBlack:
		return PocketColor(winning) == "black"
	case BetEven:
		return winning > 0 && winning%2 == 0
	case BetOdd:
		return winning > 0 && winning%2 == 1
	case BetLow:
		return winning >= 1 && winning <= 18
	case BetHigh:
		return winning >= 19 && winning <= 36
	case BetFirstDozen:
		return winning >= 1 && winning <= 12
	case BetSecondDozen:
		return winning >= 13 && winning <= 24
	case BetThirdDozen:
		return winning >= 25 && winning <= 36
	case BetFirstColumn:
		return winning > 0 && winning%3 == 1
	case BetSecondColumn:
		return winning > 0 && winning%3 == 2
	case BetThirdColumn:
		return winning > 0 && winning%3 == 0
	default:
		return false
	}
}

// Payout returns the amount credited for the winning pocket, stake included.
// Losing bets return zero.
func (b RouletteBet) Payout(winning int) decimal.Decimal {
	if !b.Wins(winning) {
		return decimal.Zero
	}
	return b.Amount.Mul(b.Kind.payoutMultiplier())
}

// Label renders the bet for display, e.g. "STRAIGHT 17" or "RED".
func (b RouletteBet) Label() string {
	if b.Kind == BetStraight {
		return fmt.Sprintf("%s %d", b.Kind, b.Number)
	}
	return b.Kind.String()
}
