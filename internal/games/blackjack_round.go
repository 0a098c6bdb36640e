package games

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Phase tracks where a blackjack round is in its turn sequence.
type Phase int

const (
	PhaseInsurance Phase = iota
	PhasePlayer
	PhaseDealer
	PhaseSettled
)

// RoundResult is who took the round.
type RoundResult string

const (
	ResultPlayerWin RoundResult = "player"
	ResultDealerWin RoundResult = "dealer"
	ResultPush      RoundResult = "push"
)

const (
	// Dealer draws to 16 and stands on all 17s.
	dealerStandsOn = 17
	// Reaching six cards without busting wins outright at 2:1.
	sixCardCharlie = 6
)

var (
	ErrWrongPhase   = errors.New("action not valid in current phase")
	ErrHandFull     = errors.New("hand already holds the maximum number of cards")
	ErrCannotDouble = errors.New("double down only allowed on the first two cards")
)

// Settlement is the resolved money movement for a round. Credit is the full
// amount returned to the bankroll; the bet was debited when the round began.
type Settlement struct {
	Result  RoundResult
	Credit  decimal.Decimal
	Charlie bool
	Reason  string
}

// BlackjackRound runs one hand of blackjack against the dealer. The dealer's
// first card is dealt face down and stays hidden until the dealer's turn.
type BlackjackRound struct {
	shoe   *Shoe
	Player *Hand
	Dealer *Hand

	Bet            decimal.Decimal
	InsuranceTaken bool
	InsuranceNet   decimal.Decimal

	// FreshShoe records whether the cut card forced a new shoe mid-deal.
	FreshShoe bool
	// ShoeNonce identifies the shuffle this round dealt from.
	ShoeNonce uint64

	phase Phase
}

// NewBlackjackRound deals the opening hands for an already-debited bet.
func NewBlackjackRound(shoe *Shoe, bet decimal.Decimal) *BlackjackRound {
	r := &BlackjackRound{
		shoe:      shoe,
		Player:    NewHand("Player"),
		Dealer:    NewHand("Dealer"),
		Bet:       bet,
		ShoeNonce: shoe.Nonce(),
	}

	first, fresh := shoe.Deal()
	r.FreshShoe = fresh
	r.Player.Add(first)

	hole, fresh := shoe.Deal()
	r.FreshShoe = r.FreshShoe || fresh
	hole.Hidden = true
	r.Dealer.Add(hole)

	second, fresh := shoe.Deal()
	r.FreshShoe = r.FreshShoe || fresh
	r.Player.Add(second)

	up, fresh := shoe.Deal()
	r.FreshShoe = r.FreshShoe || fresh
	r.Dealer.Add(up)

	if r.InsuranceAvailable() {
		r.phase = PhaseInsurance
	} else {
		r.afterInsurance()
	}
	return r
}

// Phase returns the round's current phase.
func (r *BlackjackRound) Phase() Phase { return r.phase }

// InsuranceAvailable reports whether the dealer's upcard is an ace.
func (r *BlackjackRound) InsuranceAvailable() bool {
	up, ok := r.Dealer.Upcard()
	return ok && up.Ace
}

// InsuranceCost is half the original bet.
func (r *BlackjackRound) InsuranceCost() decimal.Decimal {
	return r.Bet.Div(decTwo)
}

// ResolveInsurance settles the insurance side bet (2:1 on a dealer natural)
// and returns the net amount to apply to the bankroll. Declining still peeks
// at the hole card so a dealer natural ends the round immediately.
func (r *BlackjackRound) ResolveInsurance(take bool) (decimal.Decimal, error) {
	if r.phase != PhaseInsurance {
		return decimal.Zero, ErrWrongPhase
	}
	net := decimal.Zero
	dealerNatural := r.Dealer.Natural
	if take {
		r.InsuranceTaken = true
		cost := r.InsuranceCost()
		if dealerNatural {
			net = cost.Mul(decTwo)
		} else {
			net = cost.Neg()
		}
	}
	r.InsuranceNet = net
	r.afterInsurance()
	return net, nil
}

// afterInsurance advances past the insurance phase, short-circuiting to
// settlement when either opening hand is a natural.
func (r *BlackjackRound) afterInsurance() {
	if r.Player.Natural || r.Dealer.Natural {
		r.Dealer.Reveal()
		r.phase = PhaseSettled
		return
	}
	r.phase = PhasePlayer
}

// CanDouble reports whether doubling down is allowed: first two cards only,
// and the bankroll must cover a second bet.
func (r *BlackjackRound) CanDouble(bankroll decimal.Decimal) bool {
	return r.phase == PhasePlayer &&
		len(r.Player.Cards) == 2 &&
		bankroll.GreaterThanOrEqual(r.Bet)
}

// Hit deals the player one card. Busting or reaching six cards ends the turn.
func (r *BlackjackRound) Hit() (Card, error) {
	if r.phase != PhasePlayer {
		return Card{}, ErrWrongPhase
	}
	if len(r.Player.Cards) >= MaxHandCards {
		return Card{}, ErrHandFull
	}
	card, fresh := r.shoe.Deal()
	r.FreshShoe = r.FreshShoe || fresh
	r.Player.Add(card)

	if r.Player.Bust {
		r.Player.Stood = true
		r.phase = PhaseDealer
	} else if len(r.Player.Cards) == sixCardCharlie {
		r.Player.Stood = true
		r.phase = PhaseDealer
	}
	return card, nil
}

// Stand ends the player's turn.
func (r *BlackjackRound) Stand() error {
	if r.phase != PhasePlayer {
		return ErrWrongPhase
	}
	r.Player.Stood = true
	r.phase = PhaseDealer
	return nil
}

// Double doubles the bet (the extra stake must already be debited), deals
// exactly one card and ends the player's turn.
func (r *BlackjackRound) Double() (Card, error) {
	if r.phase != PhasePlayer {
		return Card{}, ErrWrongPhase
	}
	if len(r.Player.Cards) != 2 {
		return Card{}, ErrCannotDouble
	}
	card, fresh := r.shoe.Deal()
	r.FreshShoe = r.FreshShoe || fresh
	r.Player.Add(card)
	r.Player.Doubled = true
	r.Player.Stood = true
	r.Bet = r.Bet.Mul(decTwo)
	r.phase = PhaseDealer
	return card, nil
}

// PlayDealer reveals the hole card and draws to 17. The dealer does not draw
// when the player already busted. Returns the cards drawn.
func (r *BlackjackRound) PlayDealer() ([]Card, error) {
	if r.phase != PhaseDealer {
		return nil, ErrWrongPhase
	}
	r.Dealer.Reveal()

	var drawn []Card
	if !r.Player.Bust {
		for r.Dealer.Value < dealerStandsOn {
			card, fresh := r.shoe.Deal()
			r.FreshShoe = r.FreshShoe || fresh
			r.Dealer.Add(card)
			drawn = append(drawn, card)
		}
	}
	r.phase = PhaseSettled
	return drawn, nil
}

// Settle resolves the round and returns the bankroll credit. Insurance is
// not included; it was applied when resolved.
func (r *BlackjackRound) Settle() (Settlement, error) {
	if r.phase != PhaseSettled {
		return Settlement{}, ErrWrongPhase
	}

	win := r.Bet.Mul(decTwo)
	push := r.Bet

	switch {
	case r.Player.Natural && r.Dealer.Natural:
		return Settlement{Result: ResultPush, Credit: push, Reason: "both have blackjack"}, nil
	case r.Player.Natural:
		return Settlement{Result: ResultPlayerWin, Credit: r.Bet.Add(r.Bet.Mul(naturalPayout)), Reason: "blackjack pays 3:2"}, nil
	case r.Dealer.Natural:
		return Settlement{Result: ResultDealerWin, Credit: decimal.Zero, Reason: "dealer blackjack"}, nil
	case r.Player.Bust:
		return Settlement{Result: ResultDealerWin, Credit: decimal.Zero, Reason: "player busts"}, nil
	case r.Dealer.Bust:
		if len(r.Player.Cards) >= sixCardCharlie {
			return Settlement{Result: ResultPlayerWin, Credit: r.Bet.Mul(decThree), Charlie: true, Reason: "six-card charlie pays 2:1"}, nil
		}
		return Settlement{Result: ResultPlayerWin, Credit: win, Reason: "dealer busts"}, nil
	case len(r.Player.Cards) >= sixCardCharlie:
		return Settlement{Result: ResultPlayerWin, Credit: r.Bet.Mul(decThree), Charlie: true, Reason: "six-card charlie pays 2:1"}, nil
	case r.Player.Value > r.Dealer.Value:
		return Settlement{Result: ResultPlayerWin, Credit: win, Reason: "player outscores dealer"}, nil
	case r.Player.Value < r.Dealer.Value:
		return Settlement{Result: ResultDealerWin, Credit: decimal.Zero, Reason: "dealer outscores player"}, nil
	default:
		return Settlement{Result: ResultPush, Credit: push, Reason: "push"}, nil
	}
}
