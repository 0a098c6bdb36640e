package games

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Flapjacck/pbat/internal/engine"
)

// BlackjackGame exposes blackjack to the registry and the verify endpoint.
// Replaying a nonce reconstructs the shoe shuffled at that nonce and the
// initial deal that came off the top of it.
type BlackjackGame struct{}

// Spec returns metadata about the Blackjack game.
func (g *BlackjackGame) Spec() GameSpec {
	return GameSpec{
		ID:          "blackjack",
		Name:        "Blackjack",
		MetricLabel: "player_value",
	}
}

// Replay rebuilds the shoe for (seeds, nonce) and deals the opening hands in
// casino order: player, dealer, player, dealer.
func (g *BlackjackGame) Replay(seeds engine.Seeds, nonce uint64, params map[string]any) (Outcome, error) {
	decks := 1
	if v, ok := params["decks"]; ok {
		f, ok := v.(float64)
		if !ok {
			return Outcome{}, fmt.Errorf("decks must be a number, got %T", v)
		}
		decks = int(f)
	}

	shoe, err := NewShoe(decks, seeds, nonce)
	if err != nil {
		return Outcome{}, err
	}

	player := NewHand("Player")
	dealer := NewHand("Dealer")
	dealOpeningHands(shoe, player, dealer)
	dealer.Reveal()

	return Outcome{
		Metric:      float64(player.Value),
		MetricLabel: "player_value",
		Details: map[string]any{
			"decks":            decks,
			"cut_card":         shoe.CutCard(),
			"player_cards":     cardStrings(player.Cards),
			"dealer_cards":     cardStrings(dealer.Cards),
			"player_value":     player.Value,
			"dealer_value":     dealer.Value,
			"player_blackjack": player.Natural,
			"dealer_blackjack": dealer.Natural,
		},
	}, nil
}

// dealOpeningHands deals two cards each, the dealer's first face down.
func dealOpeningHands(shoe *Shoe, player, dealer *Hand) {
	first, _ := shoe.Deal()
	player.Add(first)

	hole, _ := shoe.Deal()
	hole.Hidden = true
	dealer.Add(hole)

	second, _ := shoe.Deal()
	player.Add(second)

	up, _ := shoe.Deal()
	dealer.Add(up)
}

func cardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// Blackjack payout arithmetic uses decimals so the 3:2 natural payout never
// loses cents to integer truncation.
var (
	decTwo        = decimal.NewFromInt(2)
	decThree      = decimal.NewFromInt(3)
	naturalPayout = decThree.Div(decTwo) // 3:2 on the bet
)
