package games

// Card is a single playing card. Value is the blackjack point value; aces
// start soft at 11 and are revalued to 1 by hand scoring when needed.
// Hidden cards render face down and are excluded from a hand's shown total.
type Card struct {
	Face   string `json:"face"`
	Suit   string `json:"suit"`
	Glyph  string `json:"glyph"`
	Value  int    `json:"value"`
	Ace    bool   `json:"ace"`
	Hidden bool   `json:"hidden"`
}

// String returns a short form like "A♠" or "10♦".
func (c Card) String() string {
	return c.Glyph + suitSymbols[c.Suit]
}

// Longform returns "Ace of Spades" style text.
func (c Card) Longform() string {
	return c.Face + " of " + c.Suit
}

const CardsPerDeck = 52

var cardFaces = []string{
	"Ace", "Two", "Three", "Four", "Five", "Six",
	"Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var cardGlyphs = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var cardSuits = []string{"Spades", "Hearts", "Clubs", "Diamonds"}

var suitSymbols = map[string]string{
	"Spades": "♠", "Hearts": "♥", "Clubs": "♣", "Diamonds": "♦",
}

// newCard builds the card for a face index (0=Ace .. 12=King) and suit index.
func newCard(face, suit int) Card {
	c := Card{
		Face:  cardFaces[face],
		Suit:  cardSuits[suit],
		Glyph: cardGlyphs[face],
	}
	switch {
	case face == 0:
		c.Value = 11
		c.Ace = true
	case face >= 10:
		c.Value = 10
	default:
		c.Value = face + 1
	}
	return c
}

// freshDecks returns count unshuffled 52-card decks in face-major order.
func freshDecks(count int) []Card {
	cards := make([]Card, 0, count*CardsPerDeck)
	for d := 0; d < count; d++ {
		for f := range cardFaces {
			for s := range cardSuits {
				cards = append(cards, newCard(f, s))
			}
		}
	}
	return cards
}

// IsRedSuit reports whether the card renders in red.
func (c Card) IsRedSuit() bool {
	return c.Suit == "Hearts" || c.Suit == "Diamonds"
}
