package games

import (
	"fmt"

	"github.com/Flapjacck/pbat/internal/engine"
)

const (
	// MaxDecks caps the shoe at the eight decks a casino shoe holds.
	MaxDecks = 8
)

// Shoe is the working set of shuffled decks that blackjack deals from.
// Cards come off the end of the slice. A cut card sits somewhere in the
// bottom quarter-to-half of the shoe; once dealing reaches it, a complete
// fresh shoe is shuffled in before the next card is dealt.
//
// Each shuffle consumes one nonce of the session's seed stream, so the
// exact card order of any shoe is reproducible from (seeds, nonce).
type Shoe struct {
	cards []Card
	decks int
	cut   int
	seeds engine.Seeds
	nonce uint64
}

// NewShoe builds and shuffles a shoe of 1-8 decks at the given nonce.
func NewShoe(decks int, seeds engine.Seeds, nonce uint64) (*Shoe, error) {
	if decks < 1 || decks > MaxDecks {
		return nil, fmt.Errorf("shoe needs between 1 and %d decks, got %d", MaxDecks, decks)
	}
	s := &Shoe{decks: decks, seeds: seeds, nonce: nonce}
	s.shuffle()
	return s, nil
}

// shuffle rebuilds the shoe from fresh decks, Fisher-Yates shuffles it with
// the stream at the current nonce, and places a new cut card between a
// quarter and half of the shoe from the bottom.
func (s *Shoe) shuffle() {
	s.cards = freshDecks(s.decks)
	st := engine.NewStream(s.seeds, s.nonce, 0)
	for i := len(s.cards) - 1; i > 0; i-- {
		j := st.Intn(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	min := len(s.cards) / 4
	max := len(s.cards) / 2
	s.cut = min + st.Intn(max-min+1)
}

// Deal removes and returns the top card. The returned bool reports whether
// the cut card forced a fresh shoe before this card was dealt.
func (s *Shoe) Deal() (Card, bool) {
	fresh := false
	if len(s.cards) <= s.cut {
		s.nonce++
		s.shuffle()
		fresh = true
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, fresh
}

// Remaining returns the number of cards still in the shoe.
func (s *Shoe) Remaining() int { return len(s.cards) }

// CutCard returns the remaining-count threshold that forces a fresh shoe.
func (s *Shoe) CutCard() int { return s.cut }

// Decks returns the configured deck count.
func (s *Shoe) Decks() int { return s.decks }

// Nonce returns the nonce of the current shuffle, for round records.
func (s *Shoe) Nonce() uint64 { return s.nonce }
