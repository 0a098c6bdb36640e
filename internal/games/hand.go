package games

// MaxHandCards is the most cards a blackjack hand can hold.
const MaxHandCards = 10

// Hand accumulates cards for one blackjack participant. Value always
// reflects the best total over every card in the hand; Showing excludes
// hidden cards so the dealer's hole card stays secret until revealed.
type Hand struct {
	Cards   []Card
	Value   int
	Doubled bool
	Bust    bool
	Natural bool
	Stood   bool
	Name    string
}

// NewHand returns an empty hand owned by name.
func NewHand(name string) *Hand {
	return &Hand{Name: name, Cards: make([]Card, 0, MaxHandCards)}
}

// Add appends a card and rescores the hand.
func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
	h.rescore()
}

// rescore recomputes the best total, dropping aces from 11 to 1 while the
// total would bust.
func (h *Hand) rescore() {
	h.Value = scoreCards(h.Cards, false)
	h.Bust = h.Value > 21
	h.Natural = len(h.Cards) == 2 && h.Value == 21
}

// Showing returns the total over visible cards only.
func (h *Hand) Showing() int {
	return scoreCards(h.Cards, true)
}

// HasHidden reports whether any card in the hand is face down.
func (h *Hand) HasHidden() bool {
	for _, c := range h.Cards {
		if c.Hidden {
			return true
		}
	}
	return false
}

// Reveal turns every card face up.
func (h *Hand) Reveal() {
	for i := range h.Cards {
		h.Cards[i].Hidden = false
	}
}

// Upcard returns the dealer's visible second card, if dealt.
func (h *Hand) Upcard() (Card, bool) {
	if len(h.Cards) < 2 {
		return Card{}, false
	}
	return h.Cards[1], true
}

func scoreCards(cards []Card, visibleOnly bool) int {
	total := 0
	aces := 0
	for _, c := range cards {
		if visibleOnly && c.Hidden {
			continue
		}
		total += c.Value
		if c.Ace {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
