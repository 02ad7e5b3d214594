package game

import (
	"errors"
	"math/rand"
)

// Deck geometry of the 36-card Jass deck.
const (
	NumSuits     = 4
	CardsPerSuit = 9
	MinRank      = 6
	DeckSize     = NumSuits * CardsPerSuit
)

// ErrEmptyDeck is returned by Draw on an exhausted deck. Correct play draws
// exactly 36 cards over a round, so a well-behaved caller never sees it, but
// the path is guarded rather than relied on.
var ErrEmptyDeck = errors.New("draw from empty deck")

// Deck is an ordered draw pile holding every suit x rank combination exactly
// once. Cards are drawn from the tail.
type Deck struct {
	cards []Card
}

// NewDeck builds the full 36-card deck and shuffles it with rng. A nil rng
// leaves the deck in enumeration order for deterministic tests (Rose:14 is
// then the first card drawn).
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := uint8(MinRank); rank < MinRank+CardsPerSuit; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	if rng != nil {
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
	}

	return &Deck{cards: cards}
}

// Draw removes and returns the last card of the pile.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Size returns the number of cards left in the pile.
func (d *Deck) Size() int {
	return len(d.cards)
}
