package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewDeck_FullComposition(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(42)))

	if deck.Size() != DeckSize {
		t.Fatalf("deck has %d cards, want %d", deck.Size(), DeckSize)
	}

	seen := make(map[Card]int)
	for i := 0; i < DeckSize; i++ {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		seen[card]++
	}

	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := uint8(MinRank); rank < MinRank+CardsPerSuit; rank++ {
			if seen[Card{suit, rank}] != 1 {
				t.Errorf("card %s appears %d times, want 1", Card{suit, rank}, seen[Card{suit, rank}])
			}
		}
	}
}

func TestDeck_DrawOrderUnshuffled(t *testing.T) {
	deck := NewDeck(nil)

	// Enumeration order ends with Rose:14, and draws come from the tail.
	card, err := deck.Draw()
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if card != (Card{Rose, 14}) {
		t.Errorf("first draw = %s, want Rose:14", card)
	}
}

func TestDeck_SizeTracksDraws(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(7)))

	for drawn := 0; drawn < DeckSize; drawn++ {
		if deck.Size()+drawn != DeckSize {
			t.Fatalf("size %d + drawn %d != %d", deck.Size(), drawn, DeckSize)
		}
		if _, err := deck.Draw(); err != nil {
			t.Fatalf("draw %d failed: %v", drawn, err)
		}
	}
	if deck.Size() != 0 {
		t.Errorf("deck size = %d after 36 draws, want 0", deck.Size())
	}
}

func TestDeck_DrawEmpty(t *testing.T) {
	deck := NewDeck(nil)
	for i := 0; i < DeckSize; i++ {
		if _, err := deck.Draw(); err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
	}

	_, err := deck.Draw()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("draw on empty deck returned %v, want ErrEmptyDeck", err)
	}
}

func TestNewDeck_SeededShuffleIsDeterministic(t *testing.T) {
	a := NewDeck(rand.New(rand.NewSource(99)))
	b := NewDeck(rand.New(rand.NewSource(99)))

	for i := 0; i < DeckSize; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("draw %d differs: %s vs %s with equal seeds", i, ca, cb)
		}
	}
}
