package game

import "fmt"

// Suit identifies one of the four Swiss Jass suits. Suits are labels only,
// there is no ordering between them.
type Suit uint8

const (
	Schellen Suit = iota
	Schilte
	Eichel
	Rose
)

var suitNames = [NumSuits]string{"Schellen", "Schilte", "Eichel", "Rose"}

func (s Suit) String() string {
	if int(s) >= len(suitNames) {
		return "?"
	}
	return suitNames[s]
}

// Card is an immutable (suit, rank) value. Ranks run 6-14.
type Card struct {
	Suit Suit
	Rank uint8
}

// Lower reports whether c ranks below other within the same suit. Cards of
// different suits never compare lower in either direction; this is the sole
// elimination predicate of the game.
func (c Card) Lower(other Card) bool {
	if c.Suit != other.Suit {
		return false
	}
	return c.Rank < other.Rank
}

// String renders the card for diagnostic output: suit truncated to four
// characters, then the rank right-justified to width 2 ("Sche: 6", "Eich:14").
func (c Card) String() string {
	return fmt.Sprintf("%.4s:%2d", c.Suit.String(), c.Rank)
}
