package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// NumSlots is the number of stacks on the board.
const NumSlots = 4

// Board holds the four slots and the draw pile. A card on a slot's tail is
// its top, the only card eligible for comparison and removal. Removed cards
// leave the 36-card universe permanently, so at all times
// sum(slot sizes) + deck size + removed == 36.
type Board struct {
	slots   [NumSlots][]Card
	deck    *Deck
	removed int
	trace   Tracer
}

// NewBoard creates a board with a freshly built deck shuffled by rng (nil rng
// keeps the deck unshuffled). A nil trace discards diagnostics.
func NewBoard(rng *rand.Rand, trace Tracer) *Board {
	if trace == nil {
		trace = NopTracer
	}
	return &Board{
		deck:  NewDeck(rng),
		trace: trace,
	}
}

// removeFixedPoint runs the elimination rule on the given slots until stable:
// scan ordered pairs of distinct slot indices in enumeration order, and on the
// first pair whose tops are same-suit with top(i1) ranked below top(i2), pop
// top(i1) and restart the scan. The pair order is part of the observable
// contract since it decides which card survives degenerate ties.
func removeFixedPoint(slots [][]Card) int {
	removed := 0
	for {
		found := false
	scan:
		for i1 := range slots {
			for i2 := range slots {
				if i1 == i2 {
					continue
				}
				if len(slots[i1]) == 0 || len(slots[i2]) == 0 {
					continue
				}
				top1 := slots[i1][len(slots[i1])-1]
				top2 := slots[i2][len(slots[i2])-1]
				if top1.Lower(top2) {
					slots[i1] = slots[i1][:len(slots[i1])-1]
					removed++
					found = true
					break scan
				}
			}
		}
		if !found {
			return removed
		}
	}
}

// RemoveCards runs the removal pass on the live board and returns how many
// cards it eliminated.
func (b *Board) RemoveCards() int {
	count := removeFixedPoint(b.slots[:])
	b.removed += count
	b.trace.Tracef("removed %d cards", count)
	return count
}

// simulateRemoval runs the removal pass on a full value-copy of the slots and
// reports the count. The live board is never touched; this is the look-ahead
// primitive for the best-move heuristic.
func (b *Board) simulateRemoval() int {
	var clone [NumSlots][]Card
	for i, slot := range b.slots {
		clone[i] = append([]Card(nil), slot...)
	}
	return removeFixedPoint(clone[:])
}

// checkBestToMove decides which slot's top card should be relocated into a
// freed slot. Every slot holding more than one card is a candidate (vacating
// a single-card slot exposes nothing new); for each candidate the top card is
// lifted, the removal pass is simulated, and the card put back. The candidate
// triggering the most removals wins. The -1 sentinel means a move worth zero
// further removals still beats not moving at all.
//
// The search deliberately performs a single full scan per call. The reference
// behavior wraps it in a retry loop that never re-arms, and the published
// leftover statistics were measured against that, so no rescan happens here.
func (b *Board) checkBestToMove() (int, bool) {
	maxRemoved := -1
	best := -1

	for i := range b.slots {
		if len(b.slots[i]) <= 1 {
			continue
		}

		top := b.slots[i][len(b.slots[i])-1]
		b.slots[i] = b.slots[i][:len(b.slots[i])-1]
		count := b.simulateRemoval()
		b.slots[i] = append(b.slots[i], top)

		if count > maxRemoved {
			maxRemoved = count
			best = i
		}
	}

	if best < 0 {
		return 0, false
	}
	b.trace.Tracef("moving top of slot %d frees %d removals", best, maxRemoved)
	return best, true
}

// firstEmptySlot returns the lowest-index empty slot, or -1.
func (b *Board) firstEmptySlot() int {
	for i := range b.slots {
		if len(b.slots[i]) == 0 {
			return i
		}
	}
	return -1
}

// PlayTurn deals one card onto every slot, then alternates removal passes
// with heuristic moves into freed slots until the board is stable.
func (b *Board) PlayTurn() error {
	for i := range b.slots {
		card, err := b.deck.Draw()
		if err != nil {
			return fmt.Errorf("dealing to slot %d: %w", i, err)
		}
		b.slots[i] = append(b.slots[i], card)
	}

	for {
		b.RemoveCards()

		empty := b.firstEmptySlot()
		if empty < 0 {
			break
		}

		src, ok := b.checkBestToMove()
		if !ok {
			break
		}

		top := b.slots[src][len(b.slots[src])-1]
		b.slots[src] = b.slots[src][:len(b.slots[src])-1]
		b.slots[empty] = append(b.slots[empty], top)
		b.trace.Tracef("moved %s from slot %d to slot %d", top, src, empty)
	}

	b.checkConservation()
	b.trace.Tracef("board:\n%s", b)
	return nil
}

// checkConservation panics if cards were created or destroyed outside the
// elimination rule. A violation is an implementation bug, not a game state.
func (b *Board) checkConservation() {
	total := b.CardsCount() + b.deck.Size() + b.removed
	if total != DeckSize {
		panic(fmt.Sprintf("card conservation violated: %d slots + %d deck + %d removed != %d",
			b.CardsCount(), b.deck.Size(), b.removed, DeckSize))
	}
}

// CardsCount returns the number of cards currently on the slots.
func (b *Board) CardsCount() int {
	total := 0
	for _, slot := range b.slots {
		total += len(slot)
	}
	return total
}

// RemovedCount returns how many cards the elimination rule has claimed.
func (b *Board) RemovedCount() int {
	return b.removed
}

// DeckSize returns the number of cards left in the draw pile.
func (b *Board) DeckSize() int {
	return b.deck.Size()
}

// String renders the slots bottom-up as columns separated by " - ", with
// "....:.." standing in for cells above a slot's height.
func (b *Board) String() string {
	maxPerSlot := 0
	for _, slot := range b.slots {
		if len(slot) > maxPerSlot {
			maxPerSlot = len(slot)
		}
	}

	var sb strings.Builder
	for row := 0; row < maxPerSlot; row++ {
		for _, slot := range b.slots {
			if row < len(slot) {
				sb.WriteString(slot[row].String())
			} else {
				sb.WriteString("....:..")
			}
			sb.WriteString(" - ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
