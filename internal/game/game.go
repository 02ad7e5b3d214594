package game

import "math/rand"

// Game plays one full round of the patience against a single board.
type Game struct {
	board *Board
}

// NewGame creates a game whose deck is shuffled from seed. The trace sink may
// be nil to discard diagnostics.
func NewGame(seed int64, trace Tracer) *Game {
	rng := rand.New(rand.NewSource(seed))
	return &Game{board: NewBoard(rng, trace)}
}

// Board exposes the underlying board for diagnostic rendering.
func (g *Game) Board() *Board {
	return g.board
}

// PlayRound plays the nine turns of a round and returns the number of cards
// left on the board, in 0..36.
func (g *Game) PlayRound() (int, error) {
	for turn := 0; turn < CardsPerSuit; turn++ {
		if err := g.board.PlayTurn(); err != nil {
			return 0, err
		}
	}
	return g.board.CardsCount(), nil
}
