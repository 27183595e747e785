package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"nim/game"
)

// Random plays a uniformly random legal move. It is not part of the Kind
// set; the benchmark harness uses it as a strength floor.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("random: %w", ErrNoLegalMove)
	}
	return moves[r.rng.Intn(len(moves))], nil
}
