package searcher

import (
	"fmt"

	"nim/game"
)

// Game-theoretic values from the perspective of the side to move. A
// terminal state scores win: under the misere rule the opponent just
// removed the last match, so the side to move has won.
const (
	win  = 1
	loss = -1
	// unknown is the value of a position cut off by a depth limit.
	unknown = 0
)

// minimax explores the full game tree with backward induction. It is
// intentionally exhaustive (exponential in the total match count) and
// meant for small boards; ties between equally good moves break toward
// the first move in LegalMoves order, which makes the choice
// deterministic.
type minimax struct {
	depthLimit int
	metrics    MetricsCollector
}

func (s *minimax) ChooseMove(state *game.GameState) (game.Move, error) {
	s.metrics.Start()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("minimax: %w", ErrNoLegalMove)
	}

	best := moves[0]
	bestValue := loss - 1
	for _, move := range moves {
		value := -s.search(mustApply(state, move), 1)
		if value > bestValue {
			bestValue = value
			best = move
		}
	}
	return best, nil
}

// search returns the value of state for its side to move.
func (s *minimax) search(state *game.GameState, depth int) int {
	s.metrics.AddNode()

	if state.IsTerminal() {
		return win
	}
	if s.depthLimit > 0 && depth >= s.depthLimit {
		return unknown
	}

	best := loss - 1
	for _, move := range state.LegalMoves() {
		if value := -s.search(mustApply(state, move), depth+1); value > best {
			best = value
		}
	}
	return best
}
