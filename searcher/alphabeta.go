package searcher

import (
	"fmt"

	"nim/game"
)

// alphabeta is minimax with an (alpha, beta) pruning window threaded
// through the recursion. It chooses the same move as minimax on every
// input - same enumeration order, same strict-improvement tie-break -
// and only visits fewer nodes.
type alphabeta struct {
	depthLimit int
	metrics    MetricsCollector
}

func (s *alphabeta) ChooseMove(state *game.GameState) (game.Move, error) {
	s.metrics.Start()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("alphabeta: %w", ErrNoLegalMove)
	}

	best := moves[0]
	bestValue := loss - 1
	alpha, beta := loss-1, win+1
	for _, move := range moves {
		value := -s.search(mustApply(state, move), -beta, -alpha, 1)
		if value > bestValue {
			bestValue = value
			best = move
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}
	return best, nil
}

func (s *alphabeta) search(state *game.GameState, alpha, beta, depth int) int {
	s.metrics.AddNode()

	if state.IsTerminal() {
		return win
	}
	if s.depthLimit > 0 && depth >= s.depthLimit {
		return unknown
	}

	best := loss - 1
	for _, move := range state.LegalMoves() {
		if value := -s.search(mustApply(state, move), -beta, -alpha, depth+1); value > best {
			best = value
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // Remaining siblings cannot change the ancestor's choice
		}
	}
	return best
}
