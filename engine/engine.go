// Package engine drives a full game between two agents. It is the
// stand-in for a presentation layer: it only constructs state through the
// game package and requests moves through the searcher.Strategy interface.
package engine

import (
	"fmt"

	"nim/game"
	"nim/searcher"
)

// MaxMoves guards against a runaway loop. Nim strictly shrinks the board
// every move, so hitting it means a broken agent.
const MaxMoves = 10000

// MoveLog records one applied move, with search metrics when the agent's
// collector was installed.
type MoveLog struct {
	Step    int
	Player  game.Player
	Move    game.Move
	Metrics searcher.SearchMetrics
}

// Engine runs one game to completion. Agents are indexed by game.Player.
type Engine struct {
	State      *game.GameState
	Agents     [2]searcher.Strategy
	Collectors [2]searcher.MetricsCollector
}

// Local wires a game between two strategies on the given starting state.
func Local(state *game.GameState, first, second searcher.Strategy) *Engine {
	if first == nil || second == nil {
		panic("engine: both agents are required")
	}
	return &Engine{
		State:  state.Copy(),
		Agents: [2]searcher.Strategy{first, second},
	}
}

// Run loops until the board is empty and returns the winner with the full
// move log. A strategy error (or an illegal move from an agent) aborts the
// game and leaves State at the last good position.
func (e *Engine) Run() (game.Player, []MoveLog, error) {
	var moveLogs []MoveLog

	for step := 1; !e.State.IsTerminal(); step++ {
		if step > MaxMoves {
			return 0, moveLogs, fmt.Errorf("engine: no terminal state after %d moves", MaxMoves)
		}

		player := e.State.CurrentPlayer
		move, err := e.Agents[player].ChooseMove(e.State)
		if err != nil {
			return 0, moveLogs, fmt.Errorf("engine: %s failed to move: %w", player, err)
		}

		next, err := e.State.Apply(move)
		if err != nil {
			return 0, moveLogs, fmt.Errorf("engine: %s played an illegal move: %w", player, err)
		}

		entry := MoveLog{Step: step, Player: player, Move: move}
		if collector := e.Collectors[player]; collector != nil {
			entry.Metrics = collector.Complete()
		}
		moveLogs = append(moveLogs, entry)

		logMove(entry, next)
		e.State = next
	}

	winner, ok := e.State.Winner()
	if !ok {
		panic("engine: loop exited on a non-terminal state")
	}
	logWinner(winner, len(moveLogs))
	return winner, moveLogs, nil
}
