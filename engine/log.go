package engine

import (
	"github.com/rs/zerolog/log"

	"nim/game"
)

func logMove(entry MoveLog, next *game.GameState) {
	log.Debug().
		Int("step", entry.Step).
		Stringer("player", entry.Player).
		Int("row", entry.Move.Row).
		Int("take", entry.Move.Take).
		Ints("rows", next.Rows).
		Msg("move applied")
}

func logWinner(winner game.Player, moves int) {
	log.Info().
		Stringer("winner", winner).
		Int("moves", moves).
		Msg("game over")
}
