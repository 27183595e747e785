package game

import "errors"

// Player identifies one of the two sides. The engine is player-agnostic:
// which side is the human and which the computer is the caller's business.
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	if p == Player1 {
		return "Player1"
	}
	return "Player2"
}

// StateHash identifies a GameState by value.
type StateHash uint64

var (
	// ErrIllegalMove is returned by Apply for any move that violates the
	// row/count invariants. Illegal moves are rejected, never clamped.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidRows is returned by NewGame for an empty or non-positive
	// row configuration.
	ErrInvalidRows = errors.New("invalid row configuration")
)
