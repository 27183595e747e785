package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// GameState is a snapshot of the board: the remaining match count per row
// and whose turn it is. States are immutable by convention - Apply returns
// a fresh state and never touches the receiver, so states are safely
// shareable across search branches.
type GameState struct {
	Rows          []int
	CurrentPlayer Player
}

// DefaultRows is the classic 1-3-5-7 starting board.
func DefaultRows() []int {
	return []int{1, 3, 5, 7}
}

// NewGame returns a fresh state with the given initial row sizes and
// Player1 to move. Every row size must be positive.
func NewGame(rows ...int) (*GameState, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidRows)
	}
	for i, count := range rows {
		if count <= 0 {
			return nil, fmt.Errorf("%w: row %d has size %d", ErrInvalidRows, i, count)
		}
	}
	state := &GameState{
		Rows:          make([]int, len(rows)),
		CurrentPlayer: Player1,
	}
	copy(state.Rows, rows)
	return state, nil
}

func (gs *GameState) Copy() *GameState {
	rows := make([]int, len(gs.Rows))
	copy(rows, gs.Rows)
	return &GameState{
		Rows:          rows,
		CurrentPlayer: gs.CurrentPlayer,
	}
}

// LegalMoves returns every legal (row, take) pair in deterministic order:
// ascending row index, ascending take count. Deterministic enumeration is
// what makes the search strategies reproducible.
func (gs *GameState) LegalMoves() []Move {
	var moves []Move
	for row, count := range gs.Rows {
		for take := 1; take <= count; take++ {
			moves = append(moves, Move{Row: row, Take: take})
		}
	}
	return moves
}

// Apply validates move and returns the successor state with the move's row
// decremented and the turn flipped. On an illegal move it returns
// ErrIllegalMove and the receiver is left untouched.
func (gs *GameState) Apply(move Move) (*GameState, error) {
	if move.Row < 0 || move.Row >= len(gs.Rows) {
		return nil, fmt.Errorf("%w: row %d out of range", ErrIllegalMove, move.Row)
	}
	if gs.Rows[move.Row] == 0 {
		return nil, fmt.Errorf("%w: row %d is empty", ErrIllegalMove, move.Row)
	}
	if move.Take < 1 || move.Take > gs.Rows[move.Row] {
		return nil, fmt.Errorf("%w: cannot take %d from row %d (%d left)",
			ErrIllegalMove, move.Take, move.Row, gs.Rows[move.Row])
	}

	next := gs.Copy()
	next.Rows[move.Row] -= move.Take
	next.CurrentPlayer = gs.CurrentPlayer.Opponent()
	return next, nil
}

// IsTerminal reports whether every row is empty.
func (gs *GameState) IsTerminal() bool {
	for _, count := range gs.Rows {
		if count > 0 {
			return false
		}
	}
	return true
}

// Winner returns the winning player of a terminal state. Under the misère
// rule the player who removes the last match loses; Apply has already
// flipped the turn, so the winner is exactly the terminal state's current
// player. The second return is false on a non-terminal state.
func (gs *GameState) Winner() (Player, bool) {
	if !gs.IsTerminal() {
		return Player1, false
	}
	return gs.CurrentPlayer, true
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	for _, count := range gs.Rows {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}
	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	var b strings.Builder
	for row, count := range gs.Rows {
		fmt.Fprintf(&b, "row %d: %s(%d)\n", row, strings.Repeat("| ", count), count)
	}
	fmt.Fprintf(&b, "%s to move", gs.CurrentPlayer)
	return b.String()
}
