package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nim/game"
)

func TestMCTSSeedDeterminism(t *testing.T) {
	state := mustState(t, 1, 3, 5, 7)

	first, err := New(MCTS, WithIterations(500), WithSeed(42))
	require.NoError(t, err)
	second, err := New(MCTS, WithIterations(500), WithSeed(42))
	require.NoError(t, err)

	wantMove, err := first.ChooseMove(state)
	require.NoError(t, err)
	gotMove, err := second.ChooseMove(state)
	require.NoError(t, err)
	require.Equal(t, wantMove, gotMove,
		"identical state, config and seed must produce identical moves")
}

func TestMCTSFindsForcedWins(t *testing.T) {
	// Positions small enough that a few hundred rollouts settle firmly on
	// the single winning move.
	cases := []struct {
		rows []int
		want game.Move
	}{
		{rows: []int{2}, want: game.Move{Row: 0, Take: 1}}, // leave one
		{rows: []int{3}, want: game.Move{Row: 0, Take: 2}},
		{rows: []int{4}, want: game.Move{Row: 0, Take: 3}},
	}

	for _, tc := range cases {
		strategy, err := New(MCTS, WithIterations(800), WithSeed(7))
		require.NoError(t, err)

		move, err := strategy.ChooseMove(mustState(t, tc.rows...))
		require.NoError(t, err)
		require.Equal(t, tc.want, move, "rows %v", tc.rows)
	}
}

func TestMCTSChosenMovesAreLegal(t *testing.T) {
	strategy, err := New(MCTS, WithIterations(200), WithSeed(3))
	require.NoError(t, err)

	state := mustState(t, 1, 3, 5)
	for !state.IsTerminal() {
		move, err := strategy.ChooseMove(state)
		require.NoError(t, err)

		next, err := state.Apply(move)
		require.NoError(t, err, "mcts returned illegal move %v on %v", move, state.Rows)
		state = next
	}
}

func TestMCTSMetrics(t *testing.T) {
	metrics := NewMetricsCollector()
	strategy, err := New(MCTS, WithIterations(250), WithSeed(1), WithMetrics(metrics))
	require.NoError(t, err)

	_, err = strategy.ChooseMove(mustState(t, 2, 2))
	require.NoError(t, err)

	got := metrics.Complete()
	require.Equal(t, int64(250), got.Episodes)
	require.Equal(t, int64(250), got.Playouts,
		"every episode in Nim reaches a terminal state")
}

func TestMCTSDoesNotMutateState(t *testing.T) {
	strategy, err := New(MCTS, WithIterations(100), WithSeed(9))
	require.NoError(t, err)

	state := mustState(t, 2, 3)
	_, err = strategy.ChooseMove(state)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, state.Rows)
	require.Equal(t, game.Player1, state.CurrentPlayer)
}

func TestRandomBaseline(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		baseline := NewRandom(5)
		state := mustState(t, 2, 2)
		for !state.IsTerminal() {
			move, err := baseline.ChooseMove(state)
			require.NoError(t, err)
			next, err := state.Apply(move)
			require.NoError(t, err)
			state = next
		}
	})

	t.Run("errors on a terminal state", func(t *testing.T) {
		baseline := NewRandom(5)
		terminal := &game.GameState{Rows: []int{0}, CurrentPlayer: game.Player1}
		_, err := baseline.ChooseMove(terminal)
		require.ErrorIs(t, err, ErrNoLegalMove)
	})
}
