package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nim/game"
	"nim/searcher"
)

func TestRunCompletesGame(t *testing.T) {
	pairings := []struct {
		name          string
		first, second searcher.Kind
	}{
		{"minimax vs alphabeta", searcher.Minimax, searcher.AlphaBeta},
		{"alphabeta vs mcts", searcher.AlphaBeta, searcher.MCTS},
		{"mcts vs minimax", searcher.MCTS, searcher.Minimax},
	}

	for _, tc := range pairings {
		t.Run(tc.name, func(t *testing.T) {
			state, err := game.NewGame(1, 2, 3)
			require.NoError(t, err)

			first, err := searcher.New(tc.first, searcher.WithIterations(200), searcher.WithSeed(1))
			require.NoError(t, err)
			second, err := searcher.New(tc.second, searcher.WithIterations(200), searcher.WithSeed(2))
			require.NoError(t, err)

			e := Local(state, first, second)
			winner, moveLogs, err := e.Run()
			require.NoError(t, err)
			require.True(t, e.State.IsTerminal())
			require.NotEmpty(t, moveLogs)

			wantWinner, ok := e.State.Winner()
			require.True(t, ok)
			require.Equal(t, wantWinner, winner)
		})
	}
}

func TestRunAlternatesTurns(t *testing.T) {
	state, err := game.NewGame(2, 2)
	require.NoError(t, err)

	strategy, err := searcher.New(searcher.AlphaBeta)
	require.NoError(t, err)

	e := Local(state, strategy, strategy)
	_, moveLogs, err := e.Run()
	require.NoError(t, err)

	for i, entry := range moveLogs {
		require.Equal(t, i+1, entry.Step)
		if i > 0 {
			require.NotEqual(t, moveLogs[i-1].Player, entry.Player,
				"turns must alternate")
		}
	}
	require.Equal(t, game.Player1, moveLogs[0].Player)
}

func TestRunDoesNotMutateStartingState(t *testing.T) {
	state, err := game.NewGame(1, 2)
	require.NoError(t, err)

	strategy, err := searcher.New(searcher.Minimax)
	require.NoError(t, err)

	e := Local(state, strategy, strategy)
	_, _, err = e.Run()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, state.Rows, "engine must run on its own copy")
}

func TestRunCollectsMetrics(t *testing.T) {
	state, err := game.NewGame(2, 2)
	require.NoError(t, err)

	collector := searcher.NewMetricsCollector()
	strategy, err := searcher.New(searcher.MCTS,
		searcher.WithIterations(100), searcher.WithSeed(4), searcher.WithMetrics(collector))
	require.NoError(t, err)
	opponent, err := searcher.New(searcher.AlphaBeta)
	require.NoError(t, err)

	e := Local(state, strategy, opponent)
	e.Collectors[game.Player1] = collector

	_, moveLogs, err := e.Run()
	require.NoError(t, err)

	for _, entry := range moveLogs {
		if entry.Player == game.Player1 {
			require.Equal(t, int64(100), entry.Metrics.Episodes)
		}
	}
}
