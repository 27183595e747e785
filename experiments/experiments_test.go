package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nim/experiments/metrics"
)

func TestRunWritesRecords(t *testing.T) {
	dir := t.TempDir()
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "alphabeta"},
		{ID: 2, Kind: "mcts", Iterations: 50, Seed: 3},
	}

	require.NoError(t, Run([]int{1, 2}, configs, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "one timestamped run directory")

	runDir := filepath.Join(dir, entries[0].Name())
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		info, err := os.Stat(filepath.Join(runDir, name))
		require.NoError(t, err, name)
		require.Greater(t, info.Size(), int64(0), name)
	}
}

func TestBuildStrategyRejectsUnknownKind(t *testing.T) {
	_, err := buildStrategy(metrics.AgentConfig{Kind: "tabu"}, nil)
	require.Error(t, err)
}
