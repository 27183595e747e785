package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nim/game"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Kind: "mcts", Iterations: 500, Exploration: 1.5, Seed: 7},
		}
		require.NoError(t, writer.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"id", "kind", "depth_limit", "iterations", "exploration", "seed"}, rows[0])
		require.Equal(t, []string{"1", "mcts", "0", "500", "1.5", "7"}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		now := time.Now()
		records := []GameRecord{
			{
				ID: 1, Agent1: 2, Agent2: 3,
				Rows:       []int{1, 3, 5},
				Winner:     game.Player2,
				TotalMoves: 9,
				StartTime:  now, EndTime: now.Add(time.Second), Duration: time.Second,
			},
		}
		require.NoError(t, writer.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "1 3 5", rows[1][3])
		require.Equal(t, "Player2", rows[1][4])
		require.Equal(t, "9", rows[1][5])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{
				Game: 1, Step: 2, Player: game.Player1,
				Move:     game.Move{Row: 1, Take: 3},
				Duration: 5 * time.Millisecond,
				Nodes:    42, Episodes: 100, Playouts: 100,
			},
		}
		require.NoError(t, writer.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "2", "Player1", "1", "3", "5ms", "42", "100", "100"}, rows[1])
	})
}
