package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Writer dumps benchmark records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the CSV files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return w.writeCSV("agent_configs.csv",
		[]string{"id", "kind", "depth_limit", "iterations", "exploration", "seed"},
		len(configs),
		func(i int) []string {
			config := configs[i]
			return []string{
				strconv.Itoa(config.ID),
				config.Kind,
				strconv.Itoa(config.DepthLimit),
				strconv.Itoa(config.Iterations),
				strconv.FormatFloat(config.Exploration, 'g', -1, 64),
				strconv.FormatUint(config.Seed, 10),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "agent1", "agent2", "rows", "winner", "total_moves", "start_time", "end_time", "duration"},
		len(records),
		func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.ID),
				strconv.Itoa(record.Agent1),
				strconv.Itoa(record.Agent2),
				formatRows(record.Rows),
				record.Winner.String(),
				strconv.Itoa(record.TotalMoves),
				record.StartTime.Format(time.RFC3339),
				record.EndTime.Format(time.RFC3339),
				record.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("move_records.csv",
		[]string{"game", "step", "player", "row", "take", "duration", "nodes", "episodes", "playouts"},
		len(records),
		func(i int) []string {
			record := records[i]
			return []string{
				strconv.Itoa(record.Game),
				strconv.Itoa(record.Step),
				record.Player.String(),
				strconv.Itoa(record.Move.Row),
				strconv.Itoa(record.Move.Take),
				record.Duration.String(),
				strconv.FormatInt(record.Nodes, 10),
				strconv.FormatInt(record.Episodes, 10),
				strconv.FormatInt(record.Playouts, 10),
			}
		})
}

func (w *Writer) writeCSV(name string, header []string, rows int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return writer.Error()
}

func formatRows(rows []int) string {
	parts := make([]string, len(rows))
	for i, count := range rows {
		parts[i] = strconv.Itoa(count)
	}
	return strings.Join(parts, " ")
}
