// Package experiments benchmarks the strategies against each other and
// writes the results as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nim/engine"
	"nim/experiments/metrics"
	"nim/game"
	"nim/searcher"
)

const NumGames = 20 // Per matchup

// DefaultConfigs is the benchmark lineup: a random floor, the two exact
// searches, and MCTS at two budgets. The exact searches share a depth
// limit so the suite stays tractable on the classic 1-3-5-7 board.
func DefaultConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Kind: "random", Seed: 1},
		{ID: 2, Kind: "minimax", DepthLimit: 4},
		{ID: 3, Kind: "alphabeta", DepthLimit: 4},
		{ID: 4, Kind: "mcts", Iterations: 200, Exploration: searcher.DefaultExploration, Seed: 11},
		{ID: 5, Kind: "mcts", Iterations: 2000, Exploration: searcher.DefaultExploration, Seed: 12},
	}
}

// Run plays every non-baseline config against every other (both seats) on
// the given board and writes agent, game and move records under outDir.
func Run(rows []int, configs []metrics.AgentConfig, outDir string) error {
	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for i, first := range configs {
		for _, second := range configs[i+1:] {
			log.Info().
				Str("agent1", first.Kind).
				Str("agent2", second.Kind).
				Msg("matchup started")

			for n := 0; n < NumGames; n++ {
				// Alternate seats so neither config always starts.
				a, b := first, second
				if n%2 == 1 {
					a, b = second, first
				}

				gameID++
				record, moves, err := runGame(gameID, rows, a, b)
				if err != nil {
					return fmt.Errorf("game %d (%s vs %s): %w", gameID, a.Kind, b.Kind, err)
				}
				gameRecords = append(gameRecords, record)
				moveRecords = append(moveRecords, moves...)
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().
		Int("games", len(gameRecords)).
		Str("dir", writer.Dir()).
		Msg("benchmark complete")
	return nil
}

func runGame(id int, rows []int, first, second metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	state, err := game.NewGame(rows...)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	collectors := [2]searcher.MetricsCollector{
		searcher.NewMetricsCollector(),
		searcher.NewMetricsCollector(),
	}
	agents := [2]searcher.Strategy{}
	for seat, config := range []metrics.AgentConfig{first, second} {
		agent, err := buildStrategy(config, collectors[seat])
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		agents[seat] = agent
	}

	e := engine.Local(state, agents[0], agents[1])
	e.Collectors = collectors

	start := time.Now()
	winner, moveLogs, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	end := time.Now()

	record := metrics.GameRecord{
		ID:         id,
		Agent1:     first.ID,
		Agent2:     second.ID,
		Rows:       rows,
		Winner:     winner,
		TotalMoves: len(moveLogs),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}

	moveRecords := make([]metrics.MoveRecord, 0, len(moveLogs))
	for _, entry := range moveLogs {
		moveRecords = append(moveRecords, metrics.MoveRecord{
			Game:     id,
			Step:     entry.Step,
			Player:   entry.Player,
			Move:     entry.Move,
			Duration: entry.Metrics.Duration,
			Nodes:    entry.Metrics.Nodes,
			Episodes: entry.Metrics.Episodes,
			Playouts: entry.Metrics.Playouts,
		})
	}
	return record, moveRecords, nil
}

// buildStrategy instantiates a fresh strategy per game so benchmark runs
// never share search state.
func buildStrategy(config metrics.AgentConfig, collector searcher.MetricsCollector) (searcher.Strategy, error) {
	if config.Kind == "random" {
		return searcher.NewRandom(config.Seed), nil
	}

	kind, err := searcher.ParseKind(config.Kind)
	if err != nil {
		return nil, err
	}

	options := []searcher.Option{searcher.WithMetrics(collector)}
	if config.DepthLimit > 0 {
		options = append(options, searcher.WithDepthLimit(config.DepthLimit))
	}
	if config.Iterations > 0 {
		options = append(options, searcher.WithIterations(config.Iterations))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}
	if config.Seed > 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}
	return searcher.New(kind, options...)
}
