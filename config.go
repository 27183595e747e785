package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/namsral/flag"
)

// Config drives the nim binary. Every flag can also be set through a
// NIM_-prefixed environment variable.
type Config struct {
	Rows        string
	Strategy    string
	Iterations  int
	Exploration float64
	Seed        uint64
	DepthLimit  int
	Benchmark   bool
	OutDir      string
	Verbose     bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSetWithEnvPrefix("nim", "NIM", flag.ContinueOnError)
	fs.StringVar(&c.Rows, "rows", "1,3,5,7", "comma-separated initial row sizes")
	fs.StringVar(&c.Strategy, "strategy", "mcts", "computer strategy: minimax, alphabeta or mcts")
	fs.IntVar(&c.Iterations, "iterations", 1000, "mcts simulation budget")
	fs.Float64Var(&c.Exploration, "exploration", 0, "mcts exploration constant (0 = default)")
	fs.Uint64Var(&c.Seed, "seed", 0, "mcts random seed (0 = seed from the clock)")
	fs.IntVar(&c.DepthLimit, "depth-limit", 0, "minimax/alphabeta depth limit (0 = exhaustive)")
	fs.BoolVar(&c.Benchmark, "benchmark", false, "run the strategy benchmark suite instead of an interactive game")
	fs.StringVar(&c.OutDir, "out-dir", "benchmarks", "directory for benchmark CSV output")
	fs.BoolVar(&c.Verbose, "verbose", false, "log every applied move")
	return fs.Parse(args)
}

// ParseRows turns the rows flag into row sizes.
func (c *Config) ParseRows() ([]int, error) {
	parts := strings.Split(c.Rows, ",")
	rows := make([]int, 0, len(parts))
	for _, part := range parts {
		count, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad row size %q: %w", part, err)
		}
		rows = append(rows, count)
	}
	return rows, nil
}
