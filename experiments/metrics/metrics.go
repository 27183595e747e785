// Package metrics holds the record types and CSV output for strategy
// benchmarks.
package metrics

import (
	"time"

	"nim/game"
)

// AgentConfig describes one benchmarked strategy configuration.
type AgentConfig struct {
	ID          int
	Kind        string
	DepthLimit  int
	Iterations  int
	Exploration float64
	Seed        uint64
}

// GameRecord summarizes one finished game between two agents.
type GameRecord struct {
	ID             int
	Agent1         int // AgentConfig.ID playing as Player1
	Agent2         int // AgentConfig.ID playing as Player2
	Rows           []int
	Winner         game.Player
	TotalMoves     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// MoveRecord captures the search effort behind one move.
type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Player   game.Player
	Move     game.Move
	Duration time.Duration
	Nodes    int64
	Episodes int64
	Playouts int64
}
