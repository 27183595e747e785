package searcher

import "time"

// SearchMetrics summarizes the effort of one ChooseMove call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // nodes visited by minimax/alpha-beta
	Episodes  int64 // MCTS iterations run
	Playouts  int64 // completed random rollouts
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddEpisode()
	AddPlayout()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     int64
	episodes  int64
	playouts  int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes = 0
	m.episodes = 0
	m.playouts = 0
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) AddEpisode() {
	m.episodes++
}

func (m *metricsCollector) AddPlayout() {
	m.playouts++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Episodes:  m.episodes,
		Playouts:  m.playouts,
	}
}

type noMetricsCollector struct{}

// NewNoMetricsCollector returns a collector that discards everything.
func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddNode()                {}
func (noMetricsCollector) AddEpisode()             {}
func (noMetricsCollector) AddPlayout()             {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
