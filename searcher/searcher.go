// Package searcher implements the computer opponent: three interchangeable
// move-selection strategies (exhaustive minimax, alpha-beta minimax, and
// Monte Carlo Tree Search) behind a single Strategy interface.
package searcher

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"nim/game"
)

var (
	// ErrNoLegalMove is returned by ChooseMove when invoked on a terminal
	// state. That is a caller bug and is surfaced loudly.
	ErrNoLegalMove = errors.New("no legal move: state is terminal")

	// ErrConfiguration is returned by New for an invalid strategy config.
	ErrConfiguration = errors.New("invalid strategy configuration")
)

// Strategy picks a move for the current player of a given state. A call
// runs synchronously to completion and owns all of its search state;
// nothing is shared across calls.
type Strategy interface {
	ChooseMove(state *game.GameState) (game.Move, error)
}

// Kind is the closed set of strategy variants.
type Kind int

const (
	Minimax Kind = iota
	AlphaBeta
	MCTS
)

func (k Kind) String() string {
	switch k {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case MCTS:
		return "mcts"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a strategy name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "minimax":
		return Minimax, nil
	case "alphabeta":
		return AlphaBeta, nil
	case "mcts":
		return MCTS, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrConfiguration, name)
	}
}

// Defaults for the MCTS hyperparameters. The exploration constant sqrt(2)
// gives the classic UCT score sqrt(2*ln(N)/n).
const (
	DefaultIterations  = 1000
	DefaultExploration = math.Sqrt2
)

type config struct {
	depthLimit  int
	iterations  int
	exploration float64
	seed        uint64
	seeded      bool
	metrics     MetricsCollector
}

type Option func(*config)

// WithDepthLimit bounds the minimax/alpha-beta recursion depth. Positions
// cut off before terminal evaluate as unknown and the root still returns
// the best move found. Ignored by MCTS.
func WithDepthLimit(depth int) Option {
	return func(c *config) {
		c.depthLimit = depth
	}
}

// WithIterations sets the MCTS simulation budget. Ignored by minimax and
// alpha-beta.
func WithIterations(iterations int) Option {
	return func(c *config) {
		c.iterations = iterations
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(exploration float64) Option {
	return func(c *config) {
		c.exploration = exploration
	}
}

// WithSeed fixes the MCTS rollout randomness, making ChooseMove
// reproducible. Without it each strategy instance seeds itself from the
// clock.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithMetrics installs a collector that records search effort per
// ChooseMove call.
func WithMetrics(metrics MetricsCollector) Option {
	return func(c *config) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// New builds a strategy of the given kind.
func New(kind Kind, options ...Option) (Strategy, error) {
	cfg := config{
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.depthLimit < 0 {
		return nil, fmt.Errorf("%w: depth limit %d must not be negative", ErrConfiguration, cfg.depthLimit)
	}
	if cfg.iterations <= 0 {
		return nil, fmt.Errorf("%w: iteration budget %d must be positive", ErrConfiguration, cfg.iterations)
	}
	if cfg.exploration <= 0 {
		return nil, fmt.Errorf("%w: exploration constant %g must be positive", ErrConfiguration, cfg.exploration)
	}

	switch kind {
	case Minimax:
		return &minimax{depthLimit: cfg.depthLimit, metrics: cfg.metrics}, nil
	case AlphaBeta:
		return &alphabeta{depthLimit: cfg.depthLimit, metrics: cfg.metrics}, nil
	case MCTS:
		seed := cfg.seed
		if !cfg.seeded {
			seed = uint64(time.Now().UnixNano())
		}
		return &mcts{
			iterations:  cfg.iterations,
			exploration: cfg.exploration,
			rng:         rand.New(rand.NewSource(seed)),
			metrics:     cfg.metrics,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrConfiguration, kind)
	}
}

// mustApply applies a move known to come from LegalMoves. A failure here
// is a broken invariant, not a caller error.
func mustApply(state *game.GameState, move game.Move) *game.GameState {
	next, err := state.Apply(move)
	if err != nil {
		panic(err)
	}
	return next
}
