package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"nim/game"
)

// mcts runs a fixed budget of select/expand/rollout/backup iterations and
// returns the most-visited root child (the most-robust-child rule; visit
// counts are less variance-sensitive than win rates). All randomness comes
// from the strategy's own rng, so a fixed seed makes the choice
// reproducible.
type mcts struct {
	iterations  int
	exploration float64
	rng         *rand.Rand
	metrics     MetricsCollector
}

// node is one entry in the search arena. Children are expanded in
// LegalMoves order, so moves[len(children):] are the untried moves - the
// same bookkeeping trick keeps selection and expansion branch-free.
type node struct {
	parent   int
	mover    game.Player // player whose move produced this node
	moves    []game.Move // legal moves from this node's state
	children []int       // arena index per tried move, parallel to moves
	wins     float64
	visits   int
}

const noParent = -1

// arena holds every node of one ChooseMove call, indexed by int. The
// whole tree is discarded when the call returns; nothing survives it.
type arena struct {
	nodes []node
}

func (a *arena) add(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (s *mcts) ChooseMove(state *game.GameState) (game.Move, error) {
	s.metrics.Start()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("mcts: %w", ErrNoLegalMove)
	}

	tree := &arena{}
	tree.add(node{
		parent: noParent,
		mover:  state.CurrentPlayer.Opponent(),
		moves:  moves,
	})

	for i := 0; i < s.iterations; i++ {
		s.simulate(tree, state)
		s.metrics.AddEpisode()
	}

	return bestMove(tree), nil
}

// simulate runs one iteration of the four-phase loop from the root.
func (s *mcts) simulate(tree *arena, rootState *game.GameState) {
	// Selection: descend through fully expanded nodes by UCT score.
	index := 0
	state := rootState
	for len(tree.nodes[index].moves) > 0 &&
		len(tree.nodes[index].children) == len(tree.nodes[index].moves) {
		ith := s.pickChild(tree, index)
		state = mustApply(state, tree.nodes[index].moves[ith])
		index = tree.nodes[index].children[ith]
	}

	// Expansion: try the next untried move, if any.
	if untried := len(tree.nodes[index].children); untried < len(tree.nodes[index].moves) {
		move := tree.nodes[index].moves[untried]
		mover := state.CurrentPlayer
		state = mustApply(state, move)
		child := tree.add(node{
			parent: index,
			mover:  mover,
			moves:  state.LegalMoves(),
		})
		tree.nodes[index].children = append(tree.nodes[index].children, child)
		index = child
	}

	// Rollout: uniformly random play to a terminal state.
	winner := s.rollout(state)

	// Backpropagation: count the visit everywhere, the win only on nodes
	// whose mover is the rollout winner.
	for i := index; i != noParent; i = tree.nodes[i].parent {
		tree.nodes[i].visits++
		if tree.nodes[i].mover == winner {
			tree.nodes[i].wins++
		}
	}
}

// pickChild returns the index (into moves/children) of the child
// maximizing the UCT score. Only called on fully expanded nodes.
func (s *mcts) pickChild(tree *arena, index int) int {
	n := tree.nodes[index]
	if n.visits == 0 {
		panic("mcts: node has children but no visits")
	}
	logN := math.Log(float64(n.visits))

	best := 0
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		if score := s.uct(tree.nodes[child], logN); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// uct balances exploitation (observed win rate) against exploration
// (inverse visit count): w/n + c*sqrt(ln(N)/n).
func (s *mcts) uct(child node, logParent float64) float64 {
	if child.visits == 0 {
		return math.Inf(1)
	}
	n := float64(child.visits)
	return child.wins/n + s.exploration*math.Sqrt(logParent/n)
}

func (s *mcts) rollout(state *game.GameState) game.Player {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		state = mustApply(state, moves[s.rng.Intn(len(moves))])
		moves = state.LegalMoves()
	}
	s.metrics.AddPlayout()

	winner, ok := state.Winner()
	if !ok {
		panic("mcts: rollout ended on a non-terminal state")
	}
	return winner
}

// bestMove returns the root move with the most visits, breaking ties
// toward the earlier move.
func bestMove(tree *arena) game.Move {
	root := tree.nodes[0]
	best := root.moves[0]
	maxVisits := -1
	for i, child := range root.children {
		if visits := tree.nodes[child].visits; visits > maxVisits {
			maxVisits = visits
			best = root.moves[i]
		}
	}
	return best
}
