package searcher

import (
	"math"

	"othello/game"

	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// Result is the outcome of one search: the root value estimate clamped to
// [-1, 1] and the visit share of each root action.
type Result struct {
	Value  float64
	Policy map[game.Action]float64
}

// RolloutPolicy picks the next move of a playout.
type RolloutPolicy func(rng *rand.Rand, moves []game.Action) game.Action

// MCTS is a single-threaded UCT search that grows a fresh tree per call.
type MCTS struct {
	iterations   int
	exploration  float64
	rolloutLimit int
	rollout      RolloutPolicy
	rng          *rand.Rand
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithRolloutLimit(limit int) Option {
	return func(m *MCTS) {
		if limit > 0 {
			m.rolloutLimit = limit
		}
	}
}

func WithRolloutPolicy(policy RolloutPolicy) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:   DefaultIterations,
		exploration:  DefaultExploration,
		rolloutLimit: DefaultRolloutLimit,
		rollout:      CornerBiasedPolicy,
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(rand.Uint64()))
	}
	return m
}

// Search runs the configured number of iterations from root and returns the
// move distribution with the metrics of this search.
func (m *MCTS) Search(root game.State) (Result, SearchMetrics) {
	var metrics SearchMetrics

	t := newTree(root)
	t.materialize(0)
	if len(t.nodes[0].untried) == 0 {
		// Nothing to search from: report the position's outcome as seen by
		// the side to move.
		result := Result{
			Value:  root.Outcome(root.CurrentPlayer()),
			Policy: map[game.Action]float64{},
		}
		return result, metrics
	}

	for i := 0; i < m.iterations; i++ {
		id := m.selectNode(t, &metrics)
		id = m.expand(t, id, &metrics)
		value := m.simulate(t.nodes[id].state, &metrics)
		m.backup(t, id, value, &metrics)
	}

	result := Result{
		Value:  math.Max(-1, math.Min(1, t.nodes[0].q())),
		Policy: t.policy(),
	}
	return result, metrics
}

// selectNode descends from the root until it reaches a node with untried
// actions or no children.
func (m *MCTS) selectNode(t *tree, metrics *SearchMetrics) int {
	defer metrics.clock(&metrics.Select)()

	id := 0
	for {
		t.materialize(id)
		n := &t.nodes[id]
		if len(n.untried) > 0 || len(n.children) == 0 {
			return id
		}

		policy := newUCT(m.exploration, n.visits)
		best := -1
		bestScore := math.Inf(-1)
		for _, e := range n.children {
			child := &t.nodes[e.child]
			if score := policy.evaluate(child.q(), child.visits); score > bestScore {
				bestScore = score
				best = e.child
			}
		}
		if best == -1 {
			return id
		}
		id = best
	}
}

// expand pops the next untried action and adds the resulting child.
func (m *MCTS) expand(t *tree, id int, metrics *SearchMetrics) int {
	defer metrics.clock(&metrics.Expand)()

	t.materialize(id)
	n := &t.nodes[id]
	if len(n.untried) == 0 {
		return id
	}

	last := len(n.untried) - 1
	action := n.untried[last]
	n.untried = n.untried[:last]
	childState := n.state.Apply(action)
	return t.addChild(id, action, childState)
}

// simulate plays out from state and scores the end position for the player
// who was to move when the playout started.
func (m *MCTS) simulate(state game.State, metrics *SearchMetrics) float64 {
	defer metrics.clock(&metrics.Rollout)()

	cur := state
	start := state.CurrentPlayer()
	steps := 0
	passes := 0

	for !cur.IsTerminal() && steps < m.rolloutLimit {
		moves := cur.LegalActions()
		if len(moves) == 0 {
			cur = cur.Apply(game.Pass)
			passes++
			if passes >= 2 {
				break
			}
			continue
		}

		passes = 0
		cur = cur.Apply(m.rollout(m.rng, moves))
		steps++
		metrics.RolloutMoves++
	}

	return cur.Outcome(start)
}

func (m *MCTS) backup(t *tree, id int, value float64, metrics *SearchMetrics) {
	defer metrics.clock(&metrics.Backup)()

	v := value
	for id != -1 {
		n := &t.nodes[id]
		n.visits++
		n.value += v
		v = -v
		id = n.parent
	}
}

var cornerActions = [...]game.Action{
	game.ActionAt(0, 0),
	game.ActionAt(0, game.BoardSize-1),
	game.ActionAt(game.BoardSize-1, 0),
	game.ActionAt(game.BoardSize-1, game.BoardSize-1),
}

// CornerBiasedPolicy grabs an open corner, in board order, before falling
// back to a uniformly random move.
func CornerBiasedPolicy(rng *rand.Rand, moves []game.Action) game.Action {
	for _, corner := range cornerActions {
		for _, move := range moves {
			if move == corner {
				return corner
			}
		}
	}
	return moves[rng.Intn(len(moves))]
}
