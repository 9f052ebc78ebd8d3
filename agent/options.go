package agent

import "othello/game"

// Default search budgets, per strategy.
const (
	DefaultMinimaxDepth    = 3
	DefaultAlphaBetaDepth  = 4
	DefaultExpectimaxDepth = 3
	DefaultBFSDepth        = 4
	DefaultDFSDepth        = 4
	DefaultAStarDepth      = 5
)

// GoalTest flags positions that short-circuit a horizon search with an
// infinite score.
type GoalTest func(state game.State, perspective game.Player) bool

type settings struct {
	depth        int
	iterations   int
	exploration  float64
	rolloutLimit int
	seed         uint64
	seeded       bool
	heuristic    game.Heuristic
	goal         GoalTest
}

func (s *settings) apply(options []Option) {
	for _, option := range options {
		option(s)
	}
}

type Option func(s *settings)

func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithIterations(iterations int) Option {
	return func(s *settings) {
		if iterations > 0 {
			s.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		if c >= 0 {
			s.exploration = c
		}
	}
}

func WithRolloutLimit(limit int) Option {
	return func(s *settings) {
		if limit > 0 {
			s.rolloutLimit = limit
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

func WithHeuristic(heuristic game.Heuristic) Option {
	return func(s *settings) {
		if heuristic != nil {
			s.heuristic = heuristic
		}
	}
}

func WithGoalTest(goal GoalTest) Option {
	return func(s *settings) {
		if goal != nil {
			s.goal = goal
		}
	}
}
