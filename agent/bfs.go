package agent

import (
	"math"

	"othello/game"
)

// BFS scores each root move by a breadth-first sweep to a depth horizon.
// A goal test, when set, short-circuits the sweep with an infinite score.
type BFS struct {
	base
	depth     int
	heuristic game.Heuristic
	goal      GoalTest
}

func NewBFS(options ...Option) *BFS {
	s := settings{depth: DefaultBFSDepth}
	s.apply(options)
	return &BFS{base: newBase("BFS"), depth: s.depth, heuristic: s.heuristic, goal: s.goal}
}

func (a *BFS) SelectAction(state game.State) game.Action {
	defer a.track()()

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	chosen := actions[0]
	bestScore := math.Inf(-1)
	for _, action := range actions {
		score := a.scoreAction(state, action, perspective)
		if score > bestScore {
			bestScore = score
			chosen = action
		}
	}
	return chosen
}

type bfsItem struct {
	state game.State
	depth int
}

func (a *BFS) scoreAction(state game.State, action game.Action, perspective game.Player) float64 {
	queue := []bfsItem{{state: state.Apply(action), depth: 1}}
	best := math.Inf(-1)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		a.info.NodesExpanded++

		if a.goal != nil && a.goal(item.state, perspective) {
			return math.Inf(1)
		}

		if item.depth >= a.depth || item.state.IsTerminal() {
			best = math.Max(best, evaluate(item.state, perspective, a.heuristic))
			continue
		}

		legal := item.state.LegalActions()
		if len(legal) == 0 {
			queue = append(queue, bfsItem{state: item.state.Apply(game.Pass), depth: item.depth + 1})
			continue
		}
		for _, move := range legal {
			queue = append(queue, bfsItem{state: item.state.Apply(move), depth: item.depth + 1})
		}
	}
	return best
}
