package agent

import (
	"math"

	"othello/game"
)

// DFS scores each root move by an alternating depth-first sweep to a depth
// horizon.
type DFS struct {
	base
	depth     int
	heuristic game.Heuristic
	goal      GoalTest
}

func NewDFS(options ...Option) *DFS {
	s := settings{depth: DefaultDFSDepth}
	s.apply(options)
	return &DFS{base: newBase("DFS"), depth: s.depth, heuristic: s.heuristic, goal: s.goal}
}

func (a *DFS) SelectAction(state game.State) game.Action {
	defer a.track()()

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	chosen := actions[0]
	bestScore := math.Inf(-1)
	for _, action := range actions {
		score := a.dfs(state.Apply(action), 1, perspective, false)
		if score > bestScore {
			bestScore = score
			chosen = action
		}
	}
	return chosen
}

func (a *DFS) dfs(state game.State, depth int, perspective game.Player, maximizing bool) float64 {
	a.info.NodesExpanded++

	if a.goal != nil && a.goal(state, perspective) {
		return math.Inf(1)
	}

	if depth >= a.depth || state.IsTerminal() {
		return evaluate(state, perspective, a.heuristic)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return a.dfs(state.Apply(game.Pass), depth+1, perspective, !maximizing)
	}

	if maximizing {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value, a.dfs(state.Apply(action), depth+1, perspective, false))
		}
		return value
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value, a.dfs(state.Apply(action), depth+1, perspective, true))
	}
	return value
}
