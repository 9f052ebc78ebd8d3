package agent

import (
	"math"

	"othello/game"
)

// Minimax is a depth-limited minimax search.
type Minimax struct {
	base
	depth     int
	heuristic game.Heuristic
}

func NewMinimax(options ...Option) *Minimax {
	s := settings{depth: DefaultMinimaxDepth}
	s.apply(options)
	return &Minimax{base: newBase("Minimax"), depth: s.depth, heuristic: s.heuristic}
}

func (a *Minimax) SelectAction(state game.State) game.Action {
	defer a.track()()

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	chosen := actions[0]
	bestValue := math.Inf(-1)
	for _, action := range actions {
		value := a.minValue(state.Apply(action), a.depth-1, perspective)
		if value > bestValue {
			bestValue = value
			chosen = action
		}
	}
	return chosen
}

func (a *Minimax) maxValue(state game.State, depth int, perspective game.Player) float64 {
	a.info.NodesExpanded++
	if depth == 0 || state.IsTerminal() {
		return evaluate(state, perspective, a.heuristic)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return a.minValue(state.Apply(game.Pass), depth-1, perspective)
	}

	value := math.Inf(-1)
	for _, action := range actions {
		value = math.Max(value, a.minValue(state.Apply(action), depth-1, perspective))
	}
	return value
}

func (a *Minimax) minValue(state game.State, depth int, perspective game.Player) float64 {
	a.info.NodesExpanded++
	if depth == 0 || state.IsTerminal() {
		return evaluate(state, perspective, a.heuristic)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return a.maxValue(state.Apply(game.Pass), depth-1, perspective)
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value, a.maxValue(state.Apply(action), depth-1, perspective))
	}
	return value
}
