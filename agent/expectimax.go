package agent

import (
	"math"

	"othello/game"
)

// Expectimax searches against an opponent modeled as a uniform random
// policy instead of a minimizer.
type Expectimax struct {
	base
	depth     int
	heuristic game.Heuristic
}

func NewExpectimax(options ...Option) *Expectimax {
	s := settings{depth: DefaultExpectimaxDepth}
	s.apply(options)
	return &Expectimax{base: newBase("Expectimax"), depth: s.depth, heuristic: s.heuristic}
}

func (a *Expectimax) SelectAction(state game.State) game.Action {
	defer a.track()()

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	chosen := actions[0]
	bestValue := math.Inf(-1)
	for _, action := range actions {
		value := a.expectValue(state.Apply(action), a.depth-1, false, perspective)
		if value > bestValue {
			bestValue = value
			chosen = action
		}
	}
	return chosen
}

func (a *Expectimax) expectValue(state game.State, depth int, maximizing bool, perspective game.Player) float64 {
	a.info.NodesExpanded++
	if depth == 0 || state.IsTerminal() {
		return evaluate(state, perspective, a.heuristic)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return a.expectValue(state.Apply(game.Pass), depth-1, !maximizing, perspective)
	}

	if maximizing {
		value := math.Inf(-1)
		for _, action := range actions {
			value = math.Max(value,
				a.expectValue(state.Apply(action), depth-1, false, perspective))
		}
		return value
	}

	// Chance layer: average over the opponent's moves.
	total := 0.0
	for _, action := range actions {
		total += a.expectValue(state.Apply(action), depth-1, true, perspective)
	}
	return total / float64(len(actions))
}
