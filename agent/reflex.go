package agent

import (
	"math"

	"othello/game"
)

// Reflex plays the move with the best immediate evaluation, one ply deep.
type Reflex struct {
	base
	heuristic game.Heuristic
}

func NewReflex(options ...Option) *Reflex {
	var s settings
	s.apply(options)
	return &Reflex{base: newBase("Reflex"), heuristic: s.heuristic}
}

func (a *Reflex) SelectAction(state game.State) game.Action {
	defer a.track()()

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	chosen := actions[0]
	bestScore := math.Inf(-1)
	for _, action := range actions {
		score := evaluate(state.Apply(action), perspective, a.heuristic)
		if score > bestScore {
			bestScore = score
			chosen = action
		}
	}
	return chosen
}
