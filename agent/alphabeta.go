package agent

import (
	"math"

	"othello/game"
)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning. The
// number of cutoffs taken is reported under the "pruned" extra.
type AlphaBeta struct {
	base
	depth     int
	heuristic game.Heuristic
	pruned    int
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := settings{depth: DefaultAlphaBetaDepth}
	s.apply(options)
	return &AlphaBeta{base: newBase("AlphaBeta"), depth: s.depth, heuristic: s.heuristic}
}

func (a *AlphaBeta) SelectAction(state game.State) game.Action {
	defer a.track()()
	a.pruned = 0

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	chosen := actions[0]
	bestValue := math.Inf(-1)
	for _, action := range actions {
		// Each root move gets a fresh window so root values stay exact.
		value := a.minValue(state.Apply(action), a.depth-1,
			math.Inf(-1), math.Inf(1), perspective)
		if value > bestValue {
			bestValue = value
			chosen = action
		}
	}
	a.info.Extra["pruned"] = float64(a.pruned)
	return chosen
}

func (a *AlphaBeta) maxValue(state game.State, depth int, alpha, beta float64, perspective game.Player) float64 {
	a.info.NodesExpanded++
	if depth == 0 || state.IsTerminal() {
		return evaluate(state, perspective, a.heuristic)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return a.minValue(state.Apply(game.Pass), depth-1, alpha, beta, perspective)
	}

	value := math.Inf(-1)
	for _, action := range actions {
		value = math.Max(value,
			a.minValue(state.Apply(action), depth-1, alpha, beta, perspective))
		alpha = math.Max(alpha, value)
		if alpha >= beta {
			a.pruned++
			break
		}
	}
	return value
}

func (a *AlphaBeta) minValue(state game.State, depth int, alpha, beta float64, perspective game.Player) float64 {
	a.info.NodesExpanded++
	if depth == 0 || state.IsTerminal() {
		return evaluate(state, perspective, a.heuristic)
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		return a.maxValue(state.Apply(game.Pass), depth-1, alpha, beta, perspective)
	}

	value := math.Inf(1)
	for _, action := range actions {
		value = math.Min(value,
			a.maxValue(state.Apply(action), depth-1, alpha, beta, perspective))
		beta = math.Min(beta, value)
		if beta <= alpha {
			a.pruned++
			break
		}
	}
	return value
}
