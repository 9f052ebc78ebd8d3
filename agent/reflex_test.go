package agent

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestReflexPicksBestImmediateMove(t *testing.T) {
	root, a, _ := twoChoiceTree()
	// One ply deep the first move looks best: 0.9 and -0.7 children vs
	// 0.1 and 0.0. Evaluate sees the opponent nodes' scripted values.
	root.children[a].value = 0.9
	root.children[game.Action(20)].value = 0.1

	agent := NewReflex()
	require.Equal(t, a, agent.SelectAction(root))
}

func TestReflexUsesCustomHeuristic(t *testing.T) {
	// Invert the evaluation so the worst immediate move wins.
	worst := func(state game.State, perspective game.Player) float64 {
		return -state.Evaluate(perspective)
	}

	root, _, b := twoChoiceTree()
	root.children[game.Action(10)].value = 0.9
	root.children[b].value = 0.1

	agent := NewReflex(WithHeuristic(worst))
	require.Equal(t, b, agent.SelectAction(root))
}

func TestReflexPassesWhenStuck(t *testing.T) {
	stuck := game.NewGameStateFromMasks(1<<1, 1<<0, game.Black)

	agent := NewReflex()
	require.Equal(t, game.Pass, agent.SelectAction(stuck))
}

func TestReflexDoesNotCountNodes(t *testing.T) {
	agent := NewReflex()
	agent.SelectAction(game.NewGameState())
	require.Zero(t, agent.Info().NodesExpanded,
		"A one-ply agent expands no search nodes")
}
