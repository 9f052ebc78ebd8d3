package agent

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestBFSPicksLegalOpeningMove(t *testing.T) {
	opening := game.NewGameState()

	agent := NewBFS(WithDepth(3))
	action := agent.SelectAction(opening)

	require.Contains(t, opening.LegalActions(), action)
	require.Positive(t, agent.Info().NodesExpanded)
}

func TestBFSGoalTestShortCircuits(t *testing.T) {
	always := func(game.State, game.Player) bool { return true }
	opening := game.NewGameState()

	agent := NewBFS(WithGoalTest(always))
	action := agent.SelectAction(opening)

	require.Equal(t, game.ActionAt(2, 3), action,
		"All moves hit the goal, so the first in board order wins")
	require.EqualValues(t, 4, agent.Info().NodesExpanded,
		"Each root move should stop at its first dequeued node")
}

func TestBFSGoalTestChecksPerspective(t *testing.T) {
	var seen []game.Player
	goal := func(_ game.State, perspective game.Player) bool {
		seen = append(seen, perspective)
		return true
	}

	agent := NewBFS(WithGoalTest(goal))
	agent.SelectAction(game.NewGameState())

	require.NotEmpty(t, seen)
	for _, p := range seen {
		require.Equal(t, game.Black, p,
			"The goal test should always see the root perspective")
	}
}

func TestBFSPassesWhenStuck(t *testing.T) {
	stuck := game.NewGameStateFromMasks(1<<1, 1<<0, game.Black)

	agent := NewBFS()
	require.Equal(t, game.Pass, agent.SelectAction(stuck))
}
