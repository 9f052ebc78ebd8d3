package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanesFollowSideToMove(t *testing.T) {
	opening := NewGameState()
	planes := Planes(opening)

	require.Equal(t, float32(1), planes[0][3][4], "Black to move sees e4 on the own plane")
	require.Equal(t, float32(1), planes[0][4][3], "Black to move sees d5 on the own plane")
	require.Equal(t, float32(1), planes[1][3][3], "d4 belongs on the opponent plane")
	require.Equal(t, float32(1), planes[1][4][4], "e5 belongs on the opponent plane")

	next := opening.Apply(ActionAt(2, 3)).(GameState)
	planes = Planes(next)

	ownDiscs, oppDiscs := 0, 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			ownDiscs += int(planes[0][r][c])
			oppDiscs += int(planes[1][r][c])
		}
	}
	require.Equal(t, 1, ownDiscs, "After d3 White is to move with a single disc")
	require.Equal(t, 4, oppDiscs)
	require.Equal(t, float32(1), planes[0][4][4], "The remaining white disc sits on e5")
}

func TestPlanesAreDisjoint(t *testing.T) {
	state := NewGameState()
	for i := 0; i < 10 && !state.IsTerminal(); i++ {
		actions := state.LegalActions()
		state = state.Apply(actions[0]).(GameState)

		planes := Planes(state)
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				require.False(t, planes[0][r][c] == 1 && planes[1][r][c] == 1,
					"A cell cannot be occupied by both players")
			}
		}
	}
}
