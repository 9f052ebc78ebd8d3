package arena

import (
	"testing"

	"othello/agent"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestRunTournamentAccountsEveryGame(t *testing.T) {
	a, err := agent.New("reflex")
	require.NoError(t, err)
	b, err := agent.New("minimax", agent.WithDepth(1))
	require.NoError(t, err)

	result := RunTournament(a, b, 3)

	require.Equal(t, 3, result.Games)
	require.Len(t, result.Matches, 3)
	require.Equal(t, 3, result.Wins["Reflex"]+result.Wins["Minimax"]+result.Draws,
		"Every game should end in a win or a draw")
	for _, match := range result.Matches {
		require.True(t, match.FinalState.IsTerminal())
	}
	require.Positive(t, result.Nodes["Minimax"])
}

func TestRunTournamentAlternatesColors(t *testing.T) {
	a := newFirstLegalAgent("a")
	b := newFirstLegalAgent("b")

	RunTournament(a, b, 4)

	require.Equal(t, []game.Player{game.Black, game.White, game.Black, game.White}, a.seats,
		"The first agent should open the even games")
	require.Equal(t, []game.Player{game.White, game.Black, game.White, game.Black}, b.seats)
}

func TestRunTournamentAggregatesTiming(t *testing.T) {
	a := newFirstLegalAgent("a")
	b := newFirstLegalAgent("b")

	result := RunTournament(a, b, 2)

	totalMoves := 0
	for _, match := range result.Matches {
		totalMoves += match.Moves
	}
	require.EqualValues(t, totalMoves,
		result.Timing["a"]["moves"]+result.Timing["b"]["moves"])

	// The mock charges 2ms per move.
	for _, name := range []string{"a", "b"} {
		timing := result.Timing[name]
		require.InDelta(t, 0.002*timing["moves"], timing["total_time"], 1e-9)
		require.InDelta(t, 0.002, timing["avg_time"], 1e-9)
		require.EqualValues(t, timing["moves"], result.Nodes[name],
			"The mock expands one node per move")
	}
}
