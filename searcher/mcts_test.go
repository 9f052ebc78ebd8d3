package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewMCTS(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		m := NewMCTS()
		require.Equal(t, DefaultIterations, m.iterations)
		require.Equal(t, DefaultExploration, m.exploration)
		require.Equal(t, DefaultRolloutLimit, m.rolloutLimit)
		require.NotNil(t, m.rng)
	})

	t.Run("ignores invalid options", func(t *testing.T) {
		m := NewMCTS(WithIterations(-5), WithExploration(-1), WithRolloutLimit(0))
		require.Equal(t, DefaultIterations, m.iterations)
		require.Equal(t, DefaultExploration, m.exploration)
		require.Equal(t, DefaultRolloutLimit, m.rolloutLimit)
	})

	t.Run("applies options", func(t *testing.T) {
		m := NewMCTS(WithIterations(25), WithExploration(0.7), WithRolloutLimit(30))
		require.Equal(t, 25, m.iterations)
		require.Equal(t, 0.7, m.exploration)
		require.Equal(t, 30, m.rolloutLimit)
	})
}

func TestSearchExploresAllRootActions(t *testing.T) {
	m := NewMCTS(WithIterations(40), WithSeed(1))

	result, _ := m.Search(game.NewGameState())

	require.Len(t, result.Policy, 4, "Every opening move should be expanded")
	total := 0.0
	for _, share := range result.Policy {
		require.Positive(t, share)
		total += share
	}
	require.InDelta(t, 1.0, total, 1e-9, "Visit shares should sum to 1")
	require.GreaterOrEqual(t, result.Value, -1.0)
	require.LessOrEqual(t, result.Value, 1.0)
}

func TestSearchExpandsUntriedInReverseOrder(t *testing.T) {
	m := NewMCTS(WithIterations(1), WithSeed(3))

	result, _ := m.Search(game.NewGameState())

	// A single iteration expands exactly one child, taken from the back of
	// the untried list.
	require.Equal(t, map[game.Action]float64{game.ActionAt(5, 4): 1.0}, result.Policy)
}

func TestSearchMetricsCountIterations(t *testing.T) {
	m := NewMCTS(WithIterations(12), WithSeed(2))

	_, metrics := m.Search(game.NewGameState())

	require.EqualValues(t, 12, metrics.Select.Calls)
	require.EqualValues(t, 12, metrics.Expand.Calls)
	require.EqualValues(t, 12, metrics.Rollout.Calls)
	require.EqualValues(t, 12, metrics.Backup.Calls)
	require.Positive(t, metrics.RolloutMoves,
		"Opening playouts should simulate at least one move")
}

func TestSearchIsDeterministicWithSeed(t *testing.T) {
	root := game.NewGameState()

	first, _ := NewMCTS(WithIterations(50), WithSeed(42)).Search(root)
	second, _ := NewMCTS(WithIterations(50), WithSeed(42)).Search(root)

	require.Equal(t, first.Policy, second.Policy,
		"The same seed should reproduce the same distribution")
	require.Equal(t, first.Value, second.Value)
}

func TestSearchOnPassOnlyPosition(t *testing.T) {
	// Black has a disc but no flanking move, so passing is the only action.
	root := game.NewGameStateFromMasks(1<<1, 1<<0, game.Black)
	require.Equal(t, []game.Action{game.Pass}, root.LegalActions())

	m := NewMCTS(WithIterations(20), WithSeed(4))
	result, metrics := m.Search(root)

	require.Equal(t, map[game.Action]float64{game.Pass: 1.0}, result.Policy,
		"All visits should concentrate on the pass child")
	require.EqualValues(t, 20, metrics.Select.Calls,
		"A pass-only root should still consume the full budget")
}

func TestSearchWithoutActions(t *testing.T) {
	m := NewMCTS(WithIterations(30), WithSeed(5))

	result, metrics := m.Search(barrenState{})

	require.InDelta(t, 0.5, result.Value, 1e-9,
		"The root outcome should be reported for the side to move")
	require.NotNil(t, result.Policy)
	require.Empty(t, result.Policy)
	require.Zero(t, metrics.Select.Calls, "No iterations should run")
}

func TestCornerBiasedPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	t.Run("prefers the lowest open corner", func(t *testing.T) {
		moves := []game.Action{
			game.ActionAt(3, 3),
			game.ActionAt(7, 7),
			game.ActionAt(0, 7),
		}
		require.Equal(t, game.ActionAt(0, 7), CornerBiasedPolicy(rng, moves),
			"Corners should be checked in board order")
	})

	t.Run("falls back to a random move", func(t *testing.T) {
		moves := []game.Action{game.ActionAt(3, 3), game.ActionAt(4, 4)}
		require.Contains(t, moves, CornerBiasedPolicy(rng, moves))
	})
}
