package arena

import (
	"testing"

	"othello/config"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestNewExpertGeneratorDefaults(t *testing.T) {
	generator, err := NewExpertGenerator(config.New())
	require.NoError(t, err)

	require.Equal(t, "AlphaBeta", generator.Expert().Name())
}

func TestNewExpertGeneratorRejectsUnknownAgent(t *testing.T) {
	cfg := config.New()
	cfg.Set("expert.name", "oracle")

	_, err := NewExpertGenerator(cfg)
	require.ErrorContains(t, err, "failed to create expert agent")
}

func TestGenerateGames(t *testing.T) {
	cfg := config.New()
	cfg.Set("expert.name", "reflex")

	generator, err := NewExpertGenerator(cfg)
	require.NoError(t, err)

	samples := generator.GenerateGames(1)
	require.NotEmpty(t, samples)

	require.Equal(t, game.Planes(game.NewGameState()), samples[0].Planes,
		"The first sample should capture the opening position")
	require.Equal(t, int(game.ActionAt(2, 3)), samples[0].Action,
		"Reflex breaks the symmetric opening tie in board order")

	for _, sample := range samples {
		require.GreaterOrEqual(t, sample.Action, 0, "Forced passes should not be recorded")
		require.Less(t, sample.Action, game.BoardSize*game.BoardSize)
	}
}
