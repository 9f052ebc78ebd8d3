package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"othello/game"
)

func plainRenderer() *Renderer {
	return NewRenderer(&bytes.Buffer{}, WithProfile(termenv.Ascii))
}

func TestRenderOpening(t *testing.T) {
	out := plainRenderer().Render(game.NewGameState())

	lines := strings.Split(out, "\n")
	require.Equal(t, "   a b c d e f g h", lines[0])
	require.Equal(t, "4  · · · W B · · ·", lines[4])
	require.Equal(t, "5  · · · B W · · ·", lines[5])
	require.Equal(t, "Turn: BLACK | Legal moves: 4 | Score (B/W): 2/2", lines[9])
	require.NotContains(t, out, "\x1b[", "The ascii profile should emit no escape codes")
}

func TestRenderWithHints(t *testing.T) {
	out := plainRenderer().RenderWithHints(game.NewGameState())

	lines := strings.Split(out, "\n")
	require.Equal(t, "3  · · · * · · · ·", lines[3])
	require.Equal(t, "4  · · * W B · · ·", lines[4])
	require.Equal(t, "5  · · · B W * · ·", lines[5])
	require.Equal(t, "6  · · · · * · · ·", lines[6])
}

func TestRenderColorsDiscs(t *testing.T) {
	renderer := NewRenderer(&bytes.Buffer{}, WithProfile(termenv.ANSI))
	out := renderer.Render(game.NewGameState())

	require.Contains(t, out, "\x1b[90mB\x1b[0m", "Black discs render gray")
	require.Contains(t, out, "\x1b[97mW\x1b[0m", "White discs render bright white")
}

func TestRendererDegradesOnPlainWriters(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")

	// A bytes.Buffer is not a terminal, so detection lands on ascii.
	renderer := NewRenderer(&bytes.Buffer{})
	out := renderer.Render(game.NewGameState())

	require.NotContains(t, out, "\x1b[")
}

func TestVerdict(t *testing.T) {
	renderer := plainRenderer()

	t.Run("draw", func(t *testing.T) {
		drawn := game.NewGameStateFromMasks(1<<1, 1<<0, game.Black)
		require.Equal(t, "Game over: draw 1-1", renderer.Verdict(drawn))
	})

	t.Run("black win puts the black score first", func(t *testing.T) {
		won := game.NewGameStateFromMasks(0b111, 1<<8, game.Black)
		require.Equal(t, "Game over: BLACK wins 3-1", renderer.Verdict(won))
	})

	t.Run("white win puts the white score first", func(t *testing.T) {
		won := game.NewGameStateFromMasks(1<<0, 0b11<<8, game.White)
		require.Equal(t, "Game over: WHITE wins 2-1", renderer.Verdict(won))
	})
}
