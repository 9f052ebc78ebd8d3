package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"othello/game"
)

const (
	blackGlyph = "B"
	whiteGlyph = "W"
	emptyGlyph = "·"
	hintGlyph  = "*"
)

// Renderer draws positions for a terminal, coloring discs when the output
// supports it. Styling degrades to plain text when NO_COLOR is set or the
// writer is not a terminal.
type Renderer struct {
	output *termenv.Output
}

type Option func(settings *settings)

type settings struct {
	profile termenv.Profile
	pinned  bool
}

// WithProfile pins the color profile instead of detecting one from the
// environment. Tests pass termenv.Ascii to strip escape codes.
func WithProfile(profile termenv.Profile) Option {
	return func(s *settings) {
		s.profile = profile
		s.pinned = true
	}
}

func NewRenderer(w io.Writer, options ...Option) *Renderer {
	var config settings
	for _, option := range options {
		option(&config)
	}

	if config.pinned {
		return &Renderer{output: termenv.NewOutput(w, termenv.WithProfile(config.profile))}
	}
	return &Renderer{output: termenv.NewOutput(w)}
}

// Render draws the board inside an algebraic frame, followed by the
// turn/score line. The returned block ends with a newline.
func (r *Renderer) Render(gs game.GameState) string {
	return r.render(gs, nil)
}

// RenderWithHints marks the side to move's legal moves on empty squares.
func (r *Renderer) RenderWithHints(gs game.GameState) string {
	hints := map[game.Action]bool{}
	for _, action := range gs.LegalActions() {
		if action != game.Pass {
			hints[action] = true
		}
	}
	return r.render(gs, hints)
}

func (r *Renderer) render(gs game.GameState, hints map[game.Action]bool) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < game.BoardSize; c++ {
		sb.WriteString(fmt.Sprintf(" %c", 'a'+c))
	}
	sb.WriteByte('\n')

	board := gs.Board()
	for row := 0; row < game.BoardSize; row++ {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < game.BoardSize; col++ {
			sb.WriteByte(' ')
			cell := game.Player(board[row*game.BoardSize+col])
			if cell == game.None && hints[game.ActionAt(row, col)] {
				sb.WriteString(r.paint(hintGlyph, termenv.ANSIGreen))
				continue
			}
			sb.WriteString(r.cell(cell))
		}
		sb.WriteByte('\n')
	}

	black, white := gs.Score()
	sb.WriteString(fmt.Sprintf("Turn: %s | Legal moves: %d | Score (B/W): %d/%d\n",
		gs.CurrentPlayer(), len(gs.LegalActions()), black, white))
	return sb.String()
}

// Verdict announces the final result, winner's score first.
func (r *Renderer) Verdict(gs game.GameState) string {
	black, white := gs.Score()
	switch gs.Winner() {
	case game.Black:
		return fmt.Sprintf("Game over: %s wins %d-%d", r.name(game.Black), black, white)
	case game.White:
		return fmt.Sprintf("Game over: %s wins %d-%d", r.name(game.White), white, black)
	default:
		return fmt.Sprintf("Game over: draw %d-%d", black, white)
	}
}

func (r *Renderer) cell(p game.Player) string {
	switch p {
	case game.Black:
		return r.paint(blackGlyph, termenv.ANSIBrightBlack)
	case game.White:
		return r.paint(whiteGlyph, termenv.ANSIBrightWhite)
	default:
		return r.paint(emptyGlyph, termenv.ANSIBrightBlack)
	}
}

func (r *Renderer) name(p game.Player) string {
	if p == game.Black {
		return r.paint(p.String(), termenv.ANSIBrightBlack)
	}
	return r.paint(p.String(), termenv.ANSIBrightWhite)
}

func (r *Renderer) paint(text string, color termenv.Color) string {
	return r.output.String(text).Foreground(color).String()
}
