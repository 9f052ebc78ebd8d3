package game

import (
	"fmt"
	"strings"
)

// GameState is an immutable Othello position: two occupancy masks plus the
// side to move. It is a small comparable value; holders copy it freely and
// may use it as a map key. The masks are always disjoint.
type GameState struct {
	black  uint64
	white  uint64
	player Player
}

// NewGameState returns the canonical opening position.
func NewGameState() GameState {
	black, white, player := StartingPosition()
	return GameState{black: black, white: white, player: player}
}

// NewGameStateFromMasks builds an arbitrary position. The caller is
// responsible for passing disjoint masks.
func NewGameStateFromMasks(black, white uint64, player Player) GameState {
	return GameState{black: black, white: white, player: player}
}

func (gs GameState) CurrentPlayer() Player {
	return gs.player
}

// Masks returns the raw black and white occupancy masks.
func (gs GameState) Masks() (black, white uint64) {
	return gs.black, gs.white
}

// LegalActions lists the side to move's actions in ascending order. When
// no coordinate move is legal the result is exactly [Pass].
func (gs GameState) LegalActions() []Action {
	own, opp := gs.ownOpp()
	actions := LegalCoordinateActions(own, opp)
	if len(actions) == 0 {
		return []Action{Pass}
	}
	return actions
}

func (gs GameState) Apply(a Action) State {
	black, white, player := ApplyAction(gs.black, gs.white, gs.player, a)
	return GameState{black: black, white: white, player: player}
}

func (gs GameState) IsTerminal() bool {
	return IsTerminal(gs.black, gs.white, gs.player)
}

func (gs GameState) Evaluate(player Player) float64 {
	return EvaluateState(gs, player)
}

// Outcome reports +1/-1/0 from the given player's perspective based on the
// disc majority.
func (gs GameState) Outcome(player Player) float64 {
	winner := Winner(gs.black, gs.white)
	if winner == None {
		return 0
	}
	if winner == player {
		return 1
	}
	return -1
}

// Score counts the discs of each side.
func (gs GameState) Score() (black, white int) {
	return Score(gs.black, gs.white)
}

// Winner returns the side with the disc majority, or None on a tie.
func (gs GameState) Winner() Player {
	return Winner(gs.black, gs.white)
}

// Board expands the position into 64 squares of +1/-1/0, row-major.
func (gs GameState) Board() []int8 {
	return BoardSlice(gs.black, gs.white)
}

func (gs GameState) ownOpp() (own, opp uint64) {
	if gs.player == Black {
		return gs.black, gs.white
	}
	return gs.white, gs.black
}

// ParseBoard builds a position from eight rows of 8 runes: 'B', 'W' and
// '.' for empty. Used by tests and position setup from the command line.
func ParseBoard(rows []string, player Player) (GameState, error) {
	if len(rows) != BoardSize {
		return GameState{}, fmt.Errorf("expected %d rows, got %d", BoardSize, len(rows))
	}
	var black, white uint64
	for r, row := range rows {
		cells := strings.Fields(row)
		if len(cells) == 1 && len(row) == BoardSize {
			cells = strings.Split(row, "")
		}
		if len(cells) != BoardSize {
			return GameState{}, fmt.Errorf("row %d: expected %d cells, got %d", r, BoardSize, len(cells))
		}
		for c, cell := range cells {
			bit := uint64(1) << uint(r*BoardSize+c)
			switch cell {
			case "B", "b":
				black |= bit
			case "W", "w":
				white |= bit
			case ".":
			default:
				return GameState{}, fmt.Errorf("row %d: invalid cell %q", r, cell)
			}
		}
	}
	return GameState{black: black, white: white, player: player}, nil
}

// String renders the board with row and column headers plus a status line.
// Plain text only; the console package handles color.
func (gs GameState) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for c := 0; c < BoardSize; c++ {
		sb.WriteString(fmt.Sprintf(" %c", 'a'+c))
	}
	sb.WriteByte('\n')

	board := gs.Board()
	for r := 0; r < BoardSize; r++ {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for c := 0; c < BoardSize; c++ {
			switch Player(board[r*BoardSize+c]) {
			case Black:
				sb.WriteString(" B")
			case White:
				sb.WriteString(" W")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}

	b, w := gs.Score()
	sb.WriteString(fmt.Sprintf("Turn: %s | Legal moves: %d | Score (B/W): %d/%d",
		gs.player, len(gs.LegalActions()), b, w))
	return sb.String()
}
