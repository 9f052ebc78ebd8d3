package game

import (
	"fmt"
	"strings"
)

// Action is a square index row*8+col in [0, 64), or the Pass sentinel.
// Ascending index order equals ascending (row, col) order, so sorting
// actions needs no special casing.
type Action int

// Pass is the sentinel played when the side to move has no legal
// coordinate move. It sorts below every coordinate action.
const Pass Action = -1

// ActionAt builds the action for a board coordinate. Coordinates outside
// [0,8)x[0,8) are the caller's responsibility.
func ActionAt(row, col int) Action {
	return Action(row*BoardSize + col)
}

func (a Action) Row() int {
	return int(a) / BoardSize
}

func (a Action) Col() int {
	return int(a) % BoardSize
}

// Bit returns the single-bit mask for the action's square.
func (a Action) Bit() uint64 {
	return 1 << uint(a)
}

// String renders the action in algebraic notation: column letter a-h plus
// row number 1-8, e.g. "d3". Pass renders as "pass".
func (a Action) String() string {
	if a == Pass {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+a.Col(), a.Row()+1)
}

// ParseAction reads algebraic notation as produced by String. It accepts
// upper or lower case and the word "pass".
func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" {
		return Pass, nil
	}
	if len(s) != 2 {
		return Pass, fmt.Errorf("invalid action %q", s)
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Pass, fmt.Errorf("action %q out of range", s)
	}
	return ActionAt(row, col), nil
}
