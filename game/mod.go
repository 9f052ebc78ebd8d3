package game

// Player identifies a side. Black always moves first. The zero value means
// no player and doubles as the "draw" result of Winner.
type Player int8

const (
	Black Player = 1
	White Player = -1
	None  Player = 0
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	}
	return "NONE"
}

// State should be immutable - operations on State always return a new copy.
// Any game that aims to be playable by the search agents implements this
// interface.
type State interface {
	CurrentPlayer() Player
	// LegalActions returns actions in ascending order. The result contains
	// exactly the Pass sentinel if and only if no coordinate move is legal.
	LegalActions() []Action
	// Apply plays an action and returns the successor state. An illegal
	// coordinate move degrades to a pass instead of failing.
	Apply(Action) State
	IsTerminal() bool
	// Evaluate scores the position from the given player's perspective.
	// The result is a heuristic blend and is not bounded to [-1, 1].
	Evaluate(Player) float64
	// Outcome reports the game result from the given player's perspective:
	// +1 win, -1 loss, 0 draw. Only meaningful on terminal states, or as a
	// rollout/leaf proxy.
	Outcome(Player) float64
}

// Heuristic scores a state from a player's perspective. Agents accept an
// optional Heuristic to override the state's built-in evaluation.
type Heuristic func(State, Player) float64
