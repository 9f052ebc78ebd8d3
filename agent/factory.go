package agent

import (
	"fmt"
	"strings"
)

// New builds an agent by name. Names are matched case-insensitively and
// unset options fall back to each strategy's own defaults.
func New(name string, options ...Option) (Agent, error) {
	switch strings.ToLower(name) {
	case "reflex":
		return NewReflex(options...), nil
	case "minimax":
		return NewMinimax(options...), nil
	case "alphabeta":
		return NewAlphaBeta(options...), nil
	case "expectimax":
		return NewExpectimax(options...), nil
	case "bfs":
		return NewBFS(options...), nil
	case "dfs":
		return NewDFS(options...), nil
	case "astar":
		return NewAStar(options...), nil
	case "mcts":
		return NewMCTS(options...), nil
	default:
		return nil, fmt.Errorf("unknown agent type: %q", name)
	}
}

// Names lists the agent types New accepts.
func Names() []string {
	return []string{"reflex", "minimax", "alphabeta", "expectimax", "bfs", "dfs", "astar", "mcts"}
}
