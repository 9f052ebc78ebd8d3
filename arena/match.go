package arena

import (
	"othello/agent"
	"othello/game"
)

// MatchResult reports one finished game: the winning color, the final
// position, the number of actions played (passes included) and each
// agent's metrics snapshot keyed by agent name.
type MatchResult struct {
	Winner     game.Player
	FinalState game.State
	Moves      int
	Stats      map[string]map[string]float64
}

// Observer is called after every applied action with the resulting state.
type Observer func(state game.State, action game.Action)

type MatchOption func(config *matchConfig)

type matchConfig struct {
	initial  game.State
	observer Observer
}

func WithInitialState(state game.State) MatchOption {
	return func(c *matchConfig) {
		if state != nil {
			c.initial = state
		}
	}
}

func WithObserver(observer Observer) MatchOption {
	return func(c *matchConfig) {
		c.observer = observer
	}
}

// PlayMatch runs a single game until termination. Both agents are reset
// first, so the reported stats cover exactly this game.
func PlayMatch(black, white agent.Agent, options ...MatchOption) MatchResult {
	config := matchConfig{initial: game.NewGameState()}
	for _, option := range options {
		option(&config)
	}

	black.Reset()
	white.Reset()
	agents := map[game.Player]agent.Agent{
		game.Black: black,
		game.White: white,
	}

	state := config.initial
	moves := 0
	for !state.IsTerminal() {
		current := agents[state.CurrentPlayer()]
		action := current.SelectAction(state)
		state = state.Apply(action)
		moves++
		if config.observer != nil {
			config.observer(state, action)
		}
	}

	return MatchResult{
		Winner:     winnerOf(state),
		FinalState: state,
		Moves:      moves,
		Stats: map[string]map[string]float64{
			black.Name(): black.Info().Snapshot(),
			white.Name(): white.Info().Snapshot(),
		},
	}
}

func winnerOf(state game.State) game.Player {
	switch outcome := state.Outcome(game.Black); {
	case outcome > 0:
		return game.Black
	case outcome < 0:
		return game.White
	default:
		return game.None
	}
}
