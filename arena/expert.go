package arena

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/agent"
	"othello/config"
	"othello/game"
)

// ExpertGenerator produces supervised (position, move) samples by letting
// a configured expert agent play itself.
type ExpertGenerator struct {
	expert agent.Agent
}

func NewExpertGenerator(cfg *config.Config) (*ExpertGenerator, error) {
	name := cfg.GetString("expert.name", "alphabeta")
	options := []agent.Option{
		agent.WithDepth(cfg.GetInt("expert.depth", 4)),
		agent.WithIterations(cfg.GetInt("mcts.iterations", 400)),
		agent.WithRolloutLimit(cfg.GetInt("mcts.rollout_limit", 150)),
	}
	if seed := cfg.GetInt("expert.seed", -1); seed >= 0 {
		options = append(options, agent.WithSeed(uint64(seed)))
	}

	expert, err := agent.New(name, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create expert agent: %w", err)
	}
	return &ExpertGenerator{expert: expert}, nil
}

// GenerateGames runs the expert against itself and collects a sample per
// coordinate move. Forced passes are played but never recorded.
func (g *ExpertGenerator) GenerateGames(games int) []Sample {
	var dataset []Sample
	for i := 0; i < games; i++ {
		log.Info().Msgf("generating self-play game %d/%d...", i+1, games)

		state := game.NewGameState()
		g.expert.Reset()

		for !state.IsTerminal() {
			action := g.expert.SelectAction(state)
			if action != game.Pass {
				dataset = append(dataset, Sample{
					Planes: game.Planes(state),
					Action: int(action),
				})
			}
			state = state.Apply(action).(game.GameState)
		}
	}
	return dataset
}

// Expert exposes the configured agent, mostly for reporting.
func (g *ExpertGenerator) Expert() agent.Agent {
	return g.expert
}
