package agent

import (
	"math"

	"othello/game"
	"othello/searcher"
)

// MCTS runs a fresh Monte Carlo tree search per move and plays the most
// visited root action. The searcher's phase metrics land in Extra and its
// simulated playout moves feed the nodes-expanded counter.
type MCTS struct {
	base
	search *searcher.MCTS
	last   searcher.Result
}

func NewMCTS(options ...Option) *MCTS {
	s := settings{
		iterations:   searcher.DefaultIterations,
		exploration:  searcher.DefaultExploration,
		rolloutLimit: searcher.DefaultRolloutLimit,
	}
	s.apply(options)

	searchOptions := []searcher.Option{
		searcher.WithIterations(s.iterations),
		searcher.WithExploration(s.exploration),
		searcher.WithRolloutLimit(s.rolloutLimit),
	}
	if s.seeded {
		searchOptions = append(searchOptions, searcher.WithSeed(s.seed))
	}
	return &MCTS{base: newBase("MCTS"), search: searcher.NewMCTS(searchOptions...)}
}

func (a *MCTS) SelectAction(state game.State) game.Action {
	defer a.track()()

	result, metrics := a.search.Search(state)
	a.last = result
	a.record(metrics)

	if len(result.Policy) == 0 {
		return game.Pass
	}

	// Most visited action wins; equal shares resolve to the highest move.
	chosen := game.Pass
	bestShare := math.Inf(-1)
	for action, share := range result.Policy {
		if share > bestShare || (share == bestShare && action > chosen) {
			bestShare = share
			chosen = action
		}
	}
	return chosen
}

// LastResult reports the value and move distribution of the most recent
// search.
func (a *MCTS) LastResult() searcher.Result {
	return a.last
}

func (a *MCTS) record(metrics searcher.SearchMetrics) {
	a.info.NodesExpanded += metrics.RolloutMoves

	phases := map[string]searcher.PhaseStats{
		"select":  metrics.Select,
		"expand":  metrics.Expand,
		"rollout": metrics.Rollout,
		"backup":  metrics.Backup,
	}
	for name, stats := range phases {
		a.info.Extra[name+"_time"] = stats.Duration.Seconds()
		a.info.Extra[name+"_calls"] = float64(stats.Calls)
	}
}
