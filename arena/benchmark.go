package arena

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"othello/agent"
)

// BenchmarkReport holds one tournament per agent pair.
type BenchmarkReport struct {
	Tournaments []TournamentResult
}

// RunBenchmark plays a tournament between every pair of agents.
func RunBenchmark(agents []agent.Agent, gamesPerPair int) BenchmarkReport {
	pairs := len(agents) * (len(agents) - 1) / 2
	log.Info().Msgf("benchmarking %d agents over %d pairings...", len(agents), pairs)

	tournaments := make([]TournamentResult, 0, pairs)
	for i := 0; i < len(agents); i++ {
		for j := i + 1; j < len(agents); j++ {
			tournaments = append(tournaments, RunTournament(agents[i], agents[j], gamesPerPair))
		}
	}
	return BenchmarkReport{Tournaments: tournaments}
}

// JSON renders the per-pairing outcomes as an indented array.
func (r BenchmarkReport) JSON() ([]byte, error) {
	type entry struct {
		Wins   map[string]int                `json:"wins"`
		Draws  int                           `json:"draws"`
		Games  int                           `json:"games"`
		Timing map[string]map[string]float64 `json:"timing"`
		Nodes  map[string]int64              `json:"nodes"`
	}

	payload := make([]entry, 0, len(r.Tournaments))
	for _, t := range r.Tournaments {
		payload = append(payload, entry{
			Wins:   t.Wins,
			Draws:  t.Draws,
			Games:  t.Games,
			Timing: t.Timing,
			Nodes:  t.Nodes,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode benchmark report: %w", err)
	}
	return data, nil
}
