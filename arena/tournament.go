package arena

import (
	"github.com/rs/zerolog/log"

	"othello/agent"
	"othello/game"
)

// TournamentResult aggregates a head-to-head series. Wins and nodes are
// keyed by agent name; timing carries total_time/moves/avg_time per agent
// in seconds.
type TournamentResult struct {
	Wins    map[string]int
	Draws   int
	Games   int
	Timing  map[string]map[string]float64
	Nodes   map[string]int64
	Matches []MatchResult
}

// RunTournament plays two agents head to head, alternating colors every
// game so neither keeps the first-move advantage.
func RunTournament(a, b agent.Agent, games int) TournamentResult {
	wins := map[string]int{a.Name(): 0, b.Name(): 0}
	timing := map[string]map[string]float64{
		a.Name(): {"total_time": 0, "moves": 0},
		b.Name(): {"total_time": 0, "moves": 0},
	}
	nodes := map[string]int64{a.Name(): 0, b.Name(): 0}
	draws := 0
	matches := make([]MatchResult, 0, games)

	for i := 0; i < games; i++ {
		black, white := a, b
		if i%2 == 1 {
			black, white = b, a
		}
		log.Info().Msgf("playing game %d/%d: %s as black vs %s as white...",
			i+1, games, black.Name(), white.Name())

		result := PlayMatch(black, white)
		matches = append(matches, result)

		switch result.Winner {
		case game.Black:
			wins[black.Name()]++
		case game.White:
			wins[white.Name()]++
		default:
			draws++
		}

		for _, played := range []agent.Agent{black, white} {
			info := played.Info()
			timing[played.Name()]["total_time"] += info.Timing.TotalTime.Seconds()
			timing[played.Name()]["moves"] += float64(info.Timing.MoveCount)
			nodes[played.Name()] += info.NodesExpanded
		}
	}

	for _, data := range timing {
		if data["moves"] > 0 {
			data["avg_time"] = data["total_time"] / data["moves"]
		} else {
			data["avg_time"] = 0
		}
	}

	return TournamentResult{
		Wins:    wins,
		Draws:   draws,
		Games:   games,
		Timing:  timing,
		Nodes:   nodes,
		Matches: matches,
	}
}
