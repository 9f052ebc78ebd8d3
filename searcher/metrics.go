package searcher

import "time"

// PhaseStats aggregates the call count and wall time of one search phase.
type PhaseStats struct {
	Calls    int64
	Duration time.Duration
}

// SearchMetrics reports how a single search spent its budget. RolloutMoves
// counts the playout moves simulated across all iterations.
type SearchMetrics struct {
	Select       PhaseStats
	Expand       PhaseStats
	Rollout      PhaseStats
	Backup       PhaseStats
	RolloutMoves int64
}

// clock records one invocation of a phase:
//
//	defer m.clock(&m.Select)()
func (m *SearchMetrics) clock(phase *PhaseStats) func() {
	phase.Calls++
	start := time.Now()
	return func() {
		phase.Duration += time.Since(start)
	}
}
