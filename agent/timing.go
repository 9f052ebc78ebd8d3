package agent

import "time"

// TimingStats aggregates wall time across an agent's moves.
type TimingStats struct {
	TotalTime time.Duration
	MoveCount int
	PerPhase  map[string]time.Duration
}

func (t *TimingStats) Record(duration time.Duration) {
	t.TotalTime += duration
	t.MoveCount++
}

// RecordPhase attributes the recorded duration to a named phase on top of
// the move totals.
func (t *TimingStats) RecordPhase(phase string, duration time.Duration) {
	t.Record(duration)
	if t.PerPhase == nil {
		t.PerPhase = map[string]time.Duration{}
	}
	t.PerPhase[phase] += duration
}

func (t *TimingStats) Average() time.Duration {
	if t.MoveCount == 0 {
		return 0
	}
	return t.TotalTime / time.Duration(t.MoveCount)
}

// Snapshot reports the totals in seconds, one phase_<name> key per phase.
func (t *TimingStats) Snapshot() map[string]float64 {
	data := map[string]float64{
		"total_time": t.TotalTime.Seconds(),
		"moves":      float64(t.MoveCount),
		"avg_time":   t.Average().Seconds(),
	}
	for phase, duration := range t.PerPhase {
		data["phase_"+phase] = duration.Seconds()
	}
	return data
}
