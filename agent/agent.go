package agent

import (
	"time"

	"othello/game"
)

// Agent is a strategy that picks one action per position. Implementations
// keep per-instance search state and a per-instance RNG, so a single agent
// must not be shared across concurrent matches.
type Agent interface {
	// SelectAction returns the move to play. Positions without a legal
	// coordinate move yield game.Pass.
	SelectAction(state game.State) game.Action
	// Info reports the metrics collected since the last Reset.
	Info() *Info
	// Reset clears collected metrics between games.
	Reset()
	Name() string
}

// Info collects the metrics an agent reports after play.
type Info struct {
	Timing        TimingStats
	NodesExpanded int64
	Extra         map[string]float64
}

func NewInfo() *Info {
	return &Info{Extra: map[string]float64{}}
}

// Snapshot flattens the collected metrics into one report map.
func (i *Info) Snapshot() map[string]float64 {
	data := map[string]float64{
		"nodes_expanded": float64(i.NodesExpanded),
	}
	for key, value := range i.Timing.Snapshot() {
		data[key] = value
	}
	for key, value := range i.Extra {
		data[key] = value
	}
	return data
}

// base carries the identity and metrics shared by every agent.
type base struct {
	name string
	info *Info
}

func newBase(name string) base {
	return base{name: name, info: NewInfo()}
}

func (b *base) Name() string { return b.name }

func (b *base) Info() *Info { return b.info }

func (b *base) Reset() {
	b.info = NewInfo()
}

// track times one SelectAction invocation:
//
//	defer a.track()()
func (b *base) track() func() {
	start := time.Now()
	return func() {
		b.info.Timing.Record(time.Since(start))
	}
}

// evaluate scores a position with the agent's heuristic, falling back to
// the state's own evaluation.
func evaluate(state game.State, perspective game.Player, heuristic game.Heuristic) float64 {
	if heuristic != nil {
		return heuristic(state, perspective)
	}
	return state.Evaluate(perspective)
}
