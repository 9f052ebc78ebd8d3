package agent

import (
	"container/heap"
	"math"

	"othello/game"
)

// AStar explores the move tree best-first, ordering the frontier by path
// cost plus the negated heuristic. Frontier states seen again at an equal
// or higher cost are discarded, and horizon or terminal states score the
// root move that led there.
type AStar struct {
	base
	depth     int
	heuristic game.Heuristic
}

func NewAStar(options ...Option) *AStar {
	s := settings{depth: DefaultAStarDepth}
	s.apply(options)
	return &AStar{base: newBase("AStar"), depth: s.depth, heuristic: s.heuristic}
}

func (a *AStar) SelectAction(state game.State) game.Action {
	defer a.track()()

	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.Pass
	}

	perspective := state.CurrentPlayer()
	pq := &frontier{}
	visited := map[game.State]int{}
	bestScore := map[game.Action]float64{}
	seq := 0

	push := func(cost int, root game.Action, st game.State) {
		priority := float64(cost) + a.estimate(st, perspective)
		heap.Push(pq, frontierItem{priority: priority, cost: cost, root: root, state: st, seq: seq})
		seq++
	}

	for _, action := range actions {
		push(1, action, state.Apply(action))
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		if item.cost > a.depth {
			continue
		}
		if prev, ok := visited[item.state]; ok && item.cost >= prev {
			continue
		}
		visited[item.state] = item.cost
		a.info.NodesExpanded++

		if item.state.IsTerminal() || item.cost == a.depth {
			value := item.state.Evaluate(perspective)
			if prev, ok := bestScore[item.root]; !ok || value > prev {
				bestScore[item.root] = value
			}
			continue
		}

		legal := item.state.LegalActions()
		if len(legal) == 0 {
			legal = []game.Action{game.Pass}
		}
		for _, move := range legal {
			push(item.cost+1, item.root, item.state.Apply(move))
		}
	}

	// Root moves are compared in board order, so equal scores resolve to
	// the lowest move.
	chosen := game.Pass
	best := math.Inf(-1)
	for _, action := range actions {
		if value, ok := bestScore[action]; ok && value > best {
			best = value
			chosen = action
		}
	}
	return chosen
}

// estimate negates the evaluation so better positions sort first in the
// min-ordered frontier.
func (a *AStar) estimate(state game.State, perspective game.Player) float64 {
	return -evaluate(state, perspective, a.heuristic)
}

type frontierItem struct {
	priority float64
	cost     int
	root     game.Action
	state    game.State
	seq      int
}

// frontier is a min-heap ordered by priority, then cost, then root move,
// then insertion order, which keeps pops deterministic.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}
	if f[i].root != f[j].root {
		return f[i].root < f[j].root
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
