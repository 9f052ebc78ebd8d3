package searcher

import "othello/game"

// edge pairs an action with the child it leads to, kept in expansion order.
type edge struct {
	action game.Action
	child  int
}

// node is one tree position. Nodes live in the tree's arena and refer to
// each other by index, so growing the tree never invalidates a parent link.
type node struct {
	state    game.State
	parent   int
	children []edge
	untried  []game.Action
	ready    bool
	visits   int
	value    float64
}

// q is the mean value of the node from the perspective of its side to move.
func (n *node) q() float64 {
	if n.visits == 0 {
		return 0
	}
	return n.value / float64(n.visits)
}

type tree struct {
	nodes []node
}

func newTree(root game.State) *tree {
	t := &tree{nodes: make([]node, 0, 256)}
	t.nodes = append(t.nodes, node{state: root, parent: -1})
	return t
}

// materialize fills in the node's untried actions on first touch.
func (t *tree) materialize(id int) {
	n := &t.nodes[id]
	if n.ready {
		return
	}
	n.untried = n.state.LegalActions()
	n.ready = true
}

func (t *tree) addChild(parent int, action game.Action, state game.State) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{state: state, parent: parent})
	// Re-take the parent pointer: the append above may move the arena.
	p := &t.nodes[parent]
	p.children = append(p.children, edge{action: action, child: id})
	return id
}

// policy is the visit-count distribution over the root's actions.
func (t *tree) policy() map[game.Action]float64 {
	root := &t.nodes[0]

	total := 0
	for _, e := range root.children {
		total += t.nodes[e.child].visits
	}
	if total <= 0 {
		return map[game.Action]float64{}
	}

	distribution := make(map[game.Action]float64, len(root.children))
	for _, e := range root.children {
		distribution[e.action] = float64(t.nodes[e.child].visits) / float64(total)
	}
	return distribution
}
