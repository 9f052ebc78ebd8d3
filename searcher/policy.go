package searcher

import "math"

// Hyperparameters for MCTS

const DefaultIterations = 400
const DefaultExploration = 1.4 // Exploration constant
const DefaultRolloutLimit = 150

// visitEpsilon keeps the exploration term finite for unvisited children.
const visitEpsilon = 1e-9

type uct struct {
	c         float64
	numerator float64
}

func newUCT(c float64, parentVisits int) uct {
	if parentVisits < 0 {
		panic("parent visits cannot be negative")
	}
	return uct{c: c, numerator: math.Log(float64(parentVisits) + 1)}
}

func (u uct) evaluate(q float64, visits int) float64 {
	// UCB = q + c*sqrt(ln(N+1)/(n+eps))
	return q + u.c*math.Sqrt(u.numerator/(float64(visits)+visitEpsilon))
}
