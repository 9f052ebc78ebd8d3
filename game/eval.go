package game

import "math/bits"

// Weights of the blended evaluation. Mobility dominates because disc
// counts are misleading until the endgame.
const (
	parityWeight     = 0.2
	mobilityWeight   = 0.4
	cornersWeight    = 0.3
	positionalWeight = 0.1
)

const cornerWeight = 25.0

var cornerBits = [4]uint64{
	1 << 0,
	1 << (BoardSize - 1),
	1 << (BoardSize * (BoardSize - 1)),
	1 << (BoardSize*BoardSize - 1),
}

// positionalWeights values corners highest and penalizes the X and C
// squares next to them; edges are mildly positive, the interior mildly
// negative.
var positionalWeights = [BoardSize][BoardSize]float64{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// EvaluateState combines the four heuristics into a single score from the
// given player's perspective. The result is not bounded to [-1, 1].
func EvaluateState(gs GameState, player Player) float64 {
	return parityWeight*PieceParity(gs, player) +
		mobilityWeight*Mobility(gs, player) +
		cornersWeight*CornerControl(gs, player) +
		positionalWeight*PositionalScore(gs, player)
}

// PieceParity is the normalized disc-count difference. The denominator is
// floored at 1 to guard empty boards.
func PieceParity(gs GameState, player Player) float64 {
	b, w := Score(gs.black, gs.white)
	diff := b - w
	if player == White {
		diff = w - b
	}
	return float64(diff) / float64(max(1, b+w))
}

// Mobility is the normalized legal-move-count difference.
func Mobility(gs GameState, player Player) float64 {
	own, opp := gs.black, gs.white
	if player == White {
		own, opp = gs.white, gs.black
	}
	ownMoves := bits.OnesCount64(LegalMovesMask(own, opp))
	oppMoves := bits.OnesCount64(LegalMovesMask(opp, own))
	return float64(ownMoves-oppMoves) / float64(max(1, ownMoves+oppMoves))
}

// CornerControl scores corner occupancy, +-25 per corner, normalized so
// owning all four corners yields +1.
func CornerControl(gs GameState, player Player) float64 {
	score := 0.0
	for _, bit := range cornerBits {
		switch {
		case gs.black&bit != 0:
			if player == Black {
				score += cornerWeight
			} else {
				score -= cornerWeight
			}
		case gs.white&bit != 0:
			if player == White {
				score += cornerWeight
			} else {
				score -= cornerWeight
			}
		}
	}
	return score / (cornerWeight * float64(len(cornerBits)))
}

// PositionalScore is the weight-table dot product with +1 per own disc and
// -1 per opponent disc, normalized by the corner weight.
func PositionalScore(gs GameState, player Player) float64 {
	score := 0.0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			bit := uint64(1) << uint(r*BoardSize+c)
			switch {
			case gs.black&bit != 0:
				if player == Black {
					score += positionalWeights[r][c]
				} else {
					score -= positionalWeights[r][c]
				}
			case gs.white&bit != 0:
				if player == White {
					score += positionalWeights[r][c]
				} else {
					score -= positionalWeights[r][c]
				}
			}
		}
	}
	return score / 100.0
}
