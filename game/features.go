package game

// Planes converts a position into the two 8x8 input planes consumed by
// neural trainers: own-disc occupancy first, opponent-disc occupancy
// second, both from the side to move's perspective.
func Planes(gs GameState) [2][BoardSize][BoardSize]float32 {
	var planes [2][BoardSize][BoardSize]float32
	board := gs.Board()
	me := int8(gs.player)
	for i, piece := range board {
		r, c := i/BoardSize, i%BoardSize
		switch piece {
		case me:
			planes[0][r][c] = 1
		case -me:
			planes[1][r][c] = 1
		}
	}
	return planes
}
