package game

import "math/bits"

// Bitboard rules engine. Square i = row*8 + col maps to bit i, so bit 0 is
// a1 and bit 63 is h8. All operations are pure functions over the two
// occupancy masks and allocate nothing on the hot path.

const BoardSize = 8

const (
	aFile uint64 = 0x0101010101010101
	hFile uint64 = 0x8080808080808080
)

// Direction shifts. Horizontal and diagonal shifts mask out the wrapping
// file before shifting so discs never cross the board edge.

func shiftN(x uint64) uint64 { return x << BoardSize }

func shiftS(x uint64) uint64 { return x >> BoardSize }

func shiftE(x uint64) uint64 { return (x &^ hFile) << 1 }

func shiftW(x uint64) uint64 { return (x &^ aFile) >> 1 }

func shiftNE(x uint64) uint64 { return (x &^ hFile) << 9 }

func shiftNW(x uint64) uint64 { return (x &^ aFile) << 7 }

func shiftSE(x uint64) uint64 { return (x &^ hFile) >> 7 }

func shiftSW(x uint64) uint64 { return (x &^ aFile) >> 9 }

var directions = [8]func(uint64) uint64{
	shiftN, shiftS, shiftE, shiftW, shiftNE, shiftNW, shiftSE, shiftSW,
}

// StartingPosition returns the canonical four-disc opening with black to
// move.
func StartingPosition() (black, white uint64, player Player) {
	black = 1<<(3*BoardSize+4) | 1<<(4*BoardSize+3)
	white = 1<<(3*BoardSize+3) | 1<<(4*BoardSize+4)
	return black, white, Black
}

// LegalMovesMask returns the squares own may play on. Per direction it
// walks up to six contiguous opp discs starting from every own disc, then
// marks the first empty square past the run.
func LegalMovesMask(own, opp uint64) uint64 {
	empty := ^(own | opp)
	var moves uint64

	for _, shift := range directions {
		t := shift(own) & opp
		t |= shift(t) & opp
		t |= shift(t) & opp
		t |= shift(t) & opp
		t |= shift(t) & opp
		t |= shift(t) & opp
		moves |= shift(t) & empty
	}

	return moves
}

// LegalCoordinateActions lists the set squares of the legal-move mask in
// ascending order. The Pass sentinel is never included; the state layer
// adds it when this list is empty.
func LegalCoordinateActions(own, opp uint64) []Action {
	mask := LegalMovesMask(own, opp)
	actions := make([]Action, 0, bits.OnesCount64(mask))
	for mask != 0 {
		idx := bits.TrailingZeros64(mask)
		actions = append(actions, Action(idx))
		mask &= mask - 1
	}
	return actions
}

// FlipsForMove returns the opponent discs captured by playing moveBit. Per
// direction it accumulates contiguous opp discs and commits the run only
// when it ends on an own disc.
func FlipsForMove(moveBit, own, opp uint64) uint64 {
	var flips uint64
	for _, shift := range directions {
		x := shift(moveBit)
		var captured uint64
		for x != 0 && x&opp != 0 {
			captured |= x
			x = shift(x)
		}
		if x&own != 0 {
			flips |= captured
		}
	}
	return flips
}

// ApplyAction resolves one ply. A pass flips the side to move with no mask
// change. A coordinate move that is not legal silently degrades to a pass:
// callers must not assume moves are validated.
func ApplyAction(black, white uint64, player Player, a Action) (uint64, uint64, Player) {
	if a == Pass {
		return black, white, player.Opponent()
	}

	own, opp := black, white
	if player == White {
		own, opp = white, black
	}

	moveBit := a.Bit()
	if moveBit&LegalMovesMask(own, opp) == 0 {
		return black, white, player.Opponent()
	}

	flips := FlipsForMove(moveBit, own, opp)
	own |= moveBit | flips
	opp ^= flips

	if player == Black {
		return own, opp, White
	}
	return opp, own, Black
}

// IsTerminal reports whether the game is over: the board is full or
// neither side has a legal coordinate move.
func IsTerminal(black, white uint64, player Player) bool {
	if black|white == ^uint64(0) {
		return true
	}
	own, opp := black, white
	if player == White {
		own, opp = white, black
	}
	if LegalMovesMask(own, opp) != 0 {
		return false
	}
	return LegalMovesMask(opp, own) == 0
}

// Score counts the discs of each side.
func Score(black, white uint64) (int, int) {
	return bits.OnesCount64(black), bits.OnesCount64(white)
}

// Winner returns the side with the disc majority, or None on a tie.
func Winner(black, white uint64) Player {
	b, w := Score(black, white)
	switch {
	case b > w:
		return Black
	case w > b:
		return White
	}
	return None
}

// BoardSlice expands the masks into 64 squares of +1 (black), -1 (white)
// or 0 (empty), indexed row-major.
func BoardSlice(black, white uint64) []int8 {
	board := make([]int8, BoardSize*BoardSize)
	for i := range board {
		bit := uint64(1) << uint(i)
		switch {
		case black&bit != 0:
			board[i] = int8(Black)
		case white&bit != 0:
			board[i] = int8(White)
		}
	}
	return board
}
