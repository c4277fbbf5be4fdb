package attacktables

// Pre-computed attack tables for the leaper pieces
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnCaptures  [2][64]Bitboard // [Color][Square] - capture targets
	pawnAttackers [2][64]Bitboard // [Color][Square] - attacker origins

	// Between and Line bitboards for aligned square pairs
	betweenBB [64][64]Bitboard // Squares strictly between two squares
	lineBB    [64][64]Bitboard // Full line through two squares (including endpoints)
)

func init() {
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initBetween()
	initLine()
}

// Leaper offsets as (rank delta, file delta) pairs.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// leaperAttacks accumulates the offset targets that stay on the board.
// Out-of-board candidates are skipped, never wrapped.
func leaperAttacks(sq Square, offsets [8][2]int) Bitboard {
	r, f := sq.Rank(), sq.File()
	var bb Bitboard
	for _, d := range offsets {
		r0, f0 := r+d[0], f+d[1]
		if r0 < 0 || r0 > 7 || f0 < 0 || f0 > 7 {
			continue
		}
		bb |= SquareBB(NewSquare(f0, r0))
	}
	return bb
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		knightAttacks[sq] = leaperAttacks(sq, knightOffsets)
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		kingAttacks[sq] = leaperAttacks(sq, kingOffsets)
	}
}

// initPawnAttacks fills the four pawn tables. Capture tables are zero on
// ranks 1 and 8, where no pawn can stand. Attacker-origin tables skip
// only the rank whose forward step leaves the board: the queried square
// itself may legitimately sit on a back rank.
func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		r := sq.Rank()
		if r != 0 && r != 7 {
			pawnCaptures[White][sq] = pawnSpan(sq, 1)
			pawnCaptures[Black][sq] = pawnSpan(sq, -1)
		}
		// White pawns attack upward, so white attacker origins sit one
		// rank below the queried square; black origins one rank above.
		if r != 0 {
			pawnAttackers[White][sq] = pawnSpan(sq, -1)
		}
		if r != 7 {
			pawnAttackers[Black][sq] = pawnSpan(sq, 1)
		}
	}
}

// pawnSpan returns the two diagonal squares one rank toward dir, clipped
// at the a- and h-file edges. The per-table rank exclusions keep the dir
// step on the board.
func pawnSpan(sq Square, dir int) Bitboard {
	r, f := sq.Rank()+dir, sq.File()
	var bb Bitboard
	if f > 0 {
		bb |= SquareBB(NewSquare(f-1, r))
	}
	if f < 7 {
		bb |= SquareBB(NewSquare(f+1, r))
	}
	return bb
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnCaptures returns the squares a pawn of the given color on sq can
// capture into. Zero for squares on ranks 1 and 8.
func PawnCaptures(sq Square, c Color) Bitboard {
	return pawnCaptures[c][sq]
}

// PawnAttackers returns the squares from which a pawn of the given color
// would attack sq.
func PawnAttackers(sq Square, c Color) Bitboard {
	return pawnAttackers[c][sq]
}
