package attacktables

// alignedPair reports whether two distinct squares share a rank, file,
// or diagonal. Identical coordinates count as none of the three.
func alignedPair(f1, r1, f2, r2 int) bool {
	if f1 == f2 && r1 == r2 {
		return false
	}
	return f1 == f2 || r1 == r2 || abs(f2-f1) == abs(r2-r1)
}

// initBetween fills betweenBB with the squares strictly between every
// aligned pair of squares. Unaligned, identical, and adjacent pairs stay
// zero. The table is symmetric: the set between two squares does not
// depend on traversal direction.
func initBetween() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			f1, r1 := sq1.File(), sq1.Rank()
			f2, r2 := sq2.File(), sq2.Rank()

			if !alignedPair(f1, r1, f2, r2) {
				continue
			}

			df := sign(f2 - f1)
			dr := sign(r2 - r1)

			var between Bitboard
			for f, r := f1+df, r1+dr; f != f2 || r != r2; f, r = f+df, r+dr {
				between |= SquareBB(NewSquare(f, r))
			}
			betweenBB[sq1][sq2] = between
		}
	}
}

// initLine fills lineBB with the full line through every aligned pair,
// endpoints included, extended to both board edges.
func initLine() {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			f1, r1 := sq1.File(), sq1.Rank()
			f2, r2 := sq2.File(), sq2.Rank()

			if !alignedPair(f1, r1, f2, r2) {
				continue
			}

			df := sign(f2 - f1)
			dr := sign(r2 - r1)

			var line Bitboard
			for f, r := f1, r1; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f-df, r-dr {
				line |= SquareBB(NewSquare(f, r))
			}
			for f, r := f1+df, r1+dr; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+df, r+dr {
				line |= SquareBB(NewSquare(f, r))
			}
			lineBB[sq1][sq2] = line
		}
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Between returns the bitboard of squares strictly between two squares.
// Empty when the squares are identical, adjacent, or not on a shared
// rank, file, or diagonal. Between(s, t) == Between(t, s) for all pairs.
func Between(sq1, sq2 Square) Bitboard {
	return betweenBB[sq1][sq2]
}

// Line returns the bitboard of the full line through two squares,
// endpoints included. Empty if the squares are not aligned.
func Line(sq1, sq2 Square) Bitboard {
	return lineBB[sq1][sq2]
}

// Aligned returns true if three squares are on the same line.
func Aligned(sq1, sq2, sq3 Square) bool {
	return lineBB[sq1][sq2]&SquareBB(sq3) != 0
}
