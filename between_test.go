package attacktables

import "testing"

func TestBetweenIdentity(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if got := Between(sq, sq); got != 0 {
			t.Errorf("Between(%v, %v) = %#x, want 0", sq, sq, uint64(got))
		}
	}
}

func TestBetweenSymmetry(t *testing.T) {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			if Between(sq1, sq2) != Between(sq2, sq1) {
				t.Errorf("Between(%v, %v) != Between(%v, %v)", sq1, sq2, sq2, sq1)
			}
		}
	}
}

func TestBetweenUnaligned(t *testing.T) {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			if alignedPair(sq1.File(), sq1.Rank(), sq2.File(), sq2.Rank()) {
				continue
			}
			if got := Between(sq1, sq2); got != 0 {
				t.Errorf("Between(%v, %v) = %#x for unaligned pair, want 0", sq1, sq2, uint64(got))
			}
		}
	}
}

func TestBetweenAdjacent(t *testing.T) {
	// Aligned pairs one king step apart have nothing between them.
	for sq := A1; sq <= H8; sq++ {
		for _, adj := range KingAttacks(sq).Squares() {
			if got := Between(sq, adj); got != 0 {
				t.Errorf("Between(%v, %v) = %#x for adjacent pair, want 0", sq, adj, uint64(got))
			}
		}
	}
}

func TestBetweenKnown(t *testing.T) {
	tests := []struct {
		sq1, sq2 Square
		want     Bitboard
	}{
		{A1, H8, 0x0040201008040200}, // b2..g7
		{A1, A8, 0x0001010101010100}, // a2..a7
		{A4, H4, 0x000000007e000000}, // b4..g4
		{E4, E6, 0x0000001000000000}, // e5
		{B2, G7, 0x0000201008040000}, // c3, d4, e5, f6
		{E4, F6, 0},                  // knight relation, unaligned
		{A1, C2, 0},                  // unaligned
	}
	for _, tt := range tests {
		if got := Between(tt.sq1, tt.sq2); got != tt.want {
			t.Errorf("Between(%v, %v) = %#x, want %#x", tt.sq1, tt.sq2, uint64(got), uint64(tt.want))
		}
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		sq1, sq2 Square
		want     Bitboard
	}{
		{A1, H8, 0x8040201008040201}, // main diagonal
		{B2, G7, 0x8040201008040201}, // interior pair, same full line
		{E4, E5, FileE},
		{A4, C4, Rank4},
		{C1, A3, 0x0000000000010204}, // c1, b2, a3 anti-diagonal
		{E4, F6, 0},                  // unaligned
		{D4, D4, 0},                  // identity
	}
	for _, tt := range tests {
		if got := Line(tt.sq1, tt.sq2); got != tt.want {
			t.Errorf("Line(%v, %v) = %#x, want %#x", tt.sq1, tt.sq2, uint64(got), uint64(tt.want))
		}
	}
}

// TestBetweenOracle recomputes every entry by classifying the pair as
// same-rank, same-file, or diagonal and enumerating that class directly,
// independent of the sign-step walk that builds the table.
func TestBetweenOracle(t *testing.T) {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			f1, r1 := sq1.File(), sq1.Rank()
			f2, r2 := sq2.File(), sq2.Rank()

			var want Bitboard
			switch {
			case sq1 == sq2:
			case r1 == r2:
				for f := min(f1, f2) + 1; f < max(f1, f2); f++ {
					want |= SquareBB(NewSquare(f, r1))
				}
			case f1 == f2:
				for r := min(r1, r2) + 1; r < max(r1, r2); r++ {
					want |= SquareBB(NewSquare(f1, r))
				}
			case abs(f2-f1) == abs(r2-r1):
				df, dr := sign(f2-f1), sign(r2-r1)
				for i := 1; i < abs(f2-f1); i++ {
					want |= SquareBB(NewSquare(f1+i*df, r1+i*dr))
				}
			}

			if got := Between(sq1, sq2); got != want {
				t.Errorf("Between(%v, %v) = %#x, oracle %#x", sq1, sq2, uint64(got), uint64(want))
			}
		}
	}
}

func TestLineCoversBetween(t *testing.T) {
	for sq1 := A1; sq1 <= H8; sq1++ {
		for sq2 := A1; sq2 <= H8; sq2++ {
			if sq1 == sq2 {
				continue
			}
			line := Line(sq1, sq2)
			between := Between(sq1, sq2)
			if line == 0 {
				if between != 0 {
					t.Errorf("Between(%v, %v) nonzero without a line", sq1, sq2)
				}
				continue
			}
			if !line.IsSet(sq1) || !line.IsSet(sq2) {
				t.Errorf("Line(%v, %v) = %#x misses an endpoint", sq1, sq2, uint64(line))
			}
			if between&^line != 0 {
				t.Errorf("Between(%v, %v) leaves Line: %#x vs %#x", sq1, sq2, uint64(between), uint64(line))
			}
		}
	}
}

func TestAligned(t *testing.T) {
	tests := []struct {
		sq1, sq2, sq3 Square
		want          bool
	}{
		{A1, H8, D4, true},
		{A1, H8, E4, false},
		{A1, A8, A5, true},
		{B1, G1, D1, true},
		{B1, G1, D2, false},
		{C1, A3, B2, true},
	}
	for _, tt := range tests {
		if got := Aligned(tt.sq1, tt.sq2, tt.sq3); got != tt.want {
			t.Errorf("Aligned(%v, %v, %v) = %v, want %v", tt.sq1, tt.sq2, tt.sq3, got, tt.want)
		}
	}
}
