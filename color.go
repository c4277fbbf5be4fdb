package attacktables

// Color selects between the two pawn directions. White pawns advance
// toward rank 8 (+1), black pawns toward rank 1 (-1).
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
