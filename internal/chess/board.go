package chess

// Board is an 8x8 grid of squares indexed Board[y][x], with y = 0 the rank
// nearest White's back rank. It is an array value: assigning or passing a
// Board copies every square, so two boards never share storage.
type Board [BoardSize][BoardSize]Square

// EmptyBoard returns a board with every square empty.
func EmptyBoard() Board {
	return Board{}
}

// At returns the content of the square at c. c must be valid.
func (b Board) At(c Coord) Square {
	return b[c.Y][c.X]
}

// With returns a copy of the board with the square at c replaced by sq.
// The receiver is left untouched.
func (b Board) With(c Coord, sq Square) Board {
	b[c.Y][c.X] = sq
	return b
}

// Count returns the number of occupied squares.
func (b Board) Count() int {
	n := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if !b[y][x].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// CastlingRights records, per colour and side, whether castling remains
// available. Flags are only ever cleared, never set, by move application.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// InitialCastlingRights returns all four flags set, as in the start position.
func InitialCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// WithoutColour returns the rights with both flags of colour cleared.
func (cr CastlingRights) WithoutColour(colour Colour) CastlingRights {
	if colour == White {
		cr.WhiteKingside = false
		cr.WhiteQueenside = false
	} else {
		cr.BlackKingside = false
		cr.BlackQueenside = false
	}
	return cr
}

// WithoutSide returns the rights with a single flag cleared.
func (cr CastlingRights) WithoutSide(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		cr.WhiteKingside = false
	case colour == White:
		cr.WhiteQueenside = false
	case kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
	return cr
}

// Has reports whether the given flag is still set.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return cr.WhiteKingside
	case colour == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// String renders the rights in FEN style ("KQkq", "-" when none remain).
func (cr CastlingRights) String() string {
	var s []byte
	if cr.WhiteKingside {
		s = append(s, 'K')
	}
	if cr.WhiteQueenside {
		s = append(s, 'Q')
	}
	if cr.BlackKingside {
		s = append(s, 'k')
	}
	if cr.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// CornerRight maps a rook's home corner to the castling flag it guards.
// ok is false for any other square.
func CornerRight(c Coord) (colour Colour, kingside bool, ok bool) {
	switch c {
	case Coord{X: 0, Y: 0}:
		return White, false, true
	case Coord{X: 7, Y: 0}:
		return White, true, true
	case Coord{X: 0, Y: 7}:
		return Black, false, true
	case Coord{X: 7, Y: 7}:
		return Black, true, true
	}
	return Black, false, false
}
