// Package chess provides the core chess value types: pieces, squares,
// coordinates, boards and castling rights.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceName identifies the kind of a piece, independent of its colour.
type PieceName int

const (
	King PieceName = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumPieceNames
)

var pieceNames = [NumPieceNames]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

// Uppercase FEN letters indexed by PieceName.
var pieceLetters = [NumPieceNames]byte{'K', 'Q', 'R', 'B', 'N', 'P'}

// String returns the string representation of a piece name.
func (n PieceName) String() string {
	if n >= 0 && n < NumPieceNames {
		return pieceNames[n]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter of a piece name.
func (n PieceName) Letter() byte {
	if n >= 0 && n < NumPieceNames {
		return pieceLetters[n]
	}
	return '?'
}

// Piece is a coloured piece. It is a plain value and compares with ==.
type Piece struct {
	Colour Colour
	Name   PieceName
}

// W creates a white piece.
func W(name PieceName) Piece {
	return Piece{Colour: White, Name: name}
}

// B creates a black piece.
func B(name PieceName) Piece {
	return Piece{Colour: Black, Name: name}
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Name.Letter()
	if p.Colour == Black && letter != '?' {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Name.String()
}

// PieceFromLetter decodes a FEN piece letter. Uppercase letters are White,
// lowercase Black. ok is false for anything that is not one of kqrbnp.
func PieceFromLetter(c rune) (p Piece, ok bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	for name, letter := range pieceLetters {
		if rune(letter) == c {
			return Piece{Colour: colour, Name: PieceName(name)}, true
		}
	}
	return Piece{}, false
}

// Square is the content of one board square: either empty or one piece.
// The zero value is an empty square.
type Square struct {
	piece    Piece
	occupied bool
}

// EmptySquare is the content of a square with no piece on it.
var EmptySquare = Square{}

// Occupied returns a square holding p.
func Occupied(p Piece) Square {
	return Square{piece: p, occupied: true}
}

// IsEmpty returns true if no piece stands on the square.
func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Piece returns the piece on the square and whether there is one.
func (s Square) Piece() (Piece, bool) {
	return s.piece, s.occupied
}

// Equal reports whether both squares hold the same content.
func (s Square) Equal(o Square) bool {
	return s == o
}

// Letter returns the piece letter, or a space for an empty square.
func (s Square) Letter() byte {
	if !s.occupied {
		return ' '
	}
	return s.piece.Letter()
}

// String returns the piece description or "Empty".
func (s Square) String() string {
	if !s.occupied {
		return "Empty"
	}
	return s.piece.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Coord addresses a square by file X (0 = a file) and rank Y (0 = rank 1).
type Coord struct {
	X int
	Y int
}

// Sq builds a coordinate from file and rank indices.
func Sq(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Valid reports whether both indices lie on the board.
func (c Coord) Valid() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// String returns the algebraic name of the square, e.g. "f2".
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string([]byte{byte(FileBase + c.X), byte(RankBase + c.Y)})
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	c := Coord{X: int(s[0]) - FileBase, Y: int(s[1]) - RankBase}
	if !c.Valid() {
		return Coord{}, false
	}
	return c, true
}
