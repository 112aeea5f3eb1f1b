// Package engine applies moves to chess positions and converts positions
// to and from FEN placement text.
package engine

import (
	"strings"

	"github.com/lgbarn/chessposition-go/internal/chess"
	"github.com/lgbarn/chessposition-go/internal/errors"
)

// StartPlacement is the FEN placement field of the standard starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FromFEN creates a position from a FEN placement field. If a full FEN
// string is given only the text before the first space is read; castling
// rights always start with all four flags set.
//
// Faults are reported as *errors.ParseError and no position is returned
// with them.
func FromFEN(fen string) (Position, error) {
	placement := fen
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		placement = fen[:i]
	}
	if placement == "" {
		return Position{}, errors.Wrap(errors.ErrInvalidFEN, "empty placement")
	}

	board, err := parsePlacement(placement)
	if err != nil {
		return Position{}, err
	}
	return Position{Board: board, Castling: chess.InitialCastlingRights()}, nil
}

// MustFromFEN is like FromFEN but panics on error. It is intended for
// placements known at compile time.
func MustFromFEN(fen string) Position {
	pos, err := FromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// StartPos returns the standard starting position.
func StartPos() Position {
	return MustFromFEN(StartPlacement)
}

// parsePlacement scans the placement left to right from a8.
func parsePlacement(placement string) (chess.Board, error) {
	board := chess.EmptyBoard()
	x, y := 0, chess.BoardSize-1

	fault := func(kind errors.ParseErrorKind, offset int, got rune) error {
		return &errors.ParseError{
			Err:    errors.ErrInvalidFEN,
			Kind:   kind,
			Input:  placement,
			Offset: offset,
			Got:    string(got),
		}
	}

	for i, c := range placement {
		switch {
		case c == '/':
			if y == 0 {
				return chess.Board{}, fault(errors.RankOverflow, i, c)
			}
			x = 0
			y--
		case c >= '0' && c <= '9':
			x += int(c - '0')
			if x > chess.BoardSize {
				return chess.Board{}, fault(errors.RankOverflow, i, c)
			}
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return chess.Board{}, fault(errors.UnknownPieceLetter, i, c)
			}
			if x >= chess.BoardSize {
				return chess.Board{}, fault(errors.RankOverflow, i, c)
			}
			board[y][x] = chess.Occupied(piece)
			x++
		}
	}
	return board, nil
}

// Placement converts a board to its FEN placement field.
func Placement(board chess.Board) string {
	var sb strings.Builder

	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			sq := board[y][x]
			if sq.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(sq.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// Placement returns the FEN placement field of the position.
func (p Position) Placement() string {
	return Placement(p.Board)
}
