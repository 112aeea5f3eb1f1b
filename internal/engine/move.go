package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessposition-go/internal/chess"
	"github.com/lgbarn/chessposition-go/internal/errors"
)

// MoveKind tags which variant a Move value holds.
type MoveKind int

const (
	Normal MoveKind = iota
	EnPassant
	// Castle and Promote are reserved; applying them fails with
	// errors.ErrUnsupportedMove until their square rules are defined.
	Castle
	Promote
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promote:
		return "Promote"
	default:
		return "Unknown"
	}
}

// Move describes a single state transition. It is a transient command
// value: the engine queries it once per square and once for castling rights.
type Move struct {
	Kind MoveKind
	From chess.Coord
	To   chess.Coord
	// Captured is the square of the pawn removed by an en passant capture.
	// Unused by other kinds.
	Captured chess.Coord
}

// NewNormalMove creates a move of the piece on from to to, capturing
// whatever stands on to.
func NewNormalMove(from, to chess.Coord) Move {
	return Move{Kind: Normal, From: from, To: to}
}

// NewEnPassant creates an en passant capture. captured is the square of
// the pawn being removed and must differ from to.
func NewEnPassant(from, to, captured chess.Coord) Move {
	return Move{Kind: EnPassant, From: from, To: to, Captured: captured}
}

// Validate checks that every square the move uses lies on the board.
func (m Move) Validate() error {
	switch m.Kind {
	case Normal:
	case EnPassant:
		if err := checkCoord("captured", m.Captured); err != nil {
			return err
		}
		if m.Captured == m.To {
			return &errors.CoordinateError{
				Err:   errors.Wrap(errors.ErrInvalidCoordinate, "captured square equals destination"),
				Field: "captured",
				X:     m.Captured.X,
				Y:     m.Captured.Y,
			}
		}
	default:
		return errors.Wrapf(errors.ErrUnsupportedMove, "%s", m.Kind)
	}
	if err := checkCoord("from", m.From); err != nil {
		return err
	}
	return checkCoord("to", m.To)
}

func checkCoord(field string, c chess.Coord) error {
	if c.Valid() {
		return nil
	}
	return &errors.CoordinateError{Err: errors.ErrInvalidCoordinate, Field: field, X: c.X, Y: c.Y}
}

// UpdateSquare returns what belongs on square at after the move, computed
// from the old board only. Call order across squares does not matter.
func (m Move) UpdateSquare(old chess.Board, at chess.Coord) (chess.Square, error) {
	switch m.Kind {
	case Normal:
		switch at {
		case m.From:
			return chess.EmptySquare, nil
		case m.To:
			return old.At(m.From), nil
		}
		return old.At(at), nil

	case EnPassant:
		switch at {
		case m.From, m.Captured:
			return chess.EmptySquare, nil
		case m.To:
			return old.At(m.From), nil
		}
		return old.At(at), nil

	case Castle, Promote:
		return chess.EmptySquare, errors.Wrapf(errors.ErrUnsupportedMove, "%s", m.Kind)

	default:
		return chess.EmptySquare, errors.Wrapf(errors.ErrUnsupportedMove, "kind %d", int(m.Kind))
	}
}

// UpdatedCastlingRights returns the castling rights after the move, as a
// function of the old board and old rights only.
func (m Move) UpdatedCastlingRights(old chess.Board, rights chess.CastlingRights, policy CastlingPolicy) (chess.CastlingRights, error) {
	switch m.Kind {
	case Normal:
		return normalCastlingRights(old, rights, m.From, m.To, policy), nil

	case EnPassant:
		return rights, nil

	case Castle, Promote:
		return rights, errors.Wrapf(errors.ErrUnsupportedMove, "%s", m.Kind)

	default:
		return rights, errors.Wrapf(errors.ErrUnsupportedMove, "kind %d", int(m.Kind))
	}
}

// String returns the move in coordinate notation: "f2f4", or "f5g6ep" for
// en passant. An en passant capture whose captured square is not the usual
// one carries it explicitly, e.g. "f5g6ep:g4".
func (m Move) String() string {
	switch m.Kind {
	case Normal:
		return m.From.String() + m.To.String()
	case EnPassant:
		s := m.From.String() + m.To.String() + "ep"
		if m.Captured != defaultCaptured(m.From, m.To) {
			s += ":" + m.Captured.String()
		}
		return s
	default:
		return fmt.Sprintf("%s(%s%s)", m.Kind, m.From, m.To)
	}
}

// defaultCaptured is the square an en passant capture removes in real
// chess: the destination file on the origin rank.
func defaultCaptured(from, to chess.Coord) chess.Coord {
	return chess.Sq(to.X, from.Y)
}

// ParseMove decodes coordinate notation as produced by Move.String:
// "e2e4" for a normal move, "f5g6ep" or "f5g6ep:g5" for en passant.
func ParseMove(text string) (Move, error) {
	s := strings.TrimSpace(text)
	if len(s) < 4 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	from, okFrom := chess.ParseCoord(s[0:2])
	to, okTo := chess.ParseCoord(s[2:4])
	if !okFrom || !okTo {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	rest := s[4:]
	switch {
	case rest == "":
		return NewNormalMove(from, to), nil
	case rest == "ep":
		return NewEnPassant(from, to, defaultCaptured(from, to)), nil
	case strings.HasPrefix(rest, "ep:"):
		captured, ok := chess.ParseCoord(rest[3:])
		if !ok {
			return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "captured square in %q", text)
		}
		return NewEnPassant(from, to, captured), nil
	}
	return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
}

// ParseMoves decodes a list of moves separated by spaces or commas.
func ParseMoves(text string) ([]Move, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	moves := make([]Move, 0, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, &errors.MoveError{Err: err, Index: i + 1, MoveText: f}
		}
		moves = append(moves, m)
	}
	return moves, nil
}
