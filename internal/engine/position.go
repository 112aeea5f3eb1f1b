package engine

import (
	"github.com/lgbarn/chessposition-go/internal/chess"
	"github.com/lgbarn/chessposition-go/internal/errors"
)

// Position is the complete chess state: piece placement plus castling
// rights. It is a value; Apply returns a new Position and never modifies
// the one it is called on.
type Position struct {
	Board    chess.Board
	Castling chess.CastlingRights
}

// applyConfig holds the settings collected from ApplyOptions.
type applyConfig struct {
	castling CastlingPolicy
}

// ApplyOption configures move application.
type ApplyOption func(*applyConfig)

// WithRookCornerRevocation also revokes a castling flag when its rook
// corner is vacated or captured on.
func WithRookCornerRevocation() ApplyOption {
	return func(c *applyConfig) {
		c.castling = KingAndRookCorners
	}
}

// WithCastlingPolicy sets the castling policy explicitly.
func WithCastlingPolicy(p CastlingPolicy) ApplyOption {
	return func(c *applyConfig) {
		c.castling = p
	}
}

// Apply returns the position reached by playing m. The new board is built
// square by square from the old board; nothing reads the board under
// construction.
func (p Position) Apply(m Move, opts ...ApplyOption) (Position, error) {
	cfg := applyConfig{castling: KingMovesOnly}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := m.Validate(); err != nil {
		return Position{}, err
	}

	board := chess.EmptyBoard()
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			sq, err := m.UpdateSquare(p.Board, chess.Sq(x, y))
			if err != nil {
				return Position{}, err
			}
			board[y][x] = sq
		}
	}

	rights, err := m.UpdatedCastlingRights(p.Board, p.Castling, cfg.castling)
	if err != nil {
		return Position{}, err
	}

	return Position{Board: board, Castling: rights}, nil
}

// MakeMove is a synonym for Apply.
func (p Position) MakeMove(m Move, opts ...ApplyOption) (Position, error) {
	return p.Apply(m, opts...)
}

// ApplyAll plays moves in order. A failure is reported as *errors.MoveError
// carrying the 1-based index of the offending move.
func (p Position) ApplyAll(moves []Move, opts ...ApplyOption) (Position, error) {
	current := p
	for i, m := range moves {
		next, err := current.Apply(m, opts...)
		if err != nil {
			return Position{}, &errors.MoveError{Err: err, Index: i + 1, MoveText: m.String()}
		}
		current = next
	}
	return current, nil
}

// At returns the content of square c.
func (p Position) At(c chess.Coord) chess.Square {
	return p.Board.At(c)
}
