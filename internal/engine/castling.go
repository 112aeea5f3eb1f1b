package engine

import "github.com/lgbarn/chessposition-go/internal/chess"

// CastlingPolicy selects which events revoke castling rights on a normal move.
type CastlingPolicy int

const (
	// KingMovesOnly clears a colour's two flags when its king moves.
	KingMovesOnly CastlingPolicy = iota
	// KingAndRookCorners additionally clears a single flag when a piece
	// leaves, or a piece lands on, that flag's rook corner.
	KingAndRookCorners
)

// normalCastlingRights applies the castling rules for a normal move.
func normalCastlingRights(old chess.Board, rights chess.CastlingRights, from, to chess.Coord, policy CastlingPolicy) chess.CastlingRights {
	if piece, ok := old.At(from).Piece(); ok && piece.Name == chess.King {
		rights = rights.WithoutColour(piece.Colour)
	}
	if policy == KingAndRookCorners {
		rights = revokeCorner(rights, from)
		rights = revokeCorner(rights, to)
	}
	return rights
}

// revokeCorner removes castling rights when a rook moves or is captured.
func revokeCorner(rights chess.CastlingRights, sq chess.Coord) chess.CastlingRights {
	if colour, kingside, ok := chess.CornerRight(sq); ok {
		return rights.WithoutSide(colour, kingside)
	}
	return rights
}
