package testutil

import (
	"testing"

	"github.com/lgbarn/chessposition-go/internal/engine"
)

// MustFromFEN parses a placement field and calls t.Fatal on failure.
func MustFromFEN(t testing.TB, fen string) engine.Position {
	t.Helper()
	pos, err := engine.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q) error = %v", fen, err)
	}
	return pos
}

// MustApply plays coordinate-notation moves (e.g. "e2e4 e7e5") from pos and
// calls t.Fatal if any of them fails to parse or apply.
func MustApply(t testing.TB, pos engine.Position, moves string, opts ...engine.ApplyOption) engine.Position {
	t.Helper()
	parsed, err := engine.ParseMoves(moves)
	if err != nil {
		t.Fatalf("ParseMoves(%q) error = %v", moves, err)
	}
	next, err := pos.ApplyAll(parsed, opts...)
	if err != nil {
		t.Fatalf("ApplyAll(%q) error = %v", moves, err)
	}
	return next
}

// Diagram joins eight rank strings (rank 8 first) into the text produced
// by Position.Render.
func Diagram(ranks ...string) string {
	out := ""
	for _, r := range ranks {
		out += r + "\n"
	}
	return out
}
