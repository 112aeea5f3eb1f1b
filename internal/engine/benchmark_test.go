package engine_test

import (
	"testing"

	"github.com/lgbarn/chessposition-go/internal/engine"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				engine.FromFEN(fen)
			}
		})
	}
}

func BenchmarkPlacement(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos := engine.MustFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos.Placement()
			}
		})
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	fen := benchFENs["Midgame"]
	for i := 0; i < b.N; i++ {
		pos, _ := engine.FromFEN(fen)
		pos.Placement()
	}
}

func BenchmarkApply(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move engine.Move
	}{
		{"PawnPush", benchFENs["Initial"], engine.NewNormalMove(f2, f4)},
		{"EnPassant", "rnbqkbnr/ppppp2p/5p2/5Pp1/8/8/PPPPP1PP/RNBQKBNR", engine.NewEnPassant(f5, g6, g5)},
		{"KingMove", benchFENs["Castling"], mustParseMove(b, "e1f1")},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			pos := engine.MustFromFEN(tc.fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pos.Apply(tc.move)
			}
		})
	}
}

func BenchmarkApply_RookCorners(b *testing.B) {
	pos := engine.MustFromFEN(benchFENs["Castling"])
	m := mustParseMove(b, "h1h5")
	for i := 0; i < b.N; i++ {
		pos.Apply(m, engine.WithRookCornerRevocation())
	}
}

func BenchmarkApplyAll_DriverSequence(b *testing.B) {
	start := engine.StartPos()
	moves := driverSequence()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start.ApplyAll(moves)
	}
}

func BenchmarkRender(b *testing.B) {
	pos := engine.MustFromFEN(benchFENs["Complex"])
	for i := 0; i < b.N; i++ {
		pos.Render()
	}
}

func mustParseMove(tb testing.TB, text string) engine.Move {
	tb.Helper()
	m, err := engine.ParseMove(text)
	if err != nil {
		tb.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}
