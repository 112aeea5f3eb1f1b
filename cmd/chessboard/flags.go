// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessposition-go/internal/config"
)

var (
	// Input options
	fenFlag   = flag.String("fen", "", "FEN placement to start from (default: standard start position)")
	movesFlag = flag.String("moves", "", "Moves to apply in coordinate notation, e.g. \"e2e4 e7e5 f5g6ep\"")
	demo      = flag.Bool("demo", false, "Replay the built-in en passant sequence (1.f4 f6 2.f5 g5 3.fxg6 e.p.)")
	batchFile = flag.String("batch", "", "Replay one \"<placement|startpos> [moves...]\" line per input line (- for stdin)")

	// Rules
	rookCorners = flag.Bool("rooks", false, "Also revoke castling when a rook corner is vacated or captured on")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	showCastling  = flag.Bool("castling", false, "Print castling rights after each diagram")
	showPlacement = flag.Bool("placement", false, "Print the FEN placement after each diagram")
	showHash      = flag.Bool("hash", false, "Print the Zobrist key after each diagram")
	jsonOutput    = flag.Bool("json", false, "Write positions as a JSON array instead of diagrams")

	// Batch options
	workers        = flag.Int("j", 0, "Number of batch workers (default: number of CPUs)")
	unique         = flag.Bool("unique", false, "Suppress batch results whose final position was already printed")
	uniqueCapacity = flag.Int("unique-capacity", 0, "Maximum remembered positions for -unique (0 = unlimited)")

	// Diagnostics
	logFile     = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet       = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose     = flag.Bool("v", false, "Verbose diagnostics")
	profileMode = flag.String("profile", "", "Write a profile: cpu or mem")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) {
	if *fenFlag != "" {
		cfg.StartPlacement = *fenFlag
	}
	cfg.RookCornerRevocation = *rookCorners

	cfg.Output.ShowCastling = *showCastling
	cfg.Output.ShowPlacement = *showPlacement
	cfg.Output.ShowHash = *showHash
	cfg.Output.JSON = *jsonOutput

	applyBatchFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyBatchFlags configures batch replay settings.
func applyBatchFlags(cfg *config.Config) {
	if *workers != 0 {
		cfg.Batch.Workers = *workers
	}
	cfg.Batch.SuppressDuplicates = *unique
	cfg.Batch.DuplicateCapacity = *uniqueCapacity
}
