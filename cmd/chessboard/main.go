// chessboard replays moves on a chess position and prints the resulting board.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/profile"

	"github.com/lgbarn/chessposition-go/internal/config"
	"github.com/lgbarn/chessposition-go/internal/engine"
	"github.com/lgbarn/chessposition-go/internal/hashing"
	"github.com/lgbarn/chessposition-go/internal/output"
	"github.com/lgbarn/chessposition-go/internal/worker"
)

const programVersion = "0.1.0"

// demoMoves is 1.f4 f6 2.f5 g5 3.fxg6 e.p. from the standard start.
const demoMoves = "f2f4 f7f6 f4f5 g7g5 f5g6ep"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chessboard version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown profile mode %q (want cpu or mem)\n", *profileMode)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *batchFile != "" {
		return runBatchFile(ctx, cfg, *batchFile)
	}

	moves := *movesFlag
	if *demo {
		if *fenFlag != "" || moves != "" {
			fmt.Fprintf(os.Stderr, "Error: -demo cannot be combined with -fen or -moves\n")
			return 1
		}
		moves = demoMoves
	}
	return runSingle(cfg, cfg.StartPlacement, moves)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() }
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return func() { file.Close() }
}

// runSingle replays moves from placement and prints the final position.
func runSingle(cfg *config.Config, placement, moves string) int {
	pos, err := engine.FromFEN(placement)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	parsed, err := engine.ParseMoves(moves)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	for i, m := range parsed {
		next, err := pos.Apply(m, cfg.ApplyOptions()...)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: move %d %q: %v\n", i+1, m, err)
			return 1
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%d. %s -> %s [%s]\n", i+1, m, next.Placement(), next.Castling)
		}
		pos = next
	}

	pw := output.NewWriter(cfg.OutputFile, cfg.Output)
	if err := pw.WritePosition(pos); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		return 1
	}
	if err := pw.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

// runBatchFile opens path ("-" for stdin) and replays it.
func runBatchFile(ctx context.Context, cfg *config.Config, path string) int {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening batch file %s: %v\n", path, err)
			return 1
		}
		defer file.Close()
		r = file
	}
	return runBatch(ctx, cfg, r)
}

// runBatch replays every line of r and prints the results in input order.
// It returns 1 if any line failed.
func runBatch(ctx context.Context, cfg *config.Config, r io.Reader) int {
	replayer := worker.NewReplayer(cfg.ApplyOptions()...)

	var detector *hashing.DuplicateDetector
	if cfg.Batch.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.Batch.DuplicateCapacity)
	}

	pw := output.NewWriter(cfg.OutputFile, cfg.Output)

	var total, failed, printed int
	emit := func(res worker.Result) error {
		total++
		if res.Err != nil {
			failed++
			fmt.Fprintf(cfg.LogFile, "line %d: %v\n", res.Index+1, res.Err)
			return nil
		}
		if detector != nil && detector.CheckAndAdd(res.Position) {
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "line %d: duplicate position %016x\n", res.Index+1, res.Hash)
			}
			return nil
		}
		printed++
		return pw.WritePosition(res.Position)
	}

	err := worker.Run(ctx, r, replayer.Process, emit,
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(cfg.Batch.BufferSize))
	if closeErr := pw.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d lines replayed, %d printed, %d failed\n", total, printed, failed)
		if detector != nil {
			fmt.Fprintf(cfg.LogFile, "%d duplicate positions suppressed\n", detector.DuplicateCount())
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays moves on a chess position and prints the resulting board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation:\n")
	fmt.Fprintf(os.Stderr, "  e2e4       move the piece on e2 to e4\n")
	fmt.Fprintf(os.Stderr, "  f5g6ep     en passant, capturing on g5\n")
	fmt.Fprintf(os.Stderr, "  f5g6ep:g5  en passant with an explicit captured square\n")
}
