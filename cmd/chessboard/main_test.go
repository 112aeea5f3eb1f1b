package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessposition-go/internal/config"
	"github.com/lgbarn/chessposition-go/internal/engine"
	"github.com/lgbarn/chessposition-go/internal/output"
	"github.com/lgbarn/chessposition-go/internal/testutil"
)

var demoDiagram = testutil.Diagram(
	"rnbqkbnr",
	"ppppp  p",
	"     pP ",
	"        ",
	"        ",
	"        ",
	"PPPPP PP",
	"RNBQKBNR",
)

// newTestConfig returns a config writing to in-memory buffers.
func newTestConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfig()
	cfg.OutputFile = &out
	cfg.LogFile = &log
	cfg.Batch.Workers = 4
	return cfg, &out, &log
}

func TestRunSingle(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		moves     string
		wantCode  int
		wantOut   string
		wantLog   string
	}{
		{
			name:      "demo sequence",
			placement: engine.StartPlacement,
			moves:     demoMoves,
			wantOut:   demoDiagram,
		},
		{
			name:      "no moves prints the start",
			placement: engine.StartPlacement,
			wantOut:   engine.StartPos().Render(),
		},
		{
			name:      "bad placement",
			placement: "8/8/8/8/8/8/8/XNBQKBNR",
			wantCode:  1,
			wantLog:   "unknown piece letter",
		},
		{
			name:      "bad move text",
			placement: engine.StartPlacement,
			moves:     "f2f4 f7",
			wantCode:  1,
			wantLog:   "move 2",
		},
		{
			name:      "off-board capture square",
			placement: engine.StartPlacement,
			moves:     "f2f4 f5g6ep:h9",
			wantCode:  1,
			wantLog:   "move 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, log := newTestConfig()
			code := runSingle(cfg, tt.placement, tt.moves)
			testutil.AssertEqual(t, code, tt.wantCode)
			testutil.AssertEqual(t, out.String(), tt.wantOut)
			if tt.wantLog != "" {
				testutil.AssertContains(t, log.String(), tt.wantLog)
			}
		})
	}
}

func TestRunSingle_VerboseCommentary(t *testing.T) {
	cfg, _, log := newTestConfig()
	cfg.Verbosity = 2

	testutil.AssertEqual(t, runSingle(cfg, engine.StartPlacement, "e2e4 e7e5"), 0)
	testutil.AssertContains(t, log.String(), "1. e2e4 -> rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR [KQkq]")
	testutil.AssertContains(t, log.String(), "2. e7e5")
}

func TestRunSingle_RookCorners(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.RookCornerRevocation = true
	cfg.Output.ShowCastling = true

	testutil.AssertEqual(t, runSingle(cfg, "r3k2r/8/8/8/8/8/8/R3K2R", "h1h5"), 0)
	testutil.AssertContains(t, out.String(), "castling: Qkq\n")
}

func TestRunSingle_JSON(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Output.JSON = true

	testutil.AssertEqual(t, runSingle(cfg, engine.StartPlacement, demoMoves), 0)

	var got output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, len(got.Positions), 1)
	testutil.AssertEqual(t, got.Positions[0].Placement, "rnbqkbnr/ppppp2p/5pP1/8/8/8/PPPPP1PP/RNBQKBNR")
}

func TestRunBatch_PreservesInputOrder(t *testing.T) {
	cfg, out, log := newTestConfig()
	cfg.Verbosity = 0
	cfg.Output.ShowPlacement = true

	var lines []string
	var want []string
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			lines = append(lines, "startpos e2e4")
			want = append(want, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR")
		} else {
			lines = append(lines, "startpos d2d4")
			want = append(want, "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR")
		}
	}

	code := runBatch(context.Background(), cfg, strings.NewReader(strings.Join(lines, "\n")))
	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, log.String(), "")

	var got []string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "placement: ") {
			got = append(got, strings.TrimPrefix(line, "placement: "))
		}
	}
	testutil.AssertEqual(t, got, want)
}

func TestRunBatch_FailedLine(t *testing.T) {
	cfg, out, log := newTestConfig()

	input := "# comment\nstartpos " + demoMoves + "\n\n9/8/8/8/8/8/8/8 e2e4\n"
	code := runBatch(context.Background(), cfg, strings.NewReader(input))

	testutil.AssertEqual(t, code, 1)
	testutil.AssertEqual(t, out.String(), demoDiagram)
	testutil.AssertContains(t, log.String(), "rank overflow")
	testutil.AssertContains(t, log.String(), "2 lines replayed, 1 printed, 1 failed")
}

func TestRunBatch_Unique(t *testing.T) {
	cfg, out, log := newTestConfig()
	cfg.Batch.SuppressDuplicates = true

	// Both move orders transpose to the same position.
	input := "startpos g1f3 g8f6 b1c3\nstartpos b1c3 g8f6 g1f3\nstartpos e2e4\n"
	code := runBatch(context.Background(), cfg, strings.NewReader(input))

	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, strings.Count(out.String(), "\n"), 8*2+1)
	testutil.AssertContains(t, log.String(), "1 duplicate positions suppressed")
}

func TestRunBatch_Cancelled(t *testing.T) {
	cfg, _, _ := newTestConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := runBatch(ctx, cfg, strings.NewReader("startpos e2e4\n"))
	testutil.AssertEqual(t, code, 1)
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.StartPlacement, engine.StartPlacement)
	testutil.AssertFalse(t, cfg.RookCornerRevocation, "rook corners default")
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertEqual(t, cfg.Output, config.NewOutputConfig())
	testutil.AssertFalse(t, cfg.Batch.SuppressDuplicates, "unique default")
	testutil.AssertNoError(t, cfg.Validate())
}
