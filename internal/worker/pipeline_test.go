package worker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessposition-go/internal/testutil"
)

func TestRun_PreservesOrder(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		if i%3 == 0 {
			lines = append(lines, "startpos f2f4 f7f6 f4f5 g7g5 f5g6ep")
		} else {
			lines = append(lines, "startpos e2e4")
		}
	}
	input := strings.Join(lines, "\n")

	var got []Result
	err := Run(context.Background(), strings.NewReader(input), NewReplayer().Process,
		func(r Result) error {
			got = append(got, r)
			return nil
		},
		WithWorkers(4), WithBufferSize(3))
	testutil.AssertNoError(t, err)

	if len(got) != len(lines) {
		t.Fatalf("got %d results; want %d", len(got), len(lines))
	}
	for i, r := range got {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if r.Line != lines[i] {
			t.Errorf("result %d line = %q; want %q", i, r.Line, lines[i])
		}
		testutil.AssertNoError(t, r.Err)
	}
}

func TestRun_SkipsBlankAndComments(t *testing.T) {
	input := "# header\n\nstartpos\n   \n# another\n8/8/8/8/8/8/8/4K3\n"

	var got []string
	err := Run(context.Background(), strings.NewReader(input), NewReplayer().Process,
		func(r Result) error {
			got = append(got, r.Line)
			return nil
		})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, []string{"startpos", "8/8/8/8/8/8/8/4K3"})
}

func TestRun_ReplayErrorsAreResults(t *testing.T) {
	input := "startpos\n8/8/8/8/8/8/8/XNBQKBNR\nstartpos e2e4\n"

	var failed int
	err := Run(context.Background(), strings.NewReader(input), NewReplayer().Process,
		func(r Result) error {
			if r.Err != nil {
				failed++
			}
			return nil
		}, WithWorkers(2))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, failed, 1)
}

func TestRun_EmitErrorStops(t *testing.T) {
	input := strings.Repeat("startpos e2e4\n", 500)
	stop := errors.New("stop")

	emitted := 0
	err := Run(context.Background(), strings.NewReader(input), NewReplayer().Process,
		func(r Result) error {
			emitted++
			if emitted == 5 {
				return stop
			}
			return nil
		}, WithWorkers(4), WithBufferSize(2))

	testutil.AssertErrorIs(t, err, stop)
	testutil.AssertEqual(t, emitted, 5)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.Repeat("startpos\n", 1000)
	err := Run(ctx, strings.NewReader(input), NewReplayer().Process,
		func(Result) error { return nil }, WithBufferSize(1))

	testutil.AssertErrorIs(t, err, context.Canceled)
}
