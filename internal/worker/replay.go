package worker

import (
	"strings"

	"github.com/lgbarn/chessposition-go/internal/engine"
	"github.com/lgbarn/chessposition-go/internal/errors"
	"github.com/lgbarn/chessposition-go/internal/hashing"
)

// StartToken in place of a placement means the standard starting position.
const StartToken = "startpos"

// Result is the outcome of replaying one line.
type Result struct {
	Index    int
	Line     string
	Position engine.Position
	Hash     uint64
	Err      error
}

// Replayer turns input lines into final positions.
type Replayer struct {
	opts []engine.ApplyOption
}

// NewReplayer creates a replayer that applies moves with opts.
func NewReplayer(opts ...engine.ApplyOption) *Replayer {
	return &Replayer{opts: opts}
}

// Replay parses "<placement|startpos> [move ...]" and plays the moves.
func (r *Replayer) Replay(line string) (engine.Position, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return engine.Position{}, errors.Wrap(errors.ErrInvalidFEN, "empty line")
	}

	var pos engine.Position
	if fields[0] == StartToken {
		pos = engine.StartPos()
	} else {
		var err error
		if pos, err = engine.FromFEN(fields[0]); err != nil {
			return engine.Position{}, err
		}
	}

	moves, err := engine.ParseMoves(strings.Join(fields[1:], " "))
	if err != nil {
		return engine.Position{}, err
	}
	return pos.ApplyAll(moves, r.opts...)
}

// Process adapts Replay to a pool ProcessFunc.
func (r *Replayer) Process(item WorkItem) Result {
	res := Result{Index: item.Index, Line: item.Line}
	res.Position, res.Err = r.Replay(item.Line)
	if res.Err == nil {
		res.Hash = hashing.GenerateZobristHash(res.Position)
	}
	return res
}
