package worker

import (
	"bufio"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Run reads one replay line per input line, processes the lines on the
// pool's workers and calls emit with the results in input order. Blank
// lines and lines starting with '#' are skipped. If emit returns an error
// the remaining input is abandoned and that error is returned.
func Run(ctx context.Context, r io.Reader, process ProcessFunc, emit func(Result) error, opts ...PoolOption) error {
	pool := NewPool(process, opts...)
	pool.Start()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		return readLines(ctx, r, pool)
	})

	g.Go(func() error {
		return collect(pool, emit)
	})

	return g.Wait()
}

func readLines(ctx context.Context, r io.Reader, pool *Pool) error {
	scanner := bufio.NewScanner(r)
	index := 0
	for scanner.Scan() {
		if pool.IsStopped() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := pool.SubmitContext(ctx, WorkItem{Line: line, Index: index}); err != nil {
			return err
		}
		index++
	}
	return scanner.Err()
}

// collect restores input order. It keeps draining after an emit failure
// so that workers never block on a full result channel.
func collect(pool *Pool, emit func(Result) error) error {
	pending := make(map[int]Result)
	next := 0
	var firstErr error

	for res := range pool.Results() {
		if firstErr != nil {
			continue
		}
		pending[res.Index] = res
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := emit(ready); err != nil {
				firstErr = err
				pool.Stop()
				break
			}
		}
	}
	return firstErr
}
