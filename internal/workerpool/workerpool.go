// Package workerpool implements a fork-join scheduling model: a coordinator
// partitions an index range into W contiguous chunks, spawns one worker per
// chunk on a shared errgroup.Group, and joins all of them before returning.
// No worker mutates shared state; each receives only the read-only inputs
// closed over by its task function.
//
// core/concurrency_test.go spins up goroutines behind a bare sync.WaitGroup;
// here the hand-rolled WaitGroup/error-channel pairing is replaced with
// golang.org/x/sync/errgroup, the idiomatic Go analogue of a
// spawn-then-join-all loop (see dprm.rs's generate_viable_edges_and_vertices,
// find_blocked_by_obstacle for the same shape in another language).
package workerpool

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNoWorkers is returned when Chunks is asked to split work across zero
// workers. Callers at the engine boundary classify a zero worker count as
// a configuration error, but Chunks itself also rejects it defensively
// since it is reused by multiple callers.
var ErrNoWorkers = errors.New("workerpool: worker_count must be at least 1")

// Range describes one worker's contiguous, half-open slice [Start, End) of
// a larger index space of size N split into W parts: chunk size is
// ceil(N/W), with the last chunk possibly short.
type Range struct {
	// WorkerIndex is this chunk's position among the W workers (0-based),
	// used downstream to derive deterministic ordering of worker outputs.
	WorkerIndex int
	Start       int
	End         int
}

// Chunks splits [0, n) into w contiguous ranges of size ceil(n/w), the last
// one possibly shorter. Returns ErrNoWorkers if w <= 0. An n of 0 yields w
// empty ranges (Start == End), never an error: callers decide whether an
// empty total range is meaningful.
func Chunks(n, w int) ([]Range, error) {
	if w <= 0 {
		return nil, ErrNoWorkers
	}

	chunkSize := (n + w - 1) / w // ceil(n/w)
	ranges := make([]Range, w)
	for i := 0; i < w; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if start > n {
			start = n
		}
		if end > n {
			end = n
		}
		ranges[i] = Range{WorkerIndex: i, Start: start, End: end}
	}

	return ranges, nil
}

// Run executes fn once per Range in rs concurrently, collecting each
// worker's result in task-order (not completion order) so downstream
// ordering derivations stay deterministic. If any task returns an error,
// Run cancels the remaining tasks via ctx, discards all partial output and
// returns the first error encountered, collapsing the whole phase to a
// single failure.
func Run[T any](ctx context.Context, rs []Range, fn func(ctx context.Context, r Range) (T, error)) ([]T, error) {
	results := make([]T, len(rs))

	eg, egCtx := errgroup.WithContext(ctx)
	for _, r := range rs {
		r := r // capture for the closure
		eg.Go(func() error {
			out, err := fn(egCtx, r)
			if err != nil {
				return err
			}
			results[r.WorkerIndex] = out

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
