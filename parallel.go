package seqeq

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// errShardMismatch stops the remaining shards once one shard differs.
var errShardMismatch = errors.New("shard mismatch")

// EqualParallel reports whether a and b have the same length and equal
// elements, splitting the work into shards compared concurrently.
//
// Every shard runs the same comparison as Equal. The first differing shard
// cancels the rest. Worker and IO limits from WithResources or WithIOLimit
// apply to every shard. If ctx ends first, its error is returned.
func (s *Sequence[T]) EqualParallel(ctx context.Context, a, b []T) (bool, error) {
	if len(a) != len(b) {
		return false, nil
	}

	n := len(a)
	shard := s.opts.shardSize
	shards := (n + shard - 1) / shard
	workers := min(s.opts.workers, shards)

	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if err := s.opts.resources.AcquireIO(ctx, 2*n*int(s.info.Size)); err != nil {
			return false, err
		}
		return s.equal(a, b), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < n; start += shard {
		if gctx.Err() != nil {
			break
		}
		end := min(start+shard, n)

		g.Go(func() error {
			rc := s.opts.resources
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			if err := rc.AcquireIO(gctx, 2*(end-start)*int(s.info.Size)); err != nil {
				return err
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			if !s.equal(a[start:end], b[start:end]) {
				return errShardMismatch
			}
			return nil
		})
	}

	err := g.Wait()
	log := s.opts.logger.WithCount(n)
	if errors.Is(err, errShardMismatch) {
		log.LogParallel(ctx, shards, workers, false, nil)
		return false, nil
	}
	if err == nil {
		// Shards may have been skipped because ctx ended.
		err = ctx.Err()
	}
	if err != nil {
		log.LogParallel(ctx, shards, workers, false, err)
		return false, err
	}

	log.LogParallel(ctx, shards, workers, true, nil)
	return true, nil
}
