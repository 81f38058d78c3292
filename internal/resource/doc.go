// Package resource provides shared limits for large comparisons.
//
// A Controller governs three resource types:
//
//   - Workers: goroutines comparing shards concurrently (blocking semaphore)
//   - Memory: buffers holding decoded inputs (non-blocking, fail-fast)
//   - IO: bytes scanned per second (token bucket)
//
// # Usage
//
//	rc := resource.NewController(resource.Config{
//	    MaxWorkers:         4,
//	    IOLimitBytesPerSec: 256 << 20, // 256MB/s
//	})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
//	if err := rc.AcquireIO(ctx, len(shard)); err != nil {
//	    return err
//	}
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
