package seqeq

import (
	"runtime"

	"github.com/hupe1980/seqeq/internal/resource"
	"github.com/hupe1980/seqeq/internal/simd"
)

// ISA identifies the vector instruction set whose register width sets the
// block size of the vectorized strategy.
type ISA = simd.ISA

// Instruction sets understood by WithISA.
const (
	ISAGeneric = simd.Generic
	ISANEON    = simd.NEON
	ISASVE2    = simd.SVE2
	ISAAVX2    = simd.AVX2
	ISAAVX512  = simd.AVX512
)

// ActiveISA returns the instruction set detected for this process.
func ActiveISA() ISA {
	return simd.ActiveISA()
}

// ResourceConfig holds shared limits for parallel comparisons.
type ResourceConfig = resource.Config

// ResourceController enforces a ResourceConfig across comparisons.
type ResourceController = resource.Controller

// NewResourceController creates a controller that can be shared by many
// sequences through WithResources.
func NewResourceController(cfg ResourceConfig) *ResourceController {
	return resource.NewController(cfg)
}

// defaultShardBytes is the amount of memory one parallel shard covers.
const defaultShardBytes = 4 << 20

type options struct {
	logger    *Logger
	isa       ISA
	workers   int
	shardSize int // elements; 0 derives it from defaultShardBytes
	resources *resource.Controller
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		isa:     simd.ActiveISA(),
		workers: runtime.GOMAXPROCS(0),
	}
}

// Option configures a Sequence.
type Option func(*options)

// WithLogger sets the logger used for strategy selection and parallel runs.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithISA pins the instruction set used to size vector blocks.
//
// ISAGeneric disables the vectorized strategy. Any other ISA only changes
// how many elements are compared per block; the outcome never changes.
func WithISA(isa ISA) Option {
	return func(o *options) {
		o.isa = isa
	}
}

// WithWorkers sets how many goroutines EqualParallel may use per call.
//
// Values below 1 disable parallelism.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithShardSize sets the number of elements per EqualParallel shard.
//
// Values below 1 restore the default of 4MiB worth of elements.
func WithShardSize(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 0
		}
		o.shardSize = n
	}
}

// WithResources shares worker and IO limits with other sequences.
func WithResources(c *ResourceController) Option {
	return func(o *options) {
		o.resources = c
	}
}

// WithIOLimit caps the bytes per second EqualParallel scans.
// It installs a private controller; prefer WithResources to share a budget.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.resources = resource.NewController(resource.Config{IOLimitBytesPerSec: bytesPerSec})
	}
}
