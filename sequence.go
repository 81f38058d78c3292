package seqeq

import (
	"context"
	"log/slog"
	"reflect"
	"unsafe"

	"github.com/hupe1980/seqeq/internal/layout"
	"github.com/hupe1980/seqeq/internal/simd"
)

// Strategy is the comparison path a Sequence takes for its element type.
type Strategy uint8

const (
	// StrategyComparer compares element by element through the Comparer.
	StrategyComparer Strategy = iota
	// StrategyBitwise compares the raw bytes of each element.
	StrategyBitwise
	// StrategyVectorized compares whole vector blocks, then finishes the
	// remainder bitwise.
	StrategyVectorized
)

// String returns the string representation of a Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyComparer:
		return "comparer"
	case StrategyBitwise:
		return "bitwise"
	case StrategyVectorized:
		return "vectorized"
	default:
		return "unknown"
	}
}

// Sequence tests extents of T for element-wise equality.
//
// The strategy is fixed when the Sequence is built. A Sequence holds no
// mutable state and is safe for concurrent use.
type Sequence[T any] struct {
	cmp      Comparer[T]
	info     layout.Info
	strategy Strategy
	isa      ISA
	lanes    int // elements per vector block; 0 unless vectorized
	opts     options
}

// New builds a Sequence that uses cmp as the equality definition of T.
//
// Byte-level strategies are only taken when cmp is the identity comparer
// (see Default and Identity); any other comparer is always called.
// New panics if cmp is nil.
func New[T any](cmp Comparer[T], optFns ...Option) *Sequence[T] {
	if cmp == nil {
		panic("seqeq: nil comparer")
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Sequence[T]{
		cmp:  cmp,
		info: layout.Of[T](),
		isa:  opts.isa,
		opts: opts,
	}

	bitwise := isIdentity(cmp) && s.info.Class.Bitwise()
	reg := uintptr(opts.isa.RegisterBytes())
	switch {
	case bitwise && s.info.Class == layout.Vectorizable && reg >= s.info.Size:
		s.strategy = StrategyVectorized
		s.lanes = int(reg / s.info.Size)
	case bitwise:
		s.strategy = StrategyBitwise
	default:
		s.strategy = StrategyComparer
	}

	if s.opts.shardSize == 0 {
		s.opts.shardSize = max(1, defaultShardBytes/max(1, int(s.info.Size)))
	}

	if ctx := context.Background(); opts.logger.Enabled(ctx, slog.LevelDebug) {
		opts.logger.WithType(reflect.TypeFor[T]().String()).
			LogStrategy(ctx, s.strategy, s.info.Class.String(), s.lanes, s.isa)
	}

	return s
}

// For builds a Sequence using the canonical comparer of T (see Default).
func For[T comparable](optFns ...Option) *Sequence[T] {
	return New(Default[T](), optFns...)
}

// Strategy returns the comparison path selected for T.
func (s *Sequence[T]) Strategy() Strategy { return s.strategy }

// Lanes returns the number of elements compared per vector block, or 0 when
// the vectorized strategy is not in use.
func (s *Sequence[T]) Lanes() int { return s.lanes }

// ISA returns the instruction set the block size was derived from.
func (s *Sequence[T]) ISA() ISA { return s.isa }

// Equals reports whether the n elements starting at ptr equal the n
// elements starting at ptr2.
//
// SAFETY: both extents MUST be readable for n elements. Nothing is written
// and nothing is retained. The result is undefined if another goroutine
// mutates either extent during the call.
func (s *Sequence[T]) Equals(ptr, ptr2 *T, n int) bool {
	if n <= 0 || ptr == ptr2 && s.strategy != StrategyComparer {
		return true
	}
	return s.equal(unsafe.Slice(ptr, n), unsafe.Slice(ptr2, n))
}

// Equal reports whether a and b have the same length and equal elements.
func (s *Sequence[T]) Equal(a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return s.equal(a, b)
}

// equal runs the tiered comparison. len(a) == len(b) is assumed.
func (s *Sequence[T]) equal(a, b []T) bool {
	n := len(a)
	if n == 0 {
		return true
	}

	i := 0
	switch s.strategy {
	case StrategyVectorized:
		if n >= s.lanes {
			block := s.lanes * int(s.info.Size)
			for ; i <= n-s.lanes; i += s.lanes {
				if !simd.BlockEqual(unsafe.Pointer(&a[i]), unsafe.Pointer(&b[i]), block) {
					return false
				}
			}
			if i == n {
				return true
			}
		}
		return s.bitwiseEqual(a[i:], b[i:])
	case StrategyBitwise:
		return s.bitwiseEqual(a, b)
	default:
		cmp := s.cmp
		for j := range a {
			if !cmp.Equal(a[j], b[j]) {
				return false
			}
		}
		return true
	}
}

// bitwiseEqual compares element by element on raw bytes, loading each
// element as one machine integer when its size and alignment allow.
func (s *Sequence[T]) bitwiseEqual(a, b []T) bool {
	n := len(a)
	if n == 0 || s.info.Size == 0 {
		return true
	}
	pa, pb := unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0])

	switch size, align := s.info.Size, s.info.Align; {
	case size == 8 && align == 8:
		return wordsEqual[uint64](pa, pb, n)
	case size == 4 && align == 4:
		return wordsEqual[uint32](pa, pb, n)
	case size == 2 && align == 2:
		return wordsEqual[uint16](pa, pb, n)
	case size == 1:
		return wordsEqual[uint8](pa, pb, n)
	default:
		for j := 0; j < n; j++ {
			if !simd.BlockEqual(unsafe.Pointer(&a[j]), unsafe.Pointer(&b[j]), int(size)) {
				return false
			}
		}
		return true
	}
}

func wordsEqual[W uint8 | uint16 | uint32 | uint64](a, b unsafe.Pointer, n int) bool {
	x := unsafe.Slice((*W)(a), n)
	y := unsafe.Slice((*W)(b), n)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same length and equal elements,
// using the canonical comparer of T.
func Equal[T comparable](a, b []T) bool {
	return For[T]().Equal(a, b)
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements at the same index.
func EqualFunc[T any](a, b []T, eq func(a, b T) bool) bool {
	return New[T](ComparerFunc[T](eq)).Equal(a, b)
}
