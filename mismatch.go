package seqeq

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/seqeq/internal/conv"
	"github.com/hupe1980/seqeq/internal/simd"
)

// IndexMismatch returns the index of the first element where a and b differ.
// If one is a prefix of the other it returns the shorter length, and -1 if
// they are equal.
func (s *Sequence[T]) IndexMismatch(a, b []T) int {
	n := min(len(a), len(b))
	if idx := s.indexMismatch(a[:n], b[:n]); idx >= 0 {
		return idx
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

func (s *Sequence[T]) indexMismatch(a, b []T) int {
	n := len(a)
	if n == 0 {
		return -1
	}

	if s.strategy == StrategyComparer {
		for i := range a {
			if !s.cmp.Equal(a[i], b[i]) {
				return i
			}
		}
		return -1
	}

	size := int(s.info.Size)
	if size == 0 {
		return -1
	}
	idx := simd.IndexMismatch(
		unsafe.Slice((*byte)(unsafe.Pointer(&a[0])), n*size),
		unsafe.Slice((*byte)(unsafe.Pointer(&b[0])), n*size),
	)
	if idx < 0 {
		return -1
	}
	return idx / size
}

// Mismatches returns the set of indices where a and b differ.
//
// For byte-comparable elements, identical stretches between mismatches are
// skipped with block comparisons. Indices must fit in 32 bits; longer
// extents fail with ErrIndexOverflow.
func (s *Sequence[T]) Mismatches(a, b []T) (*roaring.Bitmap, error) {
	if len(a) != len(b) {
		return nil, &LengthMismatchError{Left: len(a), Right: len(b)}
	}

	n := len(a)
	set := roaring.New()
	if n == 0 {
		return set, nil
	}
	if _, err := conv.IntToUint32(n - 1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexOverflow, err)
	}

	if s.strategy == StrategyComparer {
		for i := range a {
			if !s.cmp.Equal(a[i], b[i]) {
				set.Add(uint32(i))
			}
		}
	} else {
		for start := 0; start < n; {
			idx := s.indexMismatch(a[start:], b[start:])
			if idx < 0 {
				break
			}
			set.Add(uint32(start + idx))
			start += idx + 1
		}
	}

	s.opts.logger.LogMismatches(context.Background(), n, set.GetCardinality())

	return set, nil
}

// Mismatches returns the set of indices where a and b differ, using the
// canonical comparer of T.
func Mismatches[T comparable](a, b []T) (*roaring.Bitmap, error) {
	return For[T]().Mismatches(a, b)
}
