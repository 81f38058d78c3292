// Package seqeq tests two equally long extents of memory for element-wise
// equality as fast as the element type and the CPU allow.
//
// # Strategies
//
// A Sequence picks one strategy per element type when it is built:
//
//   - vectorized: integer elements are compared one vector register at a
//     time (16 bytes on NEON/SVE2, 32 on AVX2, 64 on AVX-512); a tail
//     shorter than one register is finished bitwise
//   - bitwise: other types whose == is bit equality (bool, pointers,
//     padding-free structs and arrays of such) are compared on raw bytes
//   - comparer: everything else goes through the Comparer, element by element
//
// All strategies agree on the outcome. A type with an Equal(T) bool method
// is always compared through that method.
//
// # Quick Start
//
//	seqeq.Equal(a, b)                      // canonical equality of T
//	seqeq.EqualFunc(a, b, strings.EqualFold)
//
//	s := seqeq.For[int32]()                // reuse the resolved strategy
//	s.Equal(a, b)
//	s.Equals(&a[0], &b[0], n)              // raw extents
//
// # Native Words
//
// EqualWords, EqualUintptrs and EqualPointers compare machine words as
// opaque data. The word width is resolved once per process; a width other
// than 4 or 8 bytes fails with ErrUnsupportedPlatform.
//
// # Diagnostics and Large Extents
//
// IndexMismatch and Mismatches locate differences. EqualParallel shards
// very large extents across goroutines, honoring shared worker and IO
// limits (see WithResources).
//
// # Thread Safety
//
// Comparisons never write and keep no state between calls; a Sequence may
// be shared by any number of goroutines. Callers must keep the extents
// unchanged for the duration of a call.
package seqeq
