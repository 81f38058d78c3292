package simd

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; platform-specific init()
// functions override with accelerated versions when available.
var (
	kernelBlockEqual    = blockEqualGeneric
	kernelIndexMismatch = indexMismatchGeneric
)

// ============================================================================
// Public API - Zero-overhead dispatch through function pointers
// ============================================================================

// BlockEqual reports whether the n bytes starting at a and b are identical.
//
// SAFETY: both regions MUST be readable for n bytes. Nothing is written.
func BlockEqual(a, b unsafe.Pointer, n int) bool {
	if n <= 0 {
		return true
	}
	return kernelBlockEqual(
		unsafe.Slice((*byte)(a), n),
		unsafe.Slice((*byte)(b), n),
	)
}

// Equal reports whether a and b hold identical bytes.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func Equal(a, b []byte) bool {
	if len(a) == 0 {
		return true
	}
	return kernelBlockEqual(a, b)
}

// IndexMismatch returns the offset of the first byte where a and b differ,
// or -1 if they are identical.
//
// SAFETY: Assumes len(a) == len(b). Caller MUST ensure lengths match.
func IndexMismatch(a, b []byte) int {
	return kernelIndexMismatch(a, b)
}

// ============================================================================
// Generic kernels
// ============================================================================

// blockEqualGeneric compares eight bytes per load. binary.LittleEndian
// compiles to a single unaligned load where the target allows it and to
// byte loads elsewhere, so this is safe on strict-alignment targets.
func blockEqualGeneric(a, b []byte) bool {
	n := len(a)
	i := 0
	for ; i+32 <= n; i += 32 {
		x0 := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		x1 := binary.LittleEndian.Uint64(a[i+8:]) ^ binary.LittleEndian.Uint64(b[i+8:])
		x2 := binary.LittleEndian.Uint64(a[i+16:]) ^ binary.LittleEndian.Uint64(b[i+16:])
		x3 := binary.LittleEndian.Uint64(a[i+24:]) ^ binary.LittleEndian.Uint64(b[i+24:])
		if x0|x1|x2|x3 != 0 {
			return false
		}
	}
	for ; i+8 <= n; i += 8 {
		if binary.LittleEndian.Uint64(a[i:]) != binary.LittleEndian.Uint64(b[i:]) {
			return false
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func indexMismatchGeneric(a, b []byte) int {
	n := len(a)
	i := 0
	for ; i+8 <= n; i += 8 {
		if x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:]); x != 0 {
			// Little-endian load: the lowest differing byte is the first one.
			return i + bits.TrailingZeros64(x)>>3
		}
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
