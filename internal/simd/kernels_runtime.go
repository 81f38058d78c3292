//go:build (amd64 || arm64) && !noasm

package simd

import "bytes"

// init sets the kernel pointers once capability detection has run.
//
// On amd64 and arm64 the runtime's memequal is hand-written assembly
// (SSE2/AVX2 on x86-64, NEON on ARM64), so bytes.Equal is the fastest
// block comparison available without shipping our own assembly.
func init() {
	kernelBlockEqual = blockEqualRuntime
	kernelIndexMismatch = indexMismatchRuntime
}

func blockEqualRuntime(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// indexMismatchRuntime skips identical 256-byte stretches with memequal
// before locating the differing byte.
func indexMismatchRuntime(a, b []byte) int {
	const stride = 256
	n := len(a)
	i := 0
	for ; i+stride <= n; i += stride {
		if !bytes.Equal(a[i:i+stride], b[i:i+stride]) {
			return i + indexMismatchGeneric(a[i:i+stride], b[i:i+stride])
		}
	}
	if j := indexMismatchGeneric(a[i:], b[i:]); j >= 0 {
		return i + j
	}
	return -1
}
