// Package simd provides hardware capability detection and block-equality
// kernels for the sequence equality engine.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the widest vector register; its
// width decides how many elements the engine compares per block. Set
// SEQEQ_SIMD=generic|neon|sve2|avx2|avx512 to pin the ISA (ignored when the
// CPU lacks it). Build with -tags noasm to force the portable Go kernel.
//
// # Operations
//
//   - BlockEqual / Equal: byte-identical comparison of two regions
//   - IndexMismatch: offset of the first differing byte
package simd
