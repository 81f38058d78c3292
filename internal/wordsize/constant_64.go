//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x

package wordsize

// Constant is the build-time word width for this target.
const Constant = 8
