//go:build 386 || arm || mips || mipsle

package wordsize

// Constant is the build-time word width for this target.
const Constant = 4
