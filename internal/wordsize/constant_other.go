//go:build !(amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || 386 || arm || mips || mipsle)

package wordsize

// Constant is Indeterminate here; Native measures the width at run time.
const Constant = Indeterminate
