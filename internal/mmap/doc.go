// Package mmap maps input files read-only into memory so that sequence
// comparisons run directly over page-cache memory.
//
//	m, err := mmap.Open("left.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix uses mmap(2) with madvise(2). Windows uses CreateFileMapping and
// MapViewOfFile; access hints are ignored there. Other platforms read the
// file into heap memory.
//
// A Mapping is safe for concurrent reads. Close is idempotent, but callers
// must not touch the slice returned by Bytes once Close returns.
package mmap
