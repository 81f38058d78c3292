// Package source opens comparison inputs as contiguous byte extents.
//
// Plain files are memory-mapped. Zstandard and LZ4 frame inputs are detected
// by their magic number and decoded into heap memory, charged against the
// memory budget of a resource.Controller and read at its I/O rate.
package source
