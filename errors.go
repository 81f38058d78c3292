package seqeq

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seqeq/internal/wordsize"
)

var (
	// ErrUnsupportedPlatform is returned when the native word is neither
	// 4 nor 8 bytes wide.
	ErrUnsupportedPlatform = wordsize.ErrUnsupportedPlatform

	// ErrLengthMismatch is returned by operations that need both extents to
	// have the same number of elements.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrIndexOverflow is returned when an element index does not fit the
	// 32-bit index space of a mismatch set.
	ErrIndexOverflow = errors.New("index overflow")
)

// UnsupportedPlatformError carries the native word width that could not be
// handled. It unwraps to ErrUnsupportedPlatform.
type UnsupportedPlatformError = wordsize.UnsupportedPlatformError

// LengthMismatchError indicates two extents of different length.
//
// It unwraps to ErrLengthMismatch.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
