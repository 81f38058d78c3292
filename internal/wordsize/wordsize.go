package wordsize

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"
)

// Indeterminate marks a target whose word width is only known at run time.
const Indeterminate = 0

// ErrUnsupportedPlatform is returned when the native word is neither
// 4 nor 8 bytes wide.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// UnsupportedPlatformError carries the width that could not be handled.
//
// It unwraps to ErrUnsupportedPlatform.
type UnsupportedPlatformError struct {
	Width int
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: native word width %d bytes (want 4 or 8)", e.Width)
}

func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// Resolve returns the word width for a build-time marker. A concrete marker
// of 4 or 8 wins; Indeterminate defers to measure.
func Resolve(marker int, measure func() int) (int, error) {
	switch marker {
	case 4, 8:
		return marker, nil
	case Indeterminate:
		switch w := measure(); w {
		case 4, 8:
			return w, nil
		default:
			return 0, &UnsupportedPlatformError{Width: w}
		}
	default:
		return 0, &UnsupportedPlatformError{Width: marker}
	}
}

// Measured returns the width of uintptr as laid out by the running binary.
func Measured() int {
	return int(unsafe.Sizeof(uintptr(0)))
}

var native = sync.OnceValues(func() (int, error) {
	return Resolve(Constant, Measured)
})

// Native returns the resolved native word width. The value is computed once
// and shared by all callers.
func Native() (int, error) {
	return native()
}
