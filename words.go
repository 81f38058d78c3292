package seqeq

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/seqeq/internal/wordsize"
)

// Word sequences are compared as fixed-width integers of the native width.
var (
	int32Words = sync.OnceValue(func() *Sequence[int32] { return For[int32]() })
	int64Words = sync.OnceValue(func() *Sequence[int64] { return For[int64]() })
)

// NativeWordWidth returns the byte width of a native machine word (4 or 8).
// It fails with ErrUnsupportedPlatform on any other width.
func NativeWordWidth() (int, error) {
	return wordsize.Native()
}

// EqualWords reports whether the n native words starting at ptr equal the n
// words starting at ptr2. Words are treated as opaque data and never
// dereferenced.
//
// SAFETY: both extents MUST be readable for n words.
func EqualWords(ptr, ptr2 *uintptr, n int) (bool, error) {
	return equalWords(wordsize.Native, unsafe.Pointer(ptr), unsafe.Pointer(ptr2), n)
}

// EqualUintptrs reports whether a and b hold the same words.
func EqualUintptrs(a, b []uintptr) (bool, error) {
	if len(a) != len(b) {
		return false, nil
	}
	return equalWords(wordsize.Native, unsafe.Pointer(unsafe.SliceData(a)), unsafe.Pointer(unsafe.SliceData(b)), len(a))
}

// EqualPointers reports whether a and b hold the same addresses. The
// pointers are compared as words and never dereferenced.
func EqualPointers(a, b []unsafe.Pointer) (bool, error) {
	if len(a) != len(b) {
		return false, nil
	}
	return equalWords(wordsize.Native, unsafe.Pointer(unsafe.SliceData(a)), unsafe.Pointer(unsafe.SliceData(b)), len(a))
}

// equalWords resolves the word width and compares n words of that width.
func equalWords(resolve func() (int, error), ptr, ptr2 unsafe.Pointer, n int) (bool, error) {
	width, err := resolve()
	if err != nil {
		return false, err
	}

	switch width {
	case 4:
		return int32Words().Equals((*int32)(ptr), (*int32)(ptr2), n), nil
	case 8:
		return int64Words().Equals((*int64)(ptr), (*int64)(ptr2), n), nil
	default:
		return false, &UnsupportedPlatformError{Width: width}
	}
}
