package simd

import (
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockEqual_MatchGeneric(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 7, 8, 9, 15, 16, 31, 32, 33, 63, 64, 65, 255, 256, 257, 1000} {
		a := randBytes(r, n)
		b := append([]byte(nil), a...)

		require.True(t, blockEqualGeneric(a, b), "n=%d", n)
		require.True(t, Equal(a, b), "n=%d", n)
		require.True(t, BlockEqual(unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), n), "n=%d", n)
		require.Equal(t, -1, IndexMismatch(a, b), "n=%d", n)

		for _, pos := range []int{0, n / 2, n - 1} {
			b[pos] ^= 0x80
			assert.False(t, blockEqualGeneric(a, b), "n=%d pos=%d", n, pos)
			assert.False(t, Equal(a, b), "n=%d pos=%d", n, pos)
			assert.Equal(t, pos, indexMismatchGeneric(a, b), "n=%d pos=%d", n, pos)
			assert.Equal(t, pos, IndexMismatch(a, b), "n=%d pos=%d", n, pos)
			b[pos] ^= 0x80
		}
	}
}

func TestBlockEqual_Empty(t *testing.T) {
	assert.True(t, BlockEqual(nil, nil, 0))
	assert.True(t, Equal(nil, nil))
	assert.Equal(t, -1, IndexMismatch(nil, nil))
}

func TestIndexMismatch_FirstOfMany(t *testing.T) {
	a := make([]byte, 600)
	b := make([]byte, 600)
	b[300] = 1
	b[301] = 1
	b[599] = 1
	assert.Equal(t, 300, IndexMismatch(a, b))
	assert.Equal(t, 300, indexMismatchGeneric(a, b))
}
