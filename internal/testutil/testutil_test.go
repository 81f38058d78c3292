package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegers_Deterministic(t *testing.T) {
	a := Integers[int32](NewRNG(4711), 64)
	b := Integers[int32](NewRNG(4711), 64)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), NewRNG(4711).Seed())
}

func TestCloneAndCorrupt(t *testing.T) {
	a := Integers[uint16](NewRNG(1), 16)
	b := Clone(a)
	assert.Equal(t, a, b)

	Corrupt(b, 7)
	assert.NotEqual(t, a[7], b[7])
	assert.Equal(t, a[:7], b[:7])
	assert.Equal(t, a[8:], b[8:])
}

func TestBytes(t *testing.T) {
	r := NewRNG(2)
	assert.Len(t, r.Bytes(33), 33)
	assert.Less(t, r.Intn(10), 10)
	_ = r.Uint64()
}
