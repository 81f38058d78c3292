package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	if math.MaxInt > math.MaxUint32 {
		t.Run("invalid too large", func(t *testing.T) {
			v := int64(math.MaxUint32) + 1
			_, err := IntToUint32(int(v))
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestInt64ToInt(t *testing.T) {
	got, err := Int64ToInt(123)
	assert.NoError(t, err)
	assert.Equal(t, 123, got)

	got, err = Int64ToInt(-5)
	assert.NoError(t, err)
	assert.Equal(t, -5, got)

	if math.MaxInt == math.MaxInt32 {
		_, err = Int64ToInt(math.MaxInt64)
		assert.ErrorIs(t, err, ErrOverflow)
	}
}
