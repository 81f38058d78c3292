package wordsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	never := func() int {
		t.Fatal("measure must not be called for a concrete marker")
		return 0
	}

	tests := []struct {
		name    string
		marker  int
		measure func() int
		want    int
		wantErr bool
	}{
		{"constant 4", 4, never, 4, false},
		{"constant 8", 8, never, 8, false},
		{"runtime 4", Indeterminate, func() int { return 4 }, 4, false},
		{"runtime 8", Indeterminate, func() int { return 8 }, 8, false},
		{"runtime 2", Indeterminate, func() int { return 2 }, 0, true},
		{"runtime 16", Indeterminate, func() int { return 16 }, 0, true},
		{"bogus marker", 3, never, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.marker, tt.measure)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedPlatform)
				var upe *UnsupportedPlatformError
				require.ErrorAs(t, err, &upe)
				assert.NotZero(t, upe.Width)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNative(t *testing.T) {
	w, err := Native()
	require.NoError(t, err)
	assert.Equal(t, Measured(), w)
	if Constant != Indeterminate {
		assert.Equal(t, Constant, w)
	}

	// Resolved once; repeated calls agree.
	w2, err := Native()
	require.NoError(t, err)
	assert.Equal(t, w, w2)
}

func TestUnsupportedPlatformError_Message(t *testing.T) {
	err := &UnsupportedPlatformError{Width: 2}
	assert.Contains(t, err.Error(), "2 bytes")
}
