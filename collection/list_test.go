package collection

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seqeq"
)

func TestNew(t *testing.T) {
	l, err := New[int](4)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 4, l.Cap())

	l, err = New[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Cap())

	_, err = New[int](-1)
	assert.ErrorIs(t, err, ErrNegativeCapacity)
}

func TestList_AddGrowsByDoubling(t *testing.T) {
	l, err := New[int32](2)
	require.NoError(t, err)

	caps := []int{}
	for i := range 9 {
		require.NoError(t, l.Add(int32(i)))
		caps = append(caps, l.Cap())
	}

	assert.Equal(t, []int{2, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5, 6, 7, 8}, l.Items())
}

func TestList_AddFromZeroCapacity(t *testing.T) {
	l, err := New[string](0)
	require.NoError(t, err)
	require.NoError(t, l.Add("a"))
	assert.Equal(t, 1, l.Cap())
	require.NoError(t, l.Add("b"))
	assert.Equal(t, 2, l.Cap())
}

func TestList_AddRange(t *testing.T) {
	l, err := New[int](1)
	require.NoError(t, err)
	require.NoError(t, l.AddRange(1, 2, 3, 4, 5))
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, 5, l.Cap())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Items())
}

func TestList_GetSet(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	assert.Equal(t, 2, l.Get(1))
	l.Set(1, 20)
	assert.Equal(t, 20, l.Get(1))
	assert.Panics(t, func() { l.Get(3) })
}

func TestList_RemoveAt(t *testing.T) {
	backing := []int{1, 2, 3, 4}
	l := FromSlice(backing)
	l.RemoveAt(1)

	assert.Equal(t, []int{1, 3, 4}, l.Items())
	assert.Equal(t, []int{1, 3, 4, 0}, l.Unwrap())
	assert.Panics(t, func() { l.RemoveAt(3) })
}

func TestList_Clear(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 3, l.Cap())
	assert.Equal(t, []int{0, 0, 0}, l.Unwrap())
}

func TestFromSliceCount(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	assert.Equal(t, []int{1, 2}, FromSliceCount(arr, 2).Items())
	assert.Equal(t, 0, FromSliceCount(arr, -3).Len())
	assert.Equal(t, 4, FromSliceCount(arr, 10).Len())

	// No copy: the list shares the array.
	l := FromSliceCount(arr, 2)
	l.Set(0, 100)
	assert.Equal(t, 100, arr[0])
}

func TestFromSliceTrimZero(t *testing.T) {
	a, b := new(int), new(int)

	tests := []struct {
		name string
		in   []*int
		want int
	}{
		{"empty", nil, 0},
		{"leading nil", []*int{nil, a, b}, 0},
		{"trailing nils", []*int{a, b, nil, nil}, 2},
		{"inner nil kept", []*int{a, nil, b}, 3},
		{"no nils", []*int{a, b}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := FromSliceTrimZero(tt.in)
			assert.Equal(t, tt.want, l.Len())
			assert.Equal(t, len(tt.in), l.Cap())
		})
	}
}

func TestFromSeq(t *testing.T) {
	l := FromSeq(slices.Values([]string{"x", "y"}))
	assert.Equal(t, []string{"x", "y"}, l.Items())

	var got []string
	for i, v := range l.All() {
		got = append(got, strings.Repeat(v, i+1))
	}
	assert.Equal(t, []string{"x", "yy"}, got)
}

func TestList_Clone(t *testing.T) {
	l := FromSliceCount([]int{1, 2, 3}, 2)
	c := l.Clone()
	c.Set(0, 9)
	assert.Equal(t, 1, l.Get(0))
	assert.Equal(t, 2, c.Cap())
}

func TestEqual_IgnoresSlack(t *testing.T) {
	a := FromSliceCount([]int32{1, 2, 3, 4, 99, 98}, 4)
	b := FromSliceCount([]int32{1, 2, 3, 4, 7}, 4)

	assert.True(t, Equal(a, b))
	assert.True(t, EqualSlice(a, []int32{1, 2, 3, 4}))
	assert.False(t, EqualSlice(a, []int32{1, 2, 3, 4, 99}))

	b.Set(2, 9)
	assert.False(t, Equal(a, b))
}

func TestList_EqualWith(t *testing.T) {
	caseless := seqeq.New[string](seqeq.ComparerFunc[string](strings.EqualFold))
	a := FromSlice([]string{"Go", "Seq"})
	b := FromSlice([]string{"go", "SEQ"})

	assert.True(t, a.EqualWith(caseless, b))
	assert.True(t, a.EqualSliceWith(caseless, []string{"GO", "seq"}))
	assert.False(t, a.EqualWith(seqeq.For[string](), b))
}
