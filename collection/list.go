// Package collection provides an array-backed list whose backing buffer can
// be handed to the sequence equality engine without copying.
package collection

import (
	"errors"
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/seqeq"
)

// MaxLen is the largest capacity a List grows to.
const MaxLen = math.MaxInt32

// ErrNegativeCapacity is returned when a List is created with capacity < 0.
var ErrNegativeCapacity = errors.New("negative capacity")

// ErrCapacityExceeded is returned when a List would grow past MaxLen.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// List is a growable list over a caller-visible backing array.
//
// Elements past Len are slack: they are never compared and may hold stale
// values. A List is not safe for concurrent mutation.
type List[T any] struct {
	array []T // len(array) is the capacity
	count int
}

// New creates an empty List with the given capacity.
func New[T any](capacity int) (*List[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &List[T]{array: make([]T, capacity)}, nil
}

// FromSlice wraps array without copying; every element counts as an item.
func FromSlice[T any](array []T) *List[T] {
	return &List[T]{array: array, count: len(array)}
}

// FromSliceCount wraps array without copying; the first count elements are
// items and the rest is slack. count is clamped to [0, len(array)].
func FromSliceCount[T any](array []T, count int) *List[T] {
	return &List[T]{array: array, count: min(max(count, 0), len(array))}
}

// FromSliceTrimZero wraps array without copying and drops zero values: a
// list whose first element is zero is empty, otherwise trailing zeros are
// excluded from the items.
func FromSliceTrimZero[T comparable](array []T) *List[T] {
	var zero T
	count := len(array)
	if count > 0 && array[0] == zero {
		return FromSliceCount(array, 0)
	}
	for count > 0 && array[count-1] == zero {
		count--
	}
	return FromSliceCount(array, count)
}

// FromSeq collects seq into a new List with a private backing array.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	array := slices.Collect(seq)
	return &List[T]{array: array, count: len(array)}
}

// Clone returns a List with a private copy of l's items.
func (l *List[T]) Clone() *List[T] {
	return FromSlice(slices.Clone(l.Items()))
}

// Len returns the number of items.
func (l *List[T]) Len() int { return l.count }

// Cap returns the length of the backing array.
func (l *List[T]) Cap() int { return len(l.array) }

// Items returns the items as a slice sharing the backing array.
func (l *List[T]) Items() []T { return l.array[:l.count:l.count] }

// Unwrap returns the whole backing array, including slack.
func (l *List[T]) Unwrap() []T { return l.array }

// All returns an iterator over the items.
func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.Items())
}

// Get returns the item at index i. It panics if i is out of range.
func (l *List[T]) Get(i int) T {
	return l.Items()[i]
}

// Set replaces the item at index i. It panics if i is out of range.
func (l *List[T]) Set(i int, v T) {
	l.Items()[i] = v
}

// Add appends v, growing the backing array if needed.
func (l *List[T]) Add(v T) error {
	if err := l.ensureCapacity(l.count + 1); err != nil {
		return err
	}
	l.array[l.count] = v
	l.count++
	return nil
}

// AddRange appends vs, growing the backing array at most once.
func (l *List[T]) AddRange(vs ...T) error {
	if err := l.ensureCapacity(l.count + len(vs)); err != nil {
		return err
	}
	l.count += copy(l.array[l.count:], vs)
	return nil
}

// RemoveAt removes the item at index i, shifting later items down in place.
// It panics if i is out of range.
func (l *List[T]) RemoveAt(i int) {
	items := l.Items()
	_ = items[i]
	copy(items[i:], items[i+1:])
	var zero T
	l.array[l.count-1] = zero
	l.count--
}

// Clear removes all items and zeroes them, keeping the capacity.
func (l *List[T]) Clear() {
	clear(l.array[:l.count])
	l.count = 0
}

// ensureCapacity doubles the backing array until it holds n items.
func (l *List[T]) ensureCapacity(n int) error {
	old := len(l.array)
	if n <= old {
		return nil
	}
	if n > MaxLen {
		return ErrCapacityExceeded
	}

	var grown int
	if old >= MaxLen/2 {
		grown = MaxLen
	} else {
		grown = max(old*2, n)
	}

	array := make([]T, grown)
	copy(array, l.array[:l.count])
	l.array = array
	return nil
}

// EqualWith reports whether l and other hold equal items under seq.
// Slack past Len is never compared.
func (l *List[T]) EqualWith(seq *seqeq.Sequence[T], other *List[T]) bool {
	return seq.Equal(l.Items(), other.Items())
}

// EqualSliceWith reports whether l's items equal s under seq.
func (l *List[T]) EqualSliceWith(seq *seqeq.Sequence[T], s []T) bool {
	return seq.Equal(l.Items(), s)
}

// Equal reports whether a and b hold equal items under the canonical
// equality of T.
func Equal[T comparable](a, b *List[T]) bool {
	return seqeq.Equal(a.Items(), b.Items())
}

// EqualSlice reports whether l's items equal s under the canonical equality
// of T.
func EqualSlice[T comparable](l *List[T], s []T) bool {
	return seqeq.Equal(l.Items(), s)
}
