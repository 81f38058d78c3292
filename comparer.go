package seqeq

import "reflect"

// Comparer defines element equality for a Sequence.
type Comparer[T any] interface {
	Equal(a, b T) bool
}

// Equaler is implemented by types that define their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// ComparerFunc adapts an ordinary function to a Comparer.
type ComparerFunc[T any] func(a, b T) bool

// Equal calls f(a, b).
func (f ComparerFunc[T]) Equal(a, b T) bool { return f(a, b) }

// identityComparer compares with ==. It is the only comparer that lets a
// Sequence fall back to byte comparison for types whose == is bit equality.
type identityComparer[T comparable] struct{}

func (identityComparer[T]) Equal(a, b T) bool { return a == b }

func (identityComparer[T]) identity() {}

// equalerComparer delegates to T's own Equal method.
type equalerComparer[T any] struct{}

func (equalerComparer[T]) Equal(a, b T) bool {
	return any(a).(Equaler[T]).Equal(b)
}

// nilSafeComparer delegates to T's Equal method for pointer and interface
// types. Two nils are equal, a nil and a non-nil are not, and the method is
// never called on nil.
type nilSafeComparer[T comparable] struct{}

func (nilSafeComparer[T]) Equal(a, b T) bool {
	var zero T
	if a == zero || b == zero {
		return a == b
	}
	return any(a).(Equaler[T]).Equal(b)
}

type identity interface {
	identity()
}

// Default returns the canonical comparer for T: T's Equal method when T
// implements Equaler[T], and == otherwise. For pointer and interface types
// nil values are handled before the method is called.
func Default[T comparable]() Comparer[T] {
	t := reflect.TypeFor[T]()
	if !t.Implements(reflect.TypeFor[Equaler[T]]()) {
		return identityComparer[T]{}
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return nilSafeComparer[T]{}
	default:
		return equalerComparer[T]{}
	}
}

// Identity returns a comparer that uses == even when T has an Equal method.
func Identity[T comparable]() Comparer[T] {
	return identityComparer[T]{}
}

func isIdentity[T any](c Comparer[T]) bool {
	_, ok := c.(identity)
	return ok
}
