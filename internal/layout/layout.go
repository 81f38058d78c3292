// Package layout classifies element types by how their equality can be tested.
package layout

import (
	"reflect"
	"sync"
)

// Class describes which comparison strategies an element type admits.
type Class uint8

const (
	// Generic types need a comparer: their == is not raw bit equality.
	Generic Class = iota
	// Primitive types compare equal exactly when their bytes are equal.
	Primitive
	// Vectorizable types are primitive integers that pack into vector lanes.
	Vectorizable
)

// String returns the string representation of a Class.
func (c Class) String() string {
	switch c {
	case Generic:
		return "generic"
	case Primitive:
		return "primitive"
	case Vectorizable:
		return "vectorizable"
	default:
		return "unknown"
	}
}

// Bitwise reports whether values of the class may be compared byte by byte.
func (c Class) Bitwise() bool {
	return c == Primitive || c == Vectorizable
}

// Info is the resolved layout of an element type.
type Info struct {
	Class Class
	Size  uintptr
	Align uintptr
}

var cache sync.Map // reflect.Type -> Info

// Of returns the layout of T. The result is computed once per type.
func Of[T any]() Info {
	return TypeOf(reflect.TypeFor[T]())
}

// TypeOf returns the layout of t. The result is computed once per type.
func TypeOf(t reflect.Type) Info {
	if v, ok := cache.Load(t); ok {
		return v.(Info)
	}
	info := Info{
		Class: classify(t),
		Size:  t.Size(),
		Align: uintptr(t.Align()),
	}
	v, _ := cache.LoadOrStore(t, info)
	return v.(Info)
}

func classify(t reflect.Type) Class {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return Vectorizable
	case reflect.Bool, reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		return Primitive
	case reflect.Array:
		if t.Len() == 0 || classify(t.Elem()).Bitwise() {
			return Primitive
		}
		return Generic
	case reflect.Struct:
		return classifyStruct(t)
	default:
		// Float and complex: NaN != NaN and -0 == +0.
		// String, interface: == follows indirection.
		// Slice, map, func: not comparable with ==.
		return Generic
	}
}

// classifyStruct accepts a struct only if its fields tile its memory with no
// padding and none of them is blank: padding bytes are unspecified and ==
// ignores blank fields.
func classifyStruct(t reflect.Type) Class {
	var next uintptr
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" || f.Offset != next || !classify(f.Type).Bitwise() {
			return Generic
		}
		next = f.Offset + f.Type.Size()
	}
	if next != t.Size() {
		return Generic
	}
	return Primitive
}
