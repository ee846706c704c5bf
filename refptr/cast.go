package refptr

import (
	"fmt"
	"reflect"

	"github.com/xichen2020/foundation/refcnt"
)

// Convert returns a handle of type T sharing the object of src, adding a
// reference. Y must be assignable to T, typically because T is an
// interface Y implements; it panics otherwise, even if src is empty.
func Convert[T, Y refcnt.RefCountable](src *Ptr[Y]) *Ptr[T] {
	mustBeConvertible[T, Y]()
	if !src.Valid() {
		return &Ptr[T]{}
	}
	return NewPtr(any(src.ptr).(T), Acquire)
}

// ConvertMove is like Convert but takes over the reference of src, which
// is left empty. The count is not changed.
func ConvertMove[T, Y refcnt.RefCountable](src *Ptr[Y]) *Ptr[T] {
	mustBeConvertible[T, Y]()
	h := &Ptr[T]{}
	v, ok := src.take()
	if !ok {
		return h
	}
	h.ptr, h.ok = any(v).(T), true
	return h
}

// StaticCast returns a handle of type T sharing the object of src, adding
// a reference. The caller asserts that the object is a T; if it is not,
// the failed type assertion panics.
func StaticCast[T, Y refcnt.RefCountable](src *Ptr[Y]) *Ptr[T] {
	if !src.Valid() {
		return &Ptr[T]{}
	}
	return NewPtr(any(src.ptr).(T), Acquire)
}

// DynamicCast returns a handle of type T sharing the object of src if the
// object is a T, adding a reference. Otherwise it returns an empty handle
// and leaves src and the count untouched.
func DynamicCast[T, Y refcnt.RefCountable](src *Ptr[Y]) *Ptr[T] {
	if !src.Valid() {
		return &Ptr[T]{}
	}
	v, ok := any(src.ptr).(T)
	if !ok {
		return &Ptr[T]{}
	}
	return NewPtr(v, Acquire)
}

func mustBeConvertible[T, Y any]() {
	to := reflect.TypeOf((*T)(nil)).Elem()
	from := reflect.TypeOf((*Y)(nil)).Elem()
	if !from.AssignableTo(to) {
		panic(fmt.Errorf("refptr: cannot convert %v to %v", from, to))
	}
}
