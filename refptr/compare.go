package refptr

import (
	"fmt"
	"reflect"

	"github.com/xichen2020/foundation/refcnt"
)

// Compare orders two handles by the identity of their objects. Empty
// handles compare equal to each other and before every non-empty handle.
// It never looks at the contents of the objects.
func Compare[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) int {
	x, y := addr(a), addr(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Equal returns true if both handles refer to the same object or are both empty.
func Equal[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) bool {
	return addr(a) == addr(b)
}

// NotEqual returns true if the handles refer to different objects.
func NotEqual[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) bool {
	return !Equal(a, b)
}

// Less returns true if a orders before b.
func Less[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual returns true if a does not order after b.
func LessOrEqual[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) bool {
	return Compare(a, b) <= 0
}

// Greater returns true if a orders after b.
func Greater[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual returns true if a does not order before b.
func GreaterOrEqual[T, Y refcnt.RefCountable](a *Ptr[T], b *Ptr[Y]) bool {
	return Compare(a, b) >= 0
}

func addr[T refcnt.RefCountable](p *Ptr[T]) uintptr {
	if !p.Valid() {
		return 0
	}
	return identity(p.ptr)
}

func identity(v any) uintptr {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan:
		return rv.Pointer()
	}
	panic(fmt.Errorf("refptr: %T has no pointer identity", v))
}
