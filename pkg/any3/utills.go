package any3

import (
	"reflect"
)

// IsNil reports whether i is absent: a nil interface or a nil pointer, map,
// slice, func, chan or unsafe pointer.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func equalValues[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	av, bv := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}
	if av.Type() == bv.Type() && av.Comparable() && bv.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(any(a), any(b))
}
