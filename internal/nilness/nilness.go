// Package nilness reports whether a generic value holds Go's nil for a
// reference-like kind.
package nilness

import "reflect"

// Is reports whether v is a nil pointer, interface, channel, func or unsafe
// pointer. Nil slices and maps are usable empty values and are not nil here.
func Is(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
