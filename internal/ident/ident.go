// Package ident implements strict reference-identity comparison.
//
// Identity is deliberately not deep equality: two values are identical only
// when they are the same comparable value or refer to the same underlying
// data. Change tracking and collection removal both depend on this
// distinction, so the rules live in one place.
package ident

import "reflect"

// Same reports whether a and b are identical under strict identity
// semantics:
//
//   - two nils are identical
//   - pointers, maps, channels and funcs compare by referent
//   - slices compare by backing array, offset and length
//   - other comparable values compare with ==
//   - values of incomparable types are never identical
func Same(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	}

	if !va.Type().Comparable() {
		return false
	}
	return a == b
}
