package tree

import (
	"math"
	"reflect"
)

// ShallowEqual compares identifier values. Scalars compare by value; slices,
// arrays, maps, structs and pointers to structs compare one level deep, with
// their members compared by value or, for reference types, by identity.
func ShallowEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice, reflect.Array:
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !sameValue(va.Index(i), vb.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			other := vb.MapIndex(iter.Key())
			if !other.IsValid() || !sameValue(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Pointer:
		if va.Pointer() == vb.Pointer() {
			return true
		}
		if va.IsNil() || vb.IsNil() || va.Elem().Kind() != reflect.Struct {
			return false
		}
		return sameFields(va.Elem(), vb.Elem())
	case reflect.Struct:
		return sameFields(va, vb)
	}
	return sameValue(va, vb)
}

func sameFields(a, b reflect.Value) bool {
	for i := 0; i < a.NumField(); i++ {
		if !sameValue(a.Field(i), b.Field(i)) {
			return false
		}
	}
	return true
}

func sameValue(x, y reflect.Value) bool {
	if x.Kind() == reflect.Interface {
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		x, y = x.Elem(), y.Elem()
	}
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Slice:
		return x.Pointer() == y.Pointer() && x.Len() == y.Len()
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	case reflect.Float32, reflect.Float64:
		// NaN is equal to itself, as with SameValueZero.
		fx, fy := x.Float(), y.Float()
		return fx == fy || (math.IsNaN(fx) && math.IsNaN(fy))
	}
	if x.Comparable() && y.Comparable() {
		return x.Equal(y)
	}
	return false
}

// ShallowEqualSlice reports whether two sequences have the same length and
// ShallowEqual members at every position.
func ShallowEqualSlice(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ShallowEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SlicesDiffer reports whether both sequences are present and differ. An
// absent (nil) side never counts as a change.
func SlicesDiffer(a, b []any) bool {
	return a != nil && b != nil && !ShallowEqualSlice(a, b)
}

// ContainsValue reports whether values holds an element ShallowEqual to v.
func ContainsValue(values []any, v any) bool {
	for _, candidate := range values {
		if ShallowEqual(candidate, v) {
			return true
		}
	}
	return false
}

// NormalizeValue maps integral numbers decoded from text formats to int so
// that identifiers from JSON, YAML, SQLite and configuration compare equal.
func NormalizeValue(v any) any {
	switch n := v.(type) {
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) && math.Abs(n) < 1<<53 {
			return int(n)
		}
	case float32:
		return NormalizeValue(float64(n))
	case int64:
		return int(n)
	case int32:
		return int(n)
	case uint64:
		if n <= math.MaxInt {
			return int(n)
		}
	case uint:
		if n <= math.MaxInt {
			return int(n)
		}
	}
	return v
}

// NormalizeValues applies NormalizeValue to every element. Nil stays nil.
func NormalizeValues(values []any) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = NormalizeValue(v)
	}
	return out
}
