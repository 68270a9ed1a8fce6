// Package truth decides whether a value counts as "truthy" for the
// predicate-less forms of the combinators.
//
// A value is truthy when it is not the zero value of its dynamic type. NaN is
// falsy, and so is a nil interface. Non-nil empty slices and maps are truthy.
package truth

import (
	"math"
	"reflect"
)

// Of reports whether v is truthy.
func Of[T any](v T) bool {
	switch x := any(v).(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return !rv.IsZero()
}
