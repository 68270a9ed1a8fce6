package arr

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/internal/truth"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reflection helpers
// ─────────────────────────────────────────────────────────────────────────────

// Invoke calls the exported method named method on every element with args
// and collects the results in order. A method with a single return value
// contributes that value, one with none contributes nil, and one with several
// contributes them as a []any.
//
//	arr.Invoke([]*strings.Builder{a, b}, "Len") // → [3 5]
//
// Returns [ErrMissingMethod] when an element has no such method, and
// [ErrBadArguments] when args do not fit its signature. Methods with
// pointer receivers are only found on pointer elements.
func Invoke[T any](items []T, method string, args ...any) ([]any, error) {
	out := make([]any, len(items))
	for i, item := range items {
		rv := reflect.ValueOf(item)
		if !rv.IsValid() {
			return nil, fmt.Errorf("%w: %q on nil element %d", ErrMissingMethod, method, i)
		}
		m := rv.MethodByName(method)
		if !m.IsValid() {
			return nil, fmt.Errorf("%w: %q on element %d (%T)", ErrMissingMethod, method, i, item)
		}
		in, err := callArgs(m.Type(), args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q on element %d: %v", ErrBadArguments, method, i, err)
		}
		out[i] = collectResults(m.Call(in))
	}
	return out, nil
}

func callArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("want at least %d arguments, got %d", fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("want %d arguments, got %d", fixed, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var want reflect.Type
		if i < fixed {
			want = ft.In(i)
		} else {
			want = ft.In(fixed).Elem()
		}
		if arg == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("argument %d: nil is not a valid %v", i, want)
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: %v is not assignable to %v", i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

func collectResults(results []reflect.Value) any {
	switch len(results) {
	case 0:
		return nil
	case 1:
		return results[0].Interface()
	}
	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}
	return out
}

// PluckField returns the value of the named struct field for every element
// whose field value is truthy, skipping the rest. Elements may be structs or
// pointers to structs; nil pointers are skipped.
//
// Truthy means not the zero value of the field's type, so a zero struct
// field (such as time.Time{}) is skipped just like 0, "" and nil. Use
// [Invoke] or [Map] to collect every value regardless.
//
// Returns [ErrNotStruct] for any other element kind, and for a struct that has
// no exported field by that name.
func PluckField[T any](items []T, field string) ([]any, error) {
	out := make([]any, 0, len(items))
	for i, item := range items {
		rv := reflect.ValueOf(item)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				break
			}
			rv = rv.Elem()
		}
		if rv.Kind() == reflect.Pointer {
			continue
		}
		if rv.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: element %d is %T", ErrNotStruct, i, item)
		}
		sf, ok := rv.Type().FieldByName(field)
		if !ok || !sf.IsExported() {
			return nil, fmt.Errorf("%w: %T has no exported field %q", ErrNotStruct, item, field)
		}
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			// nil embedded pointer on the path
			continue
		}
		v := fv.Interface()
		if truth.Of(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
