package argument

import (
	"reflect"
	"strings"
)

// NotNil returns a NilError when v is nil, including typed nil pointers,
// slices, maps, channels and funcs stored in an interface.
func NotNil(param string, v any) error {
	if v == nil {
		return Nil(param)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return Nil(param)
		}
	}
	return nil
}

// NotEmpty rejects an empty string.
func NotEmpty[S ~string](param string, s S) error {
	if s == "" {
		return Invalid(param, "value cannot be empty")
	}
	return nil
}

// NotEmptyOrWhitespace rejects an empty string or one made only of whitespace.
func NotEmptyOrWhitespace[S ~string](param string, s S) error {
	if strings.TrimSpace(string(s)) == "" {
		return Invalid(param, "value cannot be empty or whitespace")
	}
	return nil
}

// NotEmptySlice rejects a nil slice with a NilError and an empty one with an InvalidError.
func NotEmptySlice[T any](param string, s []T) error {
	if s == nil {
		return Nil(param)
	}
	if len(s) == 0 {
		return Invalid(param, "value cannot be an empty collection")
	}
	return nil
}

// NotEmptyMap rejects a nil map with a NilError and an empty one with an InvalidError.
func NotEmptyMap[K comparable, V any](param string, m map[K]V) error {
	if m == nil {
		return Nil(param)
	}
	if len(m) == 0 {
		return Invalid(param, "value cannot be an empty collection")
	}
	return nil
}

// NotEqual rejects v when it equals invalid.
func NotEqual[T comparable](param string, v, invalid T) error {
	if v == invalid {
		return Invalid(param, "value is not allowed")
	}
	return nil
}

// First returns the first non-nil error, so guard clauses can be chained in declaration order.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
