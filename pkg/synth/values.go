package synth

import (
	"reflect"
)

// ValueCreator produces the sentinel string for string kinds and the zero
// value for booleans, numbers and structs.
type ValueCreator struct {
	StringValue string
}

func (ValueCreator) CanHandle(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String, reflect.Struct,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

func (c ValueCreator) Create(t reflect.Type, _ Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "a string or value type")
	}
	if t.Kind() == reflect.String {
		s := c.StringValue
		if s == "" {
			s = DefaultStringValue
		}
		return reflect.ValueOf(s).Convert(t), nil
	}
	return reflect.Zero(t), nil
}

// PointerCreator produces a pointer to a valid value of the pointee type.
type PointerCreator struct{}

func (PointerCreator) CanHandle(t reflect.Type) bool { return t.Kind() == reflect.Pointer }

func (c PointerCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "a pointer type")
	}
	elem, err := chain.Create(t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	p := reflect.New(t.Elem())
	if err := assign(p.Elem(), elem); err != nil {
		return reflect.Value{}, err
	}
	return p, nil
}

// FuncCreator produces a no-op function returning zero values.
type FuncCreator struct{}

func (FuncCreator) CanHandle(t reflect.Type) bool { return t.Kind() == reflect.Func }

func (c FuncCreator) Create(t reflect.Type, _ Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "a func type")
	}
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		out := make([]reflect.Value, t.NumOut())
		for i := range out {
			out[i] = reflect.Zero(t.Out(i))
		}
		return out
	}), nil
}
