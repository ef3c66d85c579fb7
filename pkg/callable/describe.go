package callable

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Option configures how a callable is described.
type Option func(*options)

type options struct {
	names       []string
	byRef       []string
	name        string
	constructor bool
}

// Params names the parameters in declaration order. Go reflection does not
// expose parameter names, so every parameter must be named here.
func Params(names ...string) Option {
	return func(o *options) { o.names = append(o.names, names...) }
}

// WithByRef marks pointer parameters as by-ref: values are produced for the
// pointee type and a fresh pointer is passed on every call.
func WithByRef(names ...string) Option {
	return func(o *options) { o.byRef = append(o.byRef, names...) }
}

// WithName overrides the diagnostic name of the callable.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// Func describes a plain function or method value.
func Func(fn any, opts ...Option) (*Descriptor, error) {
	return describe(nil, fn, opts)
}

// Constructor describes a function that builds a value, conventionally
// NewX(...) (*X, error). Constructors are always invoked synchronously.
func Constructor(fn any, opts ...Option) (*Descriptor, error) {
	return describe(nil, fn, append(opts, func(o *options) { o.constructor = true }))
}

// Method describes the exported method named method of target.
func Method(target any, method string, opts ...Option) (*Descriptor, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	tv := reflect.ValueOf(target)
	if (tv.Kind() == reflect.Pointer || tv.Kind() == reflect.Interface) && tv.IsNil() {
		return nil, ErrNilTarget
	}
	m := tv.MethodByName(method)
	if !m.IsValid() {
		return nil, &MethodNotFoundError{Type: tv.Type(), Method: method}
	}
	opts = append([]Option{WithName(fmt.Sprintf("%s.%s", tv.Type(), method))}, opts...)
	return describe(target, m.Interface(), opts)
}

func describe(target any, fn any, opts []Option) (*Descriptor, error) {
	if fn == nil {
		return nil, ErrNilCallable
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: got %s", ErrNotAFunction, fv.Type())
	}
	if fv.IsNil() {
		return nil, ErrNilCallable
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	ft := fv.Type()
	params, err := buildParams(ft, o)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		name:        o.name,
		fn:          fv,
		target:      target,
		params:      params,
		constructor: o.constructor,
		variadic:    ft.IsVariadic(),
		hasErr:      ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType,
	}
	if d.name == "" {
		d.name = funcName(fv)
	}
	if !d.constructor {
		d.shape, d.await = classify(ft)
	}
	return d, nil
}

func buildParams(ft reflect.Type, o *options) ([]Parameter, error) {
	if len(o.names) != ft.NumIn() {
		return nil, fmt.Errorf("%w: %d names for %d parameters", ErrParamNames, len(o.names), ft.NumIn())
	}

	params := make([]Parameter, ft.NumIn())
	seen := make(map[string]bool, len(o.names))
	for i, name := range o.names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: parameter %d has an empty name", ErrParamNames, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate name '%s'", ErrParamNames, name)
		}
		seen[name] = true
		params[i] = Parameter{Name: name, Type: ft.In(i), Position: i, Mode: ByValue}
	}

	for _, name := range o.byRef {
		i := indexOf(params, name)
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown parameter '%s'", ErrInvalidByRef, name)
		}
		if params[i].Type.Kind() != reflect.Pointer {
			return nil, fmt.Errorf("%w: parameter '%s' has type %s", ErrInvalidByRef, name, params[i].Type)
		}
		params[i].Type = params[i].Type.Elem()
		params[i].Mode = ByRef
	}
	return params, nil
}

func indexOf(params []Parameter, name string) int {
	for i, p := range params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func funcName(fv reflect.Value) string {
	if f := runtime.FuncForPC(fv.Pointer()); f != nil {
		return f.Name()
	}
	return fv.Type().String()
}
