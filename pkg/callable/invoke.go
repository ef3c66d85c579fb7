package callable

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/guardcheck/pkg/async"
)

// Coerce converts v so it can be passed for p. An invalid v stands for an
// absent value and is returned unchanged. For by-ref parameters a pointer to
// the pointee type is accepted and dereferenced. Numbers convert across
// kinds only when the value survives the round trip, so an int decoded from
// YAML fits an int64 or float64 parameter but -1 never becomes a uint.
func Coerce(p Parameter, v reflect.Value) (reflect.Value, error) {
	if !v.IsValid() {
		return v, nil
	}
	if p.Mode == ByRef && v.Type() == p.PassedType() {
		if v.IsNil() {
			return reflect.Value{}, nil
		}
		v = v.Elem()
	}

	switch vt := v.Type(); {
	case vt == p.Type:
		return v, nil
	case vt.AssignableTo(p.Type):
		out := reflect.New(p.Type).Elem()
		out.Set(v)
		return out, nil
	case vt.Kind() == p.Type.Kind() && vt.ConvertibleTo(p.Type):
		return v.Convert(p.Type), nil
	case isNumber(vt) && isNumber(p.Type):
		if out := v.Convert(p.Type); out.Convert(vt).Equal(v) {
			return out, nil
		}
	}
	return reflect.Value{}, &ArgumentTypeError{Param: p.Name, Want: p.Type, Got: v.Type()}
}

// Call invokes a synchronous callable with one value per parameter.
// observed is the failure produced by the callable itself: a non-nil trailing
// error or a recovered panic. err is non-nil only when the call could not be
// made at all.
func (d *Descriptor) Call(values []reflect.Value) (observed error, err error) {
	if d.shape.IsAwaitable() {
		return nil, ErrAwaitable
	}
	args, err := d.arguments(values)
	if err != nil {
		return nil, err
	}
	out, observed := d.invoke(args)
	if observed != nil {
		return observed, nil
	}
	return d.trailingError(out), nil
}

// CallAsync invokes an awaitable-returning callable and normalises every
// awaitable shape into one future. The future fails with the callable's own
// failure: an error returned before the awaitable, a panic, or the awaited
// rejection.
func (d *Descriptor) CallAsync(ctx context.Context, values []reflect.Value) (*async.Future[any], error) {
	if !d.shape.IsAwaitable() {
		return nil, ErrNotAwaitable
	}
	args, err := d.arguments(values)
	if err != nil {
		return nil, err
	}

	out, observed := d.invoke(args)
	if observed != nil {
		return async.Resolved[any](nil, observed), nil
	}
	if err := d.trailingError(out); err != nil {
		return async.Resolved[any](nil, err), nil
	}

	aw := out[0]
	if isNil(aw) {
		return async.Resolved[any](nil, nil), nil
	}
	return async.Async(ctx, aw, func(_ context.Context, aw reflect.Value) (res any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = recovered(r)
			}
		}()
		return d.await(aw)
	}), nil
}

// arguments materialises values into call arguments: absent values become the
// zero value of the passed type and by-ref values get a fresh pointer.
func (d *Descriptor) arguments(values []reflect.Value) ([]reflect.Value, error) {
	if len(values) != len(d.params) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArgumentCount, len(values), len(d.params))
	}

	args := make([]reflect.Value, len(values))
	for i, p := range d.params {
		v, err := Coerce(p, values[i])
		if err != nil {
			return nil, err
		}
		switch {
		case p.Mode == ByRef && v.IsValid():
			ptr := reflect.New(p.Type)
			ptr.Elem().Set(v)
			args[i] = ptr
		case !v.IsValid():
			args[i] = reflect.Zero(p.PassedType())
		default:
			args[i] = v
		}
	}
	return args, nil
}

func (d *Descriptor) invoke(args []reflect.Value) (out []reflect.Value, observed error) {
	defer func() {
		if r := recover(); r != nil {
			observed = recovered(r)
		}
	}()
	if d.variadic {
		return d.fn.CallSlice(args), nil
	}
	return d.fn.Call(args), nil
}

func (d *Descriptor) trailingError(out []reflect.Value) error {
	if !d.hasErr {
		return nil
	}
	ev := out[len(out)-1]
	if ev.IsNil() {
		return nil
	}
	return ev.Interface().(error)
}

func isNumber(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice:
		return v.IsNil()
	}
	return false
}
