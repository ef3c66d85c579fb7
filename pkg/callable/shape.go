package callable

import (
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// awaiter waits on an awaitable result value and returns its outcome.
type awaiter func(aw reflect.Value) (any, error)

// classify inspects the results of ft once. An awaitable is expected as the
// first result, optionally followed by an error reported before any work is
// started: A or (A, error).
func classify(ft reflect.Type) (ReturnShape, awaiter) {
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return Sync, nil
	}
	return awaitableShape(ft.Out(0))
}

func awaitableShape(t reflect.Type) (ReturnShape, awaiter) {
	if t.Kind() == reflect.Chan && t.Elem() == errorType && t.ChanDir()&reflect.RecvDir != 0 {
		return AsyncVoid, awaitChan
	}

	m, ok := t.MethodByName("Await")
	if !ok {
		return Sync, nil
	}
	mt := m.Type
	in := mt.NumIn()
	if t.Kind() != reflect.Interface {
		in-- // receiver
	}
	if in != 0 {
		return Sync, nil
	}
	switch {
	case mt.NumOut() == 1 && mt.Out(0) == errorType:
		return AsyncVoid, awaitMethod
	case mt.NumOut() == 2 && mt.Out(1) == errorType:
		return AsyncValue, awaitMethod
	}
	return Sync, nil
}

func awaitChan(aw reflect.Value) (any, error) {
	v, ok := aw.Recv()
	if !ok || v.IsNil() {
		return nil, nil
	}
	return nil, v.Interface().(error)
}

func awaitMethod(aw reflect.Value) (any, error) {
	out := aw.MethodByName("Await").Call(nil)
	errv := out[len(out)-1]
	if !errv.IsNil() {
		return nil, errv.Interface().(error)
	}
	if len(out) == 2 {
		return out[0].Interface(), nil
	}
	return nil, nil
}
