package callable

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNilCallable    = errors.New("callable: callable cannot be nil")
	ErrNotAFunction   = errors.New("callable: value is not a function")
	ErrNilTarget      = errors.New("callable: target cannot be nil")
	ErrParamNames     = errors.New("callable: parameter names do not match the function signature")
	ErrInvalidByRef   = errors.New("callable: by-ref parameter must be a pointer")
	ErrNotAwaitable   = errors.New("callable: callable does not return an awaitable")
	ErrAwaitable      = errors.New("callable: callable returns an awaitable")
	ErrArgumentCount  = errors.New("callable: wrong number of arguments")
	ErrArgumentType   = errors.New("callable: argument type mismatch")
	ErrMethodNotFound = errors.New("callable: method not found")
)

// PanicError wraps a non-error value recovered from a panicking callable.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("callable panicked: %v", e.Value)
}

// ArgumentTypeError reports a value that cannot be passed for a parameter.
type ArgumentTypeError struct {
	Param string
	Want  reflect.Type
	Got   reflect.Type
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("callable: cannot use value of type %s as %s for parameter '%s'", e.Got, e.Want, e.Param)
}

func (e *ArgumentTypeError) Unwrap() error { return ErrArgumentType }

// MethodNotFoundError reports a method name that does not exist on the target.
type MethodNotFoundError struct {
	Type   reflect.Type
	Method string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("callable: cannot find method with name '%s' on type '%s'", e.Method, e.Type)
}

func (e *MethodNotFoundError) Unwrap() error { return ErrMethodNotFound }

// recovered converts a recovered panic value into the observed failure.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}
