package argument

import (
	"errors"
	"fmt"
)

// ErrArgument is matched by every error produced by this package.
var ErrArgument = errors.New("invalid argument")

// ParamError is an error attributed to a single parameter of a callable.
// Any error implementing it is treated as an invalid-argument failure.
type ParamError interface {
	error
	ParamName() string
}

// NilError reports a required argument that was nil or absent.
// It is the nil-argument sub-class of ParamError.
type NilError struct {
	Param   string
	Message string
}

func (e *NilError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "value cannot be nil"
	}
	return fmt.Sprintf("%s (parameter '%s')", msg, e.Param)
}

func (e *NilError) ParamName() string { return e.Param }

func (e *NilError) Is(target error) bool { return target == ErrArgument }

// InvalidError reports an argument whose value is not acceptable.
type InvalidError struct {
	Param   string
	Message string
	Err     error
}

func (e *InvalidError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "value is invalid"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (parameter '%s'): %v", msg, e.Param, e.Err)
	}
	return fmt.Sprintf("%s (parameter '%s')", msg, e.Param)
}

func (e *InvalidError) ParamName() string { return e.Param }

func (e *InvalidError) Unwrap() error { return e.Err }

func (e *InvalidError) Is(target error) bool { return target == ErrArgument }

// Nil returns a NilError for param.
func Nil(param string) *NilError {
	return &NilError{Param: param}
}

// Invalid returns an InvalidError for param with message.
func Invalid(param, message string) *InvalidError {
	return &InvalidError{Param: param, Message: message}
}

// Wrap returns an InvalidError for param carrying err as its cause.
func Wrap(param string, err error) *InvalidError {
	return &InvalidError{Param: param, Message: "value is invalid", Err: err}
}

// IsNil reports whether err carries a NilError.
func IsNil(err error) bool {
	var e *NilError
	return errors.As(err, &e)
}

// ParamOf returns the parameter name err is attributed to.
func ParamOf(err error) (string, bool) {
	var pe ParamError
	if errors.As(err, &pe) {
		return pe.ParamName(), true
	}
	return "", false
}
