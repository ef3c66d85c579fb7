package rule

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilParameter is returned when a rule is handed a nil parameter.
	ErrNilParameter = errors.New("rule: parameter cannot be nil")
	// ErrUnsupportedInvalidType is matched by UnsupportedTypeError.
	ErrUnsupportedInvalidType = errors.New("rule: unable to generate an invalid value")
	// ErrUnknownRule is returned when parsing an unknown rule name.
	ErrUnknownRule = errors.New("rule: unknown rule")
)

// UnsupportedTypeError reports a parameter type a rule cannot build an invalid value for.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("rule: unable to generate an invalid value for type '%s'", e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedInvalidType }

func IsUnsupportedTypeError(err error) bool {
	var e *UnsupportedTypeError
	return errors.As(err, &e)
}
