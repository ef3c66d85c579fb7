package synth

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoCreator is matched by NoCreatorError.
	ErrNoCreator = errors.New("synth: no creator found")
	// ErrUnsupportedType is returned by a creator asked for a type it does not handle.
	ErrUnsupportedType = errors.New("synth: unsupported type")
	ErrNilType         = errors.New("synth: type cannot be nil")
)

// NoCreatorError reports a type no creator in the chain can handle.
type NoCreatorError struct {
	Type reflect.Type
}

func (e *NoCreatorError) Error() string {
	return fmt.Sprintf("synth: could not find a creator for %s", e.Type)
}

func (e *NoCreatorError) Unwrap() error { return ErrNoCreator }

func IsNoCreatorError(err error) bool {
	var e *NoCreatorError
	return errors.As(err, &e)
}

func unsupported(t reflect.Type, want string) error {
	return fmt.Errorf("%w: expecting %s however received %s", ErrUnsupportedType, want, t)
}
