package guardcheck

import (
	"fmt"

	"github.com/dmitrymomot/guardcheck/pkg/callable"
)

// ForFunc describes fn with the given parameter names and creates a validator for it.
func ForFunc(fn any, params []string, opts ...Option) (*Validator, error) {
	desc, err := callable.Func(fn, callable.Params(params...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return New(desc, opts...)
}

// ForMethod looks up the exported method of target by name and creates a
// validator for it.
func ForMethod(target any, method string, params []string, opts ...Option) (*Validator, error) {
	desc, err := callable.Method(target, method, callable.Params(params...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return New(desc, opts...)
}

// ForConstructor creates a validator for a constructor such as NewX(...) (*X, error).
func ForConstructor(fn any, params []string, opts ...Option) (*Validator, error) {
	desc, err := callable.Constructor(fn, callable.Params(params...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return New(desc, opts...)
}
