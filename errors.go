package guardcheck

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by a Validator matches exactly one of
// them with errors.Is, except failures of the invocation machinery and
// context errors, which are returned as they are.
var (
	ErrConfiguration      = errors.New("guardcheck: configuration error")
	ErrCapabilityMismatch = errors.New("guardcheck: capability mismatch")
	ErrCreation           = errors.New("guardcheck: value creation failed")
	ErrRuleViolation      = errors.New("guardcheck: rule violation")
)

// Configuration errors.
var (
	ErrNilDescriptor          = configurationError("callable descriptor cannot be nil")
	ErrNoParameters           = configurationError("callable has no parameters")
	ErrEmptyCreatorChain      = configurationError("creator chain cannot be empty")
	ErrBaselineLength         = configurationError("baseline must hold one value per parameter")
	ErrEmptyParameterName     = configurationError("parameter name cannot be empty")
	ErrUnknownParameter       = configurationError("unknown parameter")
	ErrNoRules                = configurationError("at least one rule is required")
	ErrAlreadyConfigured      = configurationError("parameter is already configured, use UpdateParameter")
	ErrParameterNotConfigured = configurationError("parameter has not been configured")
	ErrNothingConfigured      = configurationError("no parameter has been configured")
	ErrBaselineFixesValue     = configurationError("an explicit baseline already fixes the value of every parameter")
	ErrArgumentCount          = configurationError("one argument per parameter is required")
	ErrInvalidState           = configurationError("operation not allowed in the current state")
)

func configurationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, msg)
}

// UnconfiguredParametersError lists every parameter without rules.
type UnconfiguredParametersError struct {
	Params []string
}

func (e *UnconfiguredParametersError) Error() string {
	return "the following parameters have not been configured: " + strings.Join(e.Params, ", ")
}

func (e *UnconfiguredParametersError) Unwrap() error { return ErrConfiguration }

// CapabilityMismatchError is returned when Validate is used for an awaitable
// callable or ValidateAsync for a synchronous one. The callable is not invoked.
type CapabilityMismatchError struct {
	Callable string
	Reason   string
}

func (e *CapabilityMismatchError) Error() string {
	return fmt.Sprintf("callable '%s' %s", e.Callable, e.Reason)
}

func (e *CapabilityMismatchError) Unwrap() error { return ErrCapabilityMismatch }

// RuleViolationError reports the first case where the callable did not behave
// as the rule expects.
type RuleViolationError struct {
	Rule   string
	Param  string
	Reason string
}

func (e *RuleViolationError) Error() string {
	msg := fmt.Sprintf("rule '%s' for parameter '%s' was not respected.", e.Rule, e.Param)
	if e.Reason == "" {
		return msg
	}
	return msg + " " + e.Reason
}

func (e *RuleViolationError) Unwrap() error { return ErrRuleViolation }

// IsRuleViolation reports whether err is a rule violation.
func IsRuleViolation(err error) bool {
	var e *RuleViolationError
	return errors.As(err, &e)
}

// IsConfigurationError reports whether err is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func creationError(param string, err error) error {
	return fmt.Errorf("%w: parameter '%s': %w", ErrCreation, param, err)
}
