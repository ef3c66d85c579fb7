package guardcheck

import (
	"fmt"

	"github.com/dmitrymomot/guardcheck/pkg/rule"
)

// ArgSpec describes one positional argument of SetupCall.
type ArgSpec struct {
	value any
	rules []rule.Rule
}

// Arg pairs a baseline value with the rules of the parameter at the same
// position. A nil value keeps the synthesised (or explicit baseline) value.
func Arg(value any, rules ...rule.Rule) ArgSpec {
	return ArgSpec{value: value, rules: rules}
}

// SetupCall configures every parameter from a call-shaped list of arguments,
// one per parameter in declaration order:
//
//	v.SetupCall(
//	    guardcheck.Arg(nil, rule.NotNull()),
//	    guardcheck.Arg(42, rule.None()),
//	)
//
// It is equivalent to SetParameterValue for each non-nil value followed by
// SetupParameter for each parameter. Nothing is applied if any argument is
// rejected.
func (v *Validator) SetupCall(args ...ArgSpec) error {
	if len(args) != len(v.params) {
		return fmt.Errorf("%w: got %d, want %d", ErrArgumentCount, len(args), len(v.params))
	}

	for i, p := range v.params {
		a := args[i]
		if _, err := v.checkRules(p.Name, a.rules); err != nil {
			return err
		}
		if _, ok := v.rules[p.Name]; ok {
			return fmt.Errorf("%w: '%s'", ErrAlreadyConfigured, p.Name)
		}
		if a.value == nil {
			continue
		}
		if v.hasBaseline {
			return fmt.Errorf("%w: '%s'", ErrBaselineFixesValue, p.Name)
		}
		if _, err := coerce(p, a.value); err != nil {
			return err
		}
	}

	for i, p := range v.params {
		if args[i].value != nil {
			if err := v.SetParameterValue(p.Name, args[i].value); err != nil {
				return err
			}
		}
		if err := v.SetupParameter(p.Name, args[i].rules...); err != nil {
			return err
		}
	}
	return nil
}
