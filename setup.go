package guardcheck

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/guardcheck/pkg/callable"
	"github.com/dmitrymomot/guardcheck/pkg/logger"
	"github.com/dmitrymomot/guardcheck/pkg/rule"
)

// SetupParameter assigns rules to a parameter that has not been configured yet.
// Rules run in the given order.
func (v *Validator) SetupParameter(name string, rules ...rule.Rule) error {
	p, err := v.checkRules(name, rules)
	if err != nil {
		return err
	}
	if _, ok := v.rules[p.Name]; ok {
		return fmt.Errorf("%w: '%s'", ErrAlreadyConfigured, p.Name)
	}
	return v.assign(p, rules)
}

// UpdateParameter replaces the rules of a configured parameter.
func (v *Validator) UpdateParameter(name string, rules ...rule.Rule) error {
	p, err := v.checkRules(name, rules)
	if err != nil {
		return err
	}
	if _, ok := v.rules[p.Name]; !ok {
		return fmt.Errorf("%w: '%s'", ErrParameterNotConfigured, p.Name)
	}
	return v.assign(p, rules)
}

// SetupAll assigns rules by type category to every parameter that is not
// configured yet. Parameters configured before are left untouched.
func (v *Validator) SetupAll(table RulesTable) error {
	resolved := make(map[string][]rule.Rule, len(v.params))
	var assigned []string
	for _, p := range v.params {
		if _, ok := v.rules[p.Name]; ok {
			continue
		}
		rules := table.For(p.Type)
		if err := v.checkNotEqualTo(p, rules); err != nil {
			return err
		}
		resolved[p.Name] = rules
		assigned = append(assigned, p.Name)
	}
	if len(assigned) == 0 {
		return nil
	}
	// Nothing is assigned until every parameter's rules were accepted.
	for name, rules := range resolved {
		v.rules[name] = rules
	}
	v.log.Debug("parameters configured by category", slog.Any("params", assigned))
	return v.fire(context.Background(), eventConfigure)
}

// SetupDefaults calls SetupAll with the rules profile from the settings, or
// with DefaultRulesTable when no profile is configured.
func (v *Validator) SetupDefaults() error {
	table := DefaultRulesTable()
	if path := v.settings.RulesProfile; path != "" {
		loaded, err := LoadRulesTable(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		table = loaded
	}
	return v.SetupAll(table)
}

// GetParameterRules returns a copy of the rules configured for name.
func (v *Validator) GetParameterRules(name string) ([]rule.Rule, error) {
	p, err := v.parameter(name)
	if err != nil {
		return nil, err
	}
	rules, ok := v.rules[p.Name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrParameterNotConfigured, p.Name)
	}
	return slices.Clone(rules), nil
}

// SetParameterValue overrides the synthesised baseline value of one
// parameter. A nil value stands for an absent value. It fails with
// ErrBaselineFixesValue when the validator was created with WithBaseline.
func (v *Validator) SetParameterValue(name string, value any) error {
	if v.hasBaseline {
		return fmt.Errorf("%w: '%s'", ErrBaselineFixesValue, name)
	}
	p, err := v.parameter(name)
	if err != nil {
		return err
	}
	val, err := coerce(p, value)
	if err != nil {
		return err
	}
	v.overrides[p.Position] = val
	return nil
}

func (v *Validator) parameter(name string) (callable.Parameter, error) {
	if strings.TrimSpace(name) == "" {
		return callable.Parameter{}, ErrEmptyParameterName
	}
	p, ok := v.desc.Parameter(name)
	if !ok {
		return callable.Parameter{}, fmt.Errorf("%w: '%s' is not a parameter of %s", ErrUnknownParameter, name, v.desc.Name())
	}
	return p, nil
}

func (v *Validator) checkRules(name string, rules []rule.Rule) (callable.Parameter, error) {
	p, err := v.parameter(name)
	if err != nil {
		return callable.Parameter{}, err
	}
	if len(rules) == 0 {
		return callable.Parameter{}, fmt.Errorf("%w: parameter '%s'", ErrNoRules, p.Name)
	}
	return p, v.checkNotEqualTo(p, rules)
}

// checkNotEqualTo rejects sentinels that cannot be passed for p, so a bad
// sentinel is reported at setup rather than as an invocation failure.
func (v *Validator) checkNotEqualTo(p callable.Parameter, rules []rule.Rule) error {
	for _, r := range rules {
		if r.Kind() != rule.KindNotEqualTo {
			continue
		}
		if _, err := coerce(p, r.Value()); err != nil {
			return fmt.Errorf("%s: %w", r.Name(), err)
		}
	}
	return nil
}

func (v *Validator) assign(p callable.Parameter, rules []rule.Rule) error {
	v.rules[p.Name] = slices.Clone(rules)
	v.log.Debug("parameter configured", logger.Param(p.Name), slog.Int("rules", len(rules)))
	return v.fire(context.Background(), eventConfigure)
}
