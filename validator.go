package guardcheck

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/dmitrymomot/guardcheck/pkg/callable"
	"github.com/dmitrymomot/guardcheck/pkg/config"
	"github.com/dmitrymomot/guardcheck/pkg/logger"
	"github.com/dmitrymomot/guardcheck/pkg/rule"
	"github.com/dmitrymomot/guardcheck/pkg/statemachine"
	"github.com/dmitrymomot/guardcheck/pkg/synth"
)

// Validator checks that a callable rejects invalid arguments with failures
// attributed to the right parameter and accepts valid ones.
//
// A Validator owns mutable configuration and is meant to be used from one
// goroutine, typically one test.
type Validator struct {
	desc     *callable.Descriptor
	params   []callable.Parameter
	chain    synth.Chain
	settings config.Settings
	log      *slog.Logger

	baseline    []reflect.Value
	hasBaseline bool
	overrides   map[int]reflect.Value
	rules       map[string][]rule.Rule

	lifecycle *statemachine.Machine[State, event]
}

// New creates a validator for desc.
func New(desc *callable.Descriptor, opts ...Option) (*Validator, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	params := desc.Parameters()
	if len(params) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoParameters, desc.Name())
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, o.err)
	}

	settings := config.DefaultSettings()
	if o.settings != nil {
		if err := o.settings.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		settings = *o.settings
	}

	v := &Validator{
		desc:      desc,
		params:    params,
		settings:  settings,
		log:       o.log,
		overrides: make(map[int]reflect.Value),
		rules:     make(map[string][]rule.Rule, len(params)),
	}

	if v.log == nil {
		v.log = logger.Discard()
		if o.settings != nil {
			format, _ := logger.ParseFormat(settings.LogFormat)
			v.log = logger.New(
				logger.WithOutput(os.Stderr),
				logger.WithLevel(settings.LogLevel),
				logger.WithFormat(format),
				logger.WithAttr(logger.Component("guardcheck")),
			)
		}
	}
	v.log = v.log.With(logger.Callable(desc.Name()))

	if o.hasChain {
		if len(o.chain) == 0 {
			return nil, ErrEmptyCreatorChain
		}
		v.chain = o.chain
	} else {
		synthOpts := append([]synth.Option{synth.WithStringValue(settings.StringValue)}, o.synthOpts...)
		v.chain = synth.Default(synthOpts...)
	}

	if o.hasBaseline {
		baseline, err := coerceBaseline(params, o.baseline)
		if err != nil {
			return nil, err
		}
		v.baseline = baseline
		v.hasBaseline = true
	}

	v.lifecycle = newLifecycle(v.log)
	return v, nil
}

func coerceBaseline(params []callable.Parameter, args []any) ([]reflect.Value, error) {
	if len(args) != len(params) {
		return nil, fmt.Errorf("%w: got %d values for %d parameters", ErrBaselineLength, len(args), len(params))
	}
	out := make([]reflect.Value, len(args))
	for i, p := range params {
		val, err := coerce(p, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// coerce checks that a caller supplied value fits p. A nil value is absent.
func coerce(p callable.Parameter, value any) (reflect.Value, error) {
	if value == nil {
		return reflect.Value{}, nil
	}
	val, err := callable.Coerce(p, reflect.ValueOf(value))
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return val, nil
}

// Descriptor returns the callable under validation.
func (v *Validator) Descriptor() *callable.Descriptor {
	return v.desc
}

// Chain returns the creator chain used to synthesise baseline values.
func (v *Validator) Chain() synth.Chain {
	return v.chain
}
