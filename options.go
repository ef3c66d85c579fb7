package guardcheck

import (
	"log/slog"

	"github.com/dmitrymomot/guardcheck/pkg/config"
	"github.com/dmitrymomot/guardcheck/pkg/synth"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	baseline    []any
	hasBaseline bool
	chain       synth.Chain
	hasChain    bool
	synthOpts   []synth.Option
	log         *slog.Logger
	settings    *config.Settings
	err         error
}

// WithBaseline supplies the full valid argument vector, one value per
// parameter in declaration order. A nil entry stands for an absent value.
// Per-parameter values cannot be set afterwards.
func WithBaseline(args ...any) Option {
	return func(o *options) {
		o.baseline = args
		o.hasBaseline = true
	}
}

// WithCreators replaces the default creator chain. An empty chain is rejected.
func WithCreators(chain synth.Chain) Option {
	return func(o *options) {
		o.chain = chain
		o.hasChain = true
	}
}

// WithSynthOptions customises the default creator chain, e.g. to register
// interface stubs with synth.WithStub. Ignored when WithCreators is used.
func WithSynthOptions(opts ...synth.Option) Option {
	return func(o *options) {
		o.synthOpts = append(o.synthOpts, opts...)
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithSettings applies settings: the string sentinel of the default chain,
// the rules profile used by SetupDefaults, and, unless WithLogger is given,
// a stderr logger with the configured level and format.
func WithSettings(s config.Settings) Option {
	return func(o *options) {
		o.settings = &s
	}
}

// FromEnv loads settings from the environment, see config.LoadSettings.
func FromEnv() Option {
	return func(o *options) {
		s, err := config.LoadSettings()
		if err != nil {
			o.err = err
			return
		}
		o.settings = &s
	}
}
