package synth

import (
	"fmt"
	"reflect"
)

// DefaultStringValue is the sentinel produced for string parameters.
const DefaultStringValue = "SomeValue"

// Option configures the default chain.
type Option func(*config)

type config struct {
	stringValue string
	stubs       map[reflect.Type]func() reflect.Value
	creators    []Creator
}

func newConfig(opts []Option) *config {
	cfg := &config{
		stringValue: DefaultStringValue,
		stubs:       make(map[reflect.Type]func() reflect.Value),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithStringValue overrides the sentinel string. Empty values are ignored
// since an empty string is not a valid placeholder.
func WithStringValue(s string) Option {
	return func(c *config) {
		if s != "" {
			c.stringValue = s
		}
	}
}

// WithStub registers a behaviour-neutral stand-in for the interface type T.
// Panics when T is not an interface type, so misconfiguration fails at setup.
func WithStub[T any](factory func() T) Option {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		panic(fmt.Errorf("synth: stub type %s is not an interface", t))
	}
	return func(c *config) {
		if factory == nil {
			return
		}
		c.stubs[t] = func() reflect.Value {
			out := reflect.New(t).Elem()
			if v := reflect.ValueOf(factory()); v.IsValid() {
				out.Set(v)
			}
			return out
		}
	}
}

// WithCreators places custom creators ahead of the standard ones.
func WithCreators(creators ...Creator) Option {
	return func(c *config) {
		for _, cr := range creators {
			if cr != nil {
				c.creators = append(c.creators, cr)
			}
		}
	}
}
