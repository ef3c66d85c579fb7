package synth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
)

var errStandIn = errors.New("synth: stand-in error")

// builtinStubs are stand-ins for standard library interfaces commonly taken as parameters.
var builtinStubs = map[reflect.Type]func() any{
	reflect.TypeFor[context.Context](): func() any { return context.Background() },
	reflect.TypeFor[error]():           func() any { return errStandIn },
	reflect.TypeFor[io.Reader]():       func() any { return strings.NewReader("") },
	reflect.TypeFor[io.Writer]():       func() any { return io.Discard },
	reflect.TypeFor[slog.Handler]():    func() any { return slog.DiscardHandler },
}

// InterfaceCreator produces behaviour-neutral stand-ins for interface types.
// Go cannot implement an arbitrary interface at runtime, so non-empty
// interfaces need a registered stub (see WithStub); the empty interface gets
// the chain's string value and a few standard library interfaces have
// built-in stand-ins.
type InterfaceCreator struct {
	stubs map[reflect.Type]func() reflect.Value
}

// NewInterfaceCreator returns an InterfaceCreator with the stubs registered by opts.
func NewInterfaceCreator(opts ...Option) *InterfaceCreator {
	return &InterfaceCreator{stubs: newConfig(opts).stubs}
}

func (c *InterfaceCreator) CanHandle(t reflect.Type) bool {
	if t.Kind() != reflect.Interface {
		return false
	}
	if _, ok := c.stubs[t]; ok {
		return true
	}
	if _, ok := builtinStubs[t]; ok {
		return true
	}
	return t.NumMethod() == 0
}

func (c *InterfaceCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "an interface with a registered stand-in")
	}
	if stub, ok := c.stubs[t]; ok {
		return stub(), nil
	}

	out := reflect.New(t).Elem()
	if stub, ok := builtinStubs[t]; ok {
		out.Set(reflect.ValueOf(stub()))
		return out, nil
	}

	s, err := chain.Create(reflect.TypeFor[string]())
	if err != nil {
		return reflect.Value{}, err
	}
	out.Set(s)
	return out, nil
}
