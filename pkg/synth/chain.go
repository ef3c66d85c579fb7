package synth

import (
	"reflect"
)

// Creator manufactures a structurally valid value for the types it handles.
// Creators of container types request their element values from the chain
// they are handed, which allows arbitrary nesting.
type Creator interface {
	CanHandle(t reflect.Type) bool
	Create(t reflect.Type, chain Chain) (reflect.Value, error)
}

// Chain is an ordered list of creators; the first one able to handle a type wins.
// A chain is never mutated while values are being created and may be shared.
type Chain []Creator

// Create returns a value of type t produced by the first creator handling it.
func (c Chain) Create(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrNilType
	}
	for _, creator := range c {
		if creator != nil && creator.CanHandle(t) {
			return creator.Create(t, c)
		}
	}
	return reflect.Value{}, &NoCreatorError{Type: t}
}

// CanCreate reports whether any creator in the chain handles t.
func (c Chain) CanCreate(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, creator := range c {
		if creator != nil && creator.CanHandle(t) {
			return true
		}
	}
	return false
}

// With returns a new chain consulting creators before c.
func (c Chain) With(creators ...Creator) Chain {
	out := make(Chain, 0, len(creators)+len(c))
	out = append(out, creators...)
	return append(out, c...)
}

// Default returns the standard chain. Containers come first, followed by
// sequences, interface stand-ins, no-op funcs, pointers and finally strings
// and value types.
func Default(opts ...Option) Chain {
	cfg := newConfig(opts)
	chain := Chain{
		SliceCreator{},
		ArrayCreator{},
		MapCreator{},
		ChanCreator{},
		SeqCreator{},
		&InterfaceCreator{stubs: cfg.stubs},
		FuncCreator{},
		PointerCreator{},
		ValueCreator{StringValue: cfg.stringValue},
	}
	return chain.With(cfg.creators...)
}

// CreatorFunc adapts a type and a factory into a Creator handling exactly that type.
func CreatorFunc[T any](factory func() T) Creator {
	return exactCreator{typ: reflect.TypeFor[T](), factory: func() reflect.Value {
		out := reflect.New(reflect.TypeFor[T]()).Elem()
		if v := reflect.ValueOf(factory()); v.IsValid() {
			out.Set(v)
		}
		return out
	}}
}

type exactCreator struct {
	typ     reflect.Type
	factory func() reflect.Value
}

func (c exactCreator) CanHandle(t reflect.Type) bool { return t == c.typ }

func (c exactCreator) Create(t reflect.Type, _ Chain) (reflect.Value, error) {
	if t != c.typ {
		return reflect.Value{}, unsupported(t, c.typ.String())
	}
	return c.factory(), nil
}
