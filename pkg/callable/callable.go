package callable

import (
	"reflect"
)

// Mode describes how an argument is passed to the callable.
type Mode int

const (
	// ByValue passes the argument as declared.
	ByValue Mode = iota
	// ByRef passes a pointer to a fresh copy of the argument on every call.
	ByRef
)

func (m Mode) String() string {
	if m == ByRef {
		return "by-ref"
	}
	return "by-value"
}

// ReturnShape classifies what a callable returns.
type ReturnShape int

const (
	// Sync callables finish before returning.
	Sync ReturnShape = iota
	// AsyncVoid callables return an awaitable without a value.
	AsyncVoid
	// AsyncValue callables return an awaitable that yields a value.
	AsyncValue
)

func (s ReturnShape) String() string {
	switch s {
	case AsyncVoid:
		return "async-void"
	case AsyncValue:
		return "async-value"
	default:
		return "sync"
	}
}

// IsAwaitable reports whether the shape requires awaiting.
func (s ReturnShape) IsAwaitable() bool {
	return s != Sync
}

// Parameter describes one declared parameter of a callable.
type Parameter struct {
	Name     string
	Type     reflect.Type // pointee type for ByRef parameters
	Position int
	Mode     Mode
}

// PassedType returns the type actually handed to the callable.
func (p Parameter) PassedType() reflect.Type {
	if p.Mode == ByRef {
		return reflect.PointerTo(p.Type)
	}
	return p.Type
}

// Descriptor is the resolved, read-only shape of a callable.
type Descriptor struct {
	name        string
	fn          reflect.Value
	target      any
	params      []Parameter
	constructor bool
	variadic    bool
	shape       ReturnShape
	await       awaiter
	hasErr      bool // trailing result is error
}

// Name returns a human readable name used in diagnostics.
func (d *Descriptor) Name() string { return d.name }

// Target returns the instance a method is bound to, or nil.
func (d *Descriptor) Target() any { return d.target }

// IsConstructor reports whether the callable was described as a constructor.
func (d *Descriptor) IsConstructor() bool { return d.constructor }

// ReturnShape returns the classified return shape.
func (d *Descriptor) ReturnShape() ReturnShape { return d.shape }

// Parameters returns a copy of the parameters in declaration order.
func (d *Descriptor) Parameters() []Parameter {
	out := make([]Parameter, len(d.params))
	copy(out, d.params)
	return out
}

// Parameter looks up a parameter by exact name.
func (d *Descriptor) Parameter(name string) (Parameter, bool) {
	for _, p := range d.params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}
