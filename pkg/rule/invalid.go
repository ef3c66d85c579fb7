package rule

import (
	"reflect"

	"github.com/dmitrymomot/guardcheck/pkg/callable"
	"github.com/dmitrymomot/guardcheck/pkg/synth"
)

// InvalidValue returns the value substituted for p. current is the baseline
// value of the parameter. An invalid reflect.Value stands for an absent value,
// which the callable receives as the zero value of the parameter type.
func (r Rule) InvalidValue(p *callable.Parameter, current reflect.Value) (reflect.Value, error) {
	if p == nil {
		return reflect.Value{}, ErrNilParameter
	}

	switch r.kind {
	case KindNotNull:
		return reflect.Value{}, nil
	case KindNotEmpty:
		return emptyOf(p.Type)
	case KindNotEmptyOrWhitespace:
		if p.Type.Kind() != reflect.String && p.Type.Kind() != reflect.Interface {
			return reflect.Value{}, &UnsupportedTypeError{Type: p.Type}
		}
		return reflect.ValueOf(WhitespaceValue), nil
	case KindNotEqualTo:
		return reflect.ValueOf(r.value), nil
	default:
		return current, nil
	}
}

// emptyOf returns an empty, non-nil instance of t for strings and containers.
func emptyOf(t reflect.Type) (reflect.Value, error) {
	switch {
	case t.Kind() == reflect.String:
		return reflect.Zero(t), nil
	case t.Kind() == reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), nil
	case t.Kind() == reflect.Map:
		return reflect.MakeMap(t), nil
	case t.Kind() == reflect.Chan:
		return synth.MakeChan(t, 0).Convert(t), nil
	case synth.IsSeq(t), synth.IsSeq2(t):
		return synth.EmptySeq(t), nil
	}
	return reflect.Value{}, &UnsupportedTypeError{Type: t}
}
