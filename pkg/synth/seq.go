package synth

import (
	"reflect"
)

// IsSeq reports whether t has the shape of iter.Seq[V].
func IsSeq(t reflect.Type) bool { return seqArity(t) == 1 }

// IsSeq2 reports whether t has the shape of iter.Seq2[K, V].
func IsSeq2(t reflect.Type) bool { return seqArity(t) == 2 }

// seqArity returns the number of values yielded per step, or 0 when t is not
// a push iterator: func(yield func(...) bool).
func seqArity(t reflect.Type) int {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return 0
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0).Kind() != reflect.Bool || y.IsVariadic() {
		return 0
	}
	if n := y.NumIn(); n == 1 || n == 2 {
		return n
	}
	return 0
}

// EmptySeq returns an iterator of type t that yields nothing.
func EmptySeq(t reflect.Type) reflect.Value {
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value { return nil })
}

// SeqCreator produces an iter.Seq or iter.Seq2 shaped function yielding one valid step.
type SeqCreator struct{}

func (SeqCreator) CanHandle(t reflect.Type) bool { return seqArity(t) > 0 }

func (c SeqCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "an iterator type")
	}
	yield := t.In(0)
	step := make([]reflect.Value, yield.NumIn())
	for i := range step {
		v, err := chain.Create(yield.In(i))
		if err != nil {
			return reflect.Value{}, err
		}
		slot := reflect.New(yield.In(i)).Elem()
		if err := assign(slot, v); err != nil {
			return reflect.Value{}, err
		}
		step[i] = slot
	}
	return reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		args[0].Call(step)
		return nil
	}), nil
}
