package synth

import (
	"fmt"
	"reflect"
)

// SliceCreator produces a slice holding one valid element.
type SliceCreator struct{}

func (SliceCreator) CanHandle(t reflect.Type) bool { return t.Kind() == reflect.Slice }

func (c SliceCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "a slice type")
	}
	elem, err := chain.Create(t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	s := reflect.MakeSlice(t, 1, 1)
	if err := assign(s.Index(0), elem); err != nil {
		return reflect.Value{}, err
	}
	return s, nil
}

// ArrayCreator produces a fixed-size array with every element set to a valid value.
type ArrayCreator struct{}

func (ArrayCreator) CanHandle(t reflect.Type) bool { return t.Kind() == reflect.Array }

func (c ArrayCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "an array type")
	}
	arr := reflect.New(t).Elem()
	if t.Len() == 0 {
		return arr, nil
	}
	elem, err := chain.Create(t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	for i := range t.Len() {
		if err := assign(arr.Index(i), elem); err != nil {
			return reflect.Value{}, err
		}
	}
	return arr, nil
}

// MapCreator produces a map holding one valid key/value pair.
type MapCreator struct{}

func (MapCreator) CanHandle(t reflect.Type) bool { return t.Kind() == reflect.Map }

func (c MapCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "a map type")
	}
	key, err := chain.Create(t.Key())
	if err != nil {
		return reflect.Value{}, err
	}
	val, err := chain.Create(t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	if !key.Type().AssignableTo(t.Key()) || !val.Type().AssignableTo(t.Elem()) {
		return reflect.Value{}, fmt.Errorf("%w: creator produced %s/%s for %s", ErrUnsupportedType, key.Type(), val.Type(), t)
	}
	m := reflect.MakeMapWithSize(t, 1)
	m.SetMapIndex(key, val)
	return m, nil
}

// ChanCreator produces a buffered channel holding one valid element.
type ChanCreator struct{}

func (ChanCreator) CanHandle(t reflect.Type) bool { return t.Kind() == reflect.Chan }

func (c ChanCreator) Create(t reflect.Type, chain Chain) (reflect.Value, error) {
	if !c.CanHandle(t) {
		return reflect.Value{}, unsupported(t, "a channel type")
	}
	elem, err := chain.Create(t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	if !elem.Type().AssignableTo(t.Elem()) {
		return reflect.Value{}, fmt.Errorf("%w: creator produced %s for %s", ErrUnsupportedType, elem.Type(), t.Elem())
	}
	ch := MakeChan(t, 1)
	ch.Send(elem)
	return ch.Convert(t), nil
}

// MakeChan returns a bidirectional channel with the element type of t and
// the given buffer size. Directional channel types cannot be made directly.
func MakeChan(t reflect.Type, buffer int) reflect.Value {
	return reflect.MakeChan(reflect.ChanOf(reflect.BothDir, t.Elem()), buffer)
}

func assign(dst, v reflect.Value) error {
	if !v.IsValid() {
		return nil
	}
	if !v.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%w: creator produced %s for %s", ErrUnsupportedType, v.Type(), dst.Type())
	}
	dst.Set(v)
	return nil
}
