package rule

import (
	"reflect"

	"github.com/dmitrymomot/guardcheck/pkg/synth"
)

// Category groups parameter types that share default rules.
type Category int

const (
	CategoryString Category = iota
	CategoryCollection
	CategoryValue
	CategoryInterface
	CategoryOther
)

var categoryNames = [...]string{"strings", "collections", "values", "interfaces", "others"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// CategoryOf classifies t. Strings are checked first, then containers
// (slices, arrays, maps, channels and iter.Seq shaped funcs), then booleans,
// numbers and structs, then interfaces. Pointers and other funcs fall
// into CategoryOther.
func CategoryOf(t reflect.Type) Category {
	if t == nil {
		return CategoryOther
	}
	switch t.Kind() {
	case reflect.String:
		return CategoryString
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return CategoryCollection
	case reflect.Func:
		if synth.IsSeq(t) || synth.IsSeq2(t) {
			return CategoryCollection
		}
		return CategoryOther
	case reflect.Bool, reflect.Struct,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return CategoryValue
	case reflect.Interface:
		return CategoryInterface
	}
	return CategoryOther
}
