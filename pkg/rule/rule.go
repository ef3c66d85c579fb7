package rule

import (
	"fmt"
	"reflect"
)

// Kind identifies a rule variant.
type Kind int

const (
	KindNone Kind = iota
	KindNotNull
	KindNotEmpty
	KindNotEmptyOrWhitespace
	KindNotEqualTo
	KindSkip
)

var kindNames = map[Kind]string{
	KindNone:                 "None",
	KindNotNull:              "NotNull",
	KindNotEmpty:             "NotEmpty",
	KindNotEmptyOrWhitespace: "NotEmptyOrWhitespace",
	KindNotEqualTo:           "NotEqualTo",
	KindSkip:                 "Skip",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// WhitespaceValue is the invalid value produced by NotEmptyOrWhitespace.
const WhitespaceValue = "   \n   "

// Rule pairs an invalid-value generator with the failure expected when the
// callable receives that value. The set of variants is closed; build rules
// with the constructors below. The zero Rule is None. Rules are immutable
// and safe to share between validators and goroutines.
type Rule struct {
	kind  Kind
	value any
}

// None keeps the baseline value and expects no failure.
func None() Rule { return Rule{kind: KindNone} }

// NotNull passes an absent value and expects a nil-argument failure for the parameter.
func NotNull() Rule { return Rule{kind: KindNotNull} }

// NotEmpty passes an empty string or empty container and expects an
// invalid-argument failure for the parameter.
func NotEmpty() Rule { return Rule{kind: KindNotEmpty} }

// NotEmptyOrWhitespace passes a whitespace-only string and expects an
// invalid-argument failure for the parameter.
func NotEmptyOrWhitespace() Rule { return Rule{kind: KindNotEmptyOrWhitespace} }

// NotEqualTo passes v and expects an invalid-argument failure for the parameter.
func NotEqualTo(v any) Rule { return Rule{kind: KindNotEqualTo, value: v} }

// Skip keeps the baseline value and always reports a mismatch. It occupies a
// configured slot for parameters that must not be asserted yet.
func Skip() Rule { return Rule{kind: KindSkip} }

// Kind returns the rule variant.
func (r Rule) Kind() Kind { return r.kind }

// Value returns the sentinel of a NotEqualTo rule, or nil.
func (r Rule) Value() any { return r.value }

// Name identifies the rule in diagnostics.
func (r Rule) Name() string {
	if r.kind == KindNotEqualTo {
		return fmt.Sprintf("NotEqualTo for type %s", typeName(r.value))
	}
	return r.kind.String()
}

func (r Rule) String() string {
	if r.kind == KindNotEqualTo {
		return fmt.Sprintf("NotEqualTo(%#v)", r.value)
	}
	return r.kind.String()
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// IsSkip reports whether r is the Skip rule.
func IsSkip(r Rule) bool { return r.kind == KindSkip }

// ContainsSkip reports whether any of rules is the Skip rule.
func ContainsSkip(rules []Rule) bool {
	for _, r := range rules {
		if IsSkip(r) {
			return true
		}
	}
	return false
}
