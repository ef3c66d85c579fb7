// Package rule defines the expectation rules applied to one parameter of a
// callable under validation.
//
// A Rule does two things: InvalidValue produces the value substituted for the
// parameter, and Evaluate judges whether the failure the callable produced
// for that value is the expected one. The variants are fixed:
//
//	None                  baseline value        no failure
//	NotNull               absent (zero) value   *argument.NilError for the parameter
//	NotEmpty              "" / empty container  argument.ParamError for the parameter
//	NotEmptyOrWhitespace  "   \n   "            argument.ParamError for the parameter
//	NotEqualTo(v)         v                     argument.ParamError for the parameter
//	Skip                  baseline value        always a mismatch
//
// Attribution is exact: a failure for any other parameter name is a mismatch.
// Since *argument.NilError is also a ParamError, a nil-argument failure
// satisfies the invalid-argument rules too.
//
// CategoryOf sorts parameter types into the groups used by rule tables.
//
// Rules can be parsed from snake_case names (Parse) and decoded from YAML,
// which is how rule tables are loaded from profiles.
package rule
