// Package guardcheck verifies the guard clauses of a function, method or
// constructor without writing one test per invalid input.
//
// A Validator takes a callable, a set of rules per parameter and a valid
// baseline argument vector. For every parameter in declaration order and
// every rule of that parameter in configuration order it replaces one
// argument with the rule's invalid value, calls the callable and checks that
// the failure it returns (or panics with) is the one the rule expects,
// attributed to the right parameter. The first mismatch stops the run.
//
// Key Features:
//
//   - Baseline values synthesised by a pluggable creator chain (pkg/synth)
//   - A closed set of rules: None, NotNull, NotEmpty, NotEmptyOrWhitespace, NotEqualTo and Skip
//   - Synchronous callables through Validate, awaitable ones through ValidateAsync
//   - Rules by type category with SetupAll and YAML rule profiles
//
// Basic Usage:
//
//	func Greet(name string) (string, error) {
//		if err := argument.NotEmptyOrWhitespace("name", name); err != nil {
//			return "", err
//		}
//		return "Hello, " + name, nil
//	}
//
//	func TestGreet(t *testing.T) {
//		v, err := guardcheck.ForFunc(Greet, []string{"name"})
//		require.NoError(t, err)
//		require.NoError(t, v.SetupParameter("name", rule.NotEmpty(), rule.NotEmptyOrWhitespace()))
//		require.NoError(t, v.Validate(context.Background()))
//	}
//
// Failures:
//
// The callable reports a failure by returning a non-nil trailing error or by
// panicking. Failures built with pkg/argument carry the parameter name:
// *argument.NilError for absent values and *argument.InvalidError for any
// other invalid value.
//
// Errors returned by a Validator match one of ErrConfiguration,
// ErrCapabilityMismatch, ErrCreation or ErrRuleViolation. Errors of the
// invocation machinery itself, such as an argument of the wrong type, are
// returned unwrapped.
//
// Configuration:
//
// WithSettings and FromEnv apply config.Settings: log level and format, the
// string synthesised for string parameters, and the rules profile loaded by
// SetupDefaults.
package guardcheck
