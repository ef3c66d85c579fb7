// Package argument provides guard-clause helpers whose errors are attributed
// to a named parameter.
//
// Functions validated with guardcheck report a rejected argument by returning
// (or panicking with) one of this package's errors:
//
//   - *NilError     – a required value was nil or absent
//   - *InvalidError – a value was present but not acceptable
//
// Both implement ParamError, so any error chain carrying them can be matched
// with errors.As and attributed through ParamName. Custom error types become
// attributable by implementing ParamError themselves.
//
// # Usage
//
//	func NewClient(name string, opts []Option) (*Client, error) {
//	    if err := argument.First(
//	        argument.NotEmptyOrWhitespace("name", name),
//	        argument.NotEmptySlice("opts", opts),
//	    ); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// All errors match ErrArgument with errors.Is.
package argument
