// Package callable resolves the shape of a function, method or constructor so
// it can be invoked generically with one argument per declared parameter.
//
// A Descriptor is built once with Func, Method or Constructor and is read-only
// afterwards. It records the ordered parameters (names are supplied with
// Params because Go reflection does not carry them), whether the callable is
// a constructor, and its ReturnShape:
//
//   - Sync       – anything that is not an awaitable
//   - AsyncVoid  – returns chan error, or a type with Await() error
//   - AsyncValue – returns a type with Await() (T, error), e.g. *async.Future[T]
//
// An awaitable may be followed by an error result, reported before any work
// starts. The shape is classified once at construction; CallAsync normalises
// every shape into a single *async.Future[any].
//
// # Failures
//
// A callable fails by returning a non-nil trailing error or by panicking.
// Both are returned as the observed failure, never as the call error: panics
// with an error value surface that error, other values are wrapped in
// *PanicError. The call error is reserved for the invocation machinery, such
// as an argument that cannot be assigned to its parameter.
//
// # Usage
//
//	d, err := callable.Func(greet, callable.Params("name"))
//	observed, err := d.Call([]reflect.Value{reflect.ValueOf("")})
package callable
