package callable_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardcheck/pkg/argument"
	"github.com/dmitrymomot/guardcheck/pkg/async"
	"github.com/dmitrymomot/guardcheck/pkg/callable"
)

type greeter struct{ prefix string }

func (g *greeter) Greet(name string) (string, error) {
	if name == "" {
		return "", argument.Nil("name")
	}
	return g.prefix + name, nil
}

func (g *greeter) GreetLater(ctx context.Context, name string) *async.Future[string] {
	return async.Async(ctx, name, func(_ context.Context, n string) (string, error) {
		return g.Greet(n)
	})
}

func (g *greeter) Notify(name string) <-chan error {
	ch := make(chan error, 1)
	ch <- argument.NotEmpty("name", name)
	return ch
}

func (g *greeter) Check(name string) (*async.Future[struct{}], error) {
	if name == "" {
		return nil, argument.Invalid("name", "empty")
	}
	return async.Resolved(struct{}{}, nil), nil
}

type counter struct{ n int }

func newCounter(start int) (*counter, error) {
	if start < 0 {
		return nil, argument.Invalid("start", "negative")
	}
	return &counter{n: start}, nil
}

func values(vs ...any) []reflect.Value {
	out := make([]reflect.Value, len(vs))
	for i, v := range vs {
		out[i] = reflect.ValueOf(v)
	}
	return out
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	t.Run("function parameters", func(t *testing.T) {
		d, err := callable.Func(func(name string, age int) error { return nil }, callable.Params("name", "age"))
		require.NoError(t, err)

		params := d.Parameters()
		require.Len(t, params, 2)
		assert.Equal(t, "name", params[0].Name)
		assert.Equal(t, reflect.TypeFor[string](), params[0].Type)
		assert.Equal(t, 1, params[1].Position)
		assert.Equal(t, callable.ByValue, params[1].Mode)
		assert.Equal(t, callable.Sync, d.ReturnShape())
		assert.False(t, d.IsConstructor())
		assert.Nil(t, d.Target())

		p, ok := d.Parameter("age")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeFor[int](), p.Type)
		_, ok = d.Parameter("Age")
		assert.False(t, ok)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := callable.Func(nil)
		assert.ErrorIs(t, err, callable.ErrNilCallable)

		var nilFn func(int)
		_, err = callable.Func(nilFn, callable.Params("x"))
		assert.ErrorIs(t, err, callable.ErrNilCallable)

		_, err = callable.Func(42)
		assert.ErrorIs(t, err, callable.ErrNotAFunction)

		_, err = callable.Func(func(a, b int) {}, callable.Params("a"))
		assert.ErrorIs(t, err, callable.ErrParamNames)

		_, err = callable.Func(func(a, b int) {}, callable.Params("a", "a"))
		assert.ErrorIs(t, err, callable.ErrParamNames)

		_, err = callable.Func(func(a int) {}, callable.Params(" "))
		assert.ErrorIs(t, err, callable.ErrParamNames)
	})

	t.Run("by-ref parameters", func(t *testing.T) {
		d, err := callable.Func(func(out *string) {}, callable.Params("out"), callable.WithByRef("out"))
		require.NoError(t, err)
		p, _ := d.Parameter("out")
		assert.Equal(t, callable.ByRef, p.Mode)
		assert.Equal(t, reflect.TypeFor[string](), p.Type)
		assert.Equal(t, reflect.TypeFor[*string](), p.PassedType())

		_, err = callable.Func(func(v string) {}, callable.Params("v"), callable.WithByRef("v"))
		assert.ErrorIs(t, err, callable.ErrInvalidByRef)
		_, err = callable.Func(func(v *string) {}, callable.Params("v"), callable.WithByRef("w"))
		assert.ErrorIs(t, err, callable.ErrInvalidByRef)
	})

	t.Run("methods by name", func(t *testing.T) {
		g := &greeter{prefix: "hi "}
		d, err := callable.Method(g, "Greet", callable.Params("name"))
		require.NoError(t, err)
		assert.Same(t, g, d.Target())
		assert.Equal(t, "*callable_test.greeter.Greet", d.Name())

		_, err = callable.Method(g, "Missing", callable.Params("name"))
		var notFound *callable.MethodNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Missing", notFound.Method)
		assert.ErrorIs(t, err, callable.ErrMethodNotFound)

		_, err = callable.Method(nil, "Greet")
		assert.ErrorIs(t, err, callable.ErrNilTarget)
		var nilGreeter *greeter
		_, err = callable.Method(nilGreeter, "Greet")
		assert.ErrorIs(t, err, callable.ErrNilTarget)
	})

	t.Run("constructors are synchronous", func(t *testing.T) {
		d, err := callable.Constructor(newCounter, callable.Params("start"), callable.WithName("newCounter"))
		require.NoError(t, err)
		assert.True(t, d.IsConstructor())
		assert.Equal(t, callable.Sync, d.ReturnShape())
		assert.Equal(t, "newCounter", d.Name())
	})
}

func TestReturnShape(t *testing.T) {
	t.Parallel()
	g := &greeter{}

	cases := []struct {
		name  string
		fn    any
		names []string
		want  callable.ReturnShape
	}{
		{"error result", g.Greet, []string{"name"}, callable.Sync},
		{"no results", func(int) {}, []string{"x"}, callable.Sync},
		{"future of value", g.GreetLater, []string{"ctx", "name"}, callable.AsyncValue},
		{"error channel", g.Notify, []string{"name"}, callable.AsyncVoid},
		{"future with early error", g.Check, []string{"name"}, callable.AsyncValue},
		{"send-only channel", func() chan<- error { return nil }, nil, callable.Sync},
		{"void awaiter interface", func() interface{ Await() error } { return nil }, nil, callable.AsyncVoid},
		{"await with arguments", func() interface{ Await(int) error } { return nil }, nil, callable.Sync},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := callable.Func(tc.fn, callable.Params(tc.names...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.ReturnShape())
			assert.Equal(t, tc.want != callable.Sync, d.ReturnShape().IsAwaitable())
		})
	}
}

func TestCall(t *testing.T) {
	t.Parallel()

	t.Run("observes trailing error", func(t *testing.T) {
		d, err := callable.Method(&greeter{}, "Greet", callable.Params("name"))
		require.NoError(t, err)

		observed, err := d.Call(values(""))
		require.NoError(t, err)
		assert.True(t, argument.IsNil(observed))

		observed, err = d.Call(values("bob"))
		require.NoError(t, err)
		assert.NoError(t, observed)
	})

	t.Run("observes panics", func(t *testing.T) {
		d, err := callable.Func(func(v []int) int { return v[0] }, callable.Params("v"))
		require.NoError(t, err)
		observed, err := d.Call(values([]int{}))
		require.NoError(t, err)
		assert.Error(t, observed)

		d, err = callable.Func(func(v string) {
			if v == "" {
				panic(argument.Nil("v"))
			}
		}, callable.Params("v"))
		require.NoError(t, err)
		observed, err = d.Call(values(""))
		require.NoError(t, err)
		assert.True(t, argument.IsNil(observed))

		d, err = callable.Func(func(int) { panic("boom") }, callable.Params("x"))
		require.NoError(t, err)
		observed, err = d.Call(values(1))
		require.NoError(t, err)
		var pe *callable.PanicError
		require.ErrorAs(t, observed, &pe)
		assert.Equal(t, "boom", pe.Value)
	})

	t.Run("absent values become zero values", func(t *testing.T) {
		var got []string
		d, err := callable.Func(func(s []string, n *int) error {
			got = s
			if n == nil {
				return argument.Nil("n")
			}
			return nil
		}, callable.Params("s", "n"))
		require.NoError(t, err)

		observed, err := d.Call([]reflect.Value{{}, {}})
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.True(t, argument.IsNil(observed))
	})

	t.Run("by-ref gets a fresh pointer", func(t *testing.T) {
		var seen []*int
		d, err := callable.Func(func(n *int) error {
			seen = append(seen, n)
			if n == nil {
				return argument.Nil("n")
			}
			*n++
			return nil
		}, callable.Params("n"), callable.WithByRef("n"))
		require.NoError(t, err)

		baseline := values(5)
		_, err = d.Call(baseline)
		require.NoError(t, err)
		_, err = d.Call(baseline)
		require.NoError(t, err)
		require.Len(t, seen, 2)
		assert.NotSame(t, seen[0], seen[1])
		assert.Equal(t, 6, *seen[1])

		observed, err := d.Call([]reflect.Value{{}})
		require.NoError(t, err)
		assert.True(t, argument.IsNil(observed))
	})

	t.Run("variadic", func(t *testing.T) {
		d, err := callable.Func(func(items ...string) error {
			return argument.NotEmptySlice("items", items)
		}, callable.Params("items"))
		require.NoError(t, err)

		observed, err := d.Call(values([]string{"a"}))
		require.NoError(t, err)
		assert.NoError(t, observed)

		observed, err = d.Call(values([]string{}))
		require.NoError(t, err)
		assert.Error(t, observed)
	})

	t.Run("machinery errors are returned, not observed", func(t *testing.T) {
		called := false
		d, err := callable.Func(func(n int) { called = true }, callable.Params("n"))
		require.NoError(t, err)

		_, err = d.Call(values("nope"))
		var typeErr *callable.ArgumentTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "n", typeErr.Param)
		assert.ErrorIs(t, err, callable.ErrArgumentType)

		_, err = d.Call(values(1, 2))
		assert.ErrorIs(t, err, callable.ErrArgumentCount)
		assert.False(t, called)
	})

	t.Run("converts same-kind values", func(t *testing.T) {
		type level int
		var got level
		d, err := callable.Func(func(l level) { got = l }, callable.Params("l"))
		require.NoError(t, err)
		_, err = d.Call(values(3))
		require.NoError(t, err)
		assert.Equal(t, level(3), got)
	})

	t.Run("refuses awaitables", func(t *testing.T) {
		d, err := callable.Method(&greeter{}, "Notify", callable.Params("name"))
		require.NoError(t, err)
		_, err = d.Call(values("x"))
		assert.ErrorIs(t, err, callable.ErrAwaitable)
	})
}

func TestCallAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := &greeter{prefix: "hi "}

	t.Run("value awaitable", func(t *testing.T) {
		d, err := callable.Method(g, "GreetLater", callable.Params("ctx", "name"))
		require.NoError(t, err)

		future, err := d.CallAsync(ctx, values(ctx, "bob"))
		require.NoError(t, err)
		res, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, "hi bob", res)

		future, err = d.CallAsync(ctx, values(ctx, ""))
		require.NoError(t, err)
		_, err = future.Await()
		assert.True(t, argument.IsNil(err))
	})

	t.Run("void channel awaitable", func(t *testing.T) {
		d, err := callable.Method(g, "Notify", callable.Params("name"))
		require.NoError(t, err)

		future, err := d.CallAsync(ctx, values(""))
		require.NoError(t, err)
		_, err = future.Await()
		param, ok := argument.ParamOf(err)
		require.True(t, ok)
		assert.Equal(t, "name", param)

		future, err = d.CallAsync(ctx, values("bob"))
		require.NoError(t, err)
		_, err = future.Await()
		assert.NoError(t, err)
	})

	t.Run("early error before awaitable", func(t *testing.T) {
		d, err := callable.Method(g, "Check", callable.Params("name"))
		require.NoError(t, err)

		future, err := d.CallAsync(ctx, values(""))
		require.NoError(t, err)
		_, err = future.Await()
		assert.ErrorIs(t, err, argument.ErrArgument)
	})

	t.Run("panicking await", func(t *testing.T) {
		errBoom := errors.New("boom")
		d, err := callable.Func(func() <-chan error {
			panic(errBoom)
		}, callable.Params())
		require.NoError(t, err)

		future, err := d.CallAsync(ctx, nil)
		require.NoError(t, err)
		_, err = future.Await()
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("nil awaitable completes", func(t *testing.T) {
		d, err := callable.Func(func() *async.Future[int] { return nil }, callable.Params())
		require.NoError(t, err)
		future, err := d.CallAsync(ctx, nil)
		require.NoError(t, err)
		_, err = future.Await()
		assert.NoError(t, err)
	})

	t.Run("refuses synchronous callables", func(t *testing.T) {
		d, err := callable.Constructor(newCounter, callable.Params("start"))
		require.NoError(t, err)
		_, err = d.CallAsync(ctx, values(1))
		assert.ErrorIs(t, err, callable.ErrNotAwaitable)
	})
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	param := func(typ reflect.Type) callable.Parameter {
		return callable.Parameter{Name: "v", Type: typ}
	}

	t.Run("lossless numeric conversion", func(t *testing.T) {
		tests := []struct {
			name string
			typ  reflect.Type
			in   any
			want any
		}{
			{"int to int64", reflect.TypeFor[int64](), 5, int64(5)},
			{"int to uint", reflect.TypeFor[uint](), 5, uint(5)},
			{"int to float64", reflect.TypeFor[float64](), 5, float64(5)},
			{"float to int", reflect.TypeFor[int](), 2.0, 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				out, err := callable.Coerce(param(tt.typ), reflect.ValueOf(tt.in))
				require.NoError(t, err)
				assert.Equal(t, tt.want, out.Interface())
			})
		}
	})

	t.Run("lossy numeric conversion", func(t *testing.T) {
		tests := []struct {
			name string
			typ  reflect.Type
			in   any
		}{
			{"negative to uint", reflect.TypeFor[uint](), -1},
			{"overflow", reflect.TypeFor[uint8](), 300},
			{"fraction to int", reflect.TypeFor[int](), 1.5},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := callable.Coerce(param(tt.typ), reflect.ValueOf(tt.in))
				assert.ErrorIs(t, err, callable.ErrArgumentType)
			})
		}
	})

	t.Run("non numeric kinds stay strict", func(t *testing.T) {
		_, err := callable.Coerce(param(reflect.TypeFor[string]()), reflect.ValueOf(5))
		assert.ErrorIs(t, err, callable.ErrArgumentType)
	})
}
