package synth_test

import (
	"context"
	"io"
	"iter"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardcheck/pkg/synth"
)

type Store interface {
	Save(ctx context.Context, key string) error
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Save(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func permissiveStore() Store {
	m := &mockStore{}
	m.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

type point struct{ X, Y int }

type label string

func create[T any](t *testing.T, chain synth.Chain) T {
	t.Helper()
	v, err := chain.Create(reflect.TypeFor[T]())
	require.NoError(t, err)
	out, ok := v.Interface().(T)
	require.True(t, ok, "created %s", v.Type())
	return out
}

func TestDefaultChain(t *testing.T) {
	t.Parallel()
	chain := synth.Default()

	t.Run("values", func(t *testing.T) {
		assert.Equal(t, synth.DefaultStringValue, create[string](t, chain))
		assert.Equal(t, label(synth.DefaultStringValue), create[label](t, chain))
		assert.Equal(t, 0, create[int](t, chain))
		assert.Equal(t, false, create[bool](t, chain))
		assert.Equal(t, point{}, create[point](t, chain))
	})

	t.Run("containers hold one element", func(t *testing.T) {
		assert.Equal(t, []string{synth.DefaultStringValue}, create[[]string](t, chain))
		assert.Equal(t, [2]int{}, create[[2]int](t, chain))
		assert.Equal(t, [2]string{"SomeValue", "SomeValue"}, create[[2]string](t, chain))
		assert.Equal(t, map[string]int{"SomeValue": 0}, create[map[string]int](t, chain))

		ch := create[<-chan string](t, chain)
		assert.Equal(t, "SomeValue", <-ch)
	})

	t.Run("nested containers", func(t *testing.T) {
		v := create[map[string][]*point](t, chain)
		require.Len(t, v["SomeValue"], 1)
		assert.Equal(t, &point{}, v["SomeValue"][0])

		nested := create[[][]int](t, chain)
		assert.Equal(t, [][]int{{0}}, nested)
	})

	t.Run("iterators yield one step", func(t *testing.T) {
		var got []string
		for s := range create[iter.Seq[string]](t, chain) {
			got = append(got, s)
		}
		assert.Equal(t, []string{"SomeValue"}, got)

		pairs := map[string]int{}
		for k, v := range create[iter.Seq2[string, int]](t, chain) {
			pairs[k] = v
		}
		assert.Equal(t, map[string]int{"SomeValue": 0}, pairs)
	})

	t.Run("funcs are no-ops", func(t *testing.T) {
		fn := create[func(int) (string, error)](t, chain)
		s, err := fn(3)
		assert.Empty(t, s)
		assert.NoError(t, err)
	})

	t.Run("standard interfaces", func(t *testing.T) {
		assert.NotNil(t, create[context.Context](t, chain))
		assert.Error(t, create[error](t, chain))
		assert.Equal(t, io.Discard, create[io.Writer](t, chain))
		assert.Equal(t, "SomeValue", create[any](t, chain))
	})

	t.Run("unregistered interface", func(t *testing.T) {
		_, err := chain.Create(reflect.TypeFor[Store]())
		var noCreator *synth.NoCreatorError
		require.ErrorAs(t, err, &noCreator)
		assert.Equal(t, reflect.TypeFor[Store](), noCreator.Type)
		assert.ErrorIs(t, err, synth.ErrNoCreator)
		assert.True(t, synth.IsNoCreatorError(err))
		assert.False(t, chain.CanCreate(reflect.TypeFor[Store]()))

		_, err = chain.Create(reflect.TypeFor[[]Store]())
		assert.True(t, synth.IsNoCreatorError(err))
	})

	t.Run("deterministic", func(t *testing.T) {
		typ := reflect.TypeFor[map[string][]int]()
		a, err := chain.Create(typ)
		require.NoError(t, err)
		b, err := chain.Create(typ)
		require.NoError(t, err)
		assert.Equal(t, a.Interface(), b.Interface())
	})

	t.Run("nil type", func(t *testing.T) {
		_, err := chain.Create(nil)
		assert.ErrorIs(t, err, synth.ErrNilType)
		assert.False(t, chain.CanCreate(nil))
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("string value", func(t *testing.T) {
		chain := synth.Default(synth.WithStringValue("placeholder"))
		assert.Equal(t, "placeholder", create[string](t, chain))
		assert.Equal(t, "SomeValue", create[string](t, synth.Default(synth.WithStringValue(""))))
	})

	t.Run("stub backed by a permissive mock", func(t *testing.T) {
		chain := synth.Default(synth.WithStub(permissiveStore))
		store := create[Store](t, chain)
		assert.NoError(t, store.Save(context.Background(), "k"))

		stores := create[[]Store](t, chain)
		require.Len(t, stores, 1)
		assert.NoError(t, stores[0].Save(context.Background(), "k"))
	})

	t.Run("stub requires an interface", func(t *testing.T) {
		assert.Panics(t, func() { synth.WithStub(func() point { return point{} }) })
	})

	t.Run("custom creators win", func(t *testing.T) {
		chain := synth.Default(synth.WithCreators(synth.CreatorFunc(func() point { return point{X: 1, Y: 2} })))
		assert.Equal(t, point{X: 1, Y: 2}, create[point](t, chain))
		assert.Equal(t, []point{{X: 1, Y: 2}}, create[[]point](t, chain))
	})
}

func TestCreatorsRejectForeignTypes(t *testing.T) {
	t.Parallel()
	chain := synth.Default()
	str := reflect.TypeFor[string]()

	creators := []synth.Creator{
		synth.SliceCreator{},
		synth.ArrayCreator{},
		synth.MapCreator{},
		synth.ChanCreator{},
		synth.SeqCreator{},
		synth.FuncCreator{},
		synth.PointerCreator{},
		synth.NewInterfaceCreator(),
	}
	for _, c := range creators {
		assert.False(t, c.CanHandle(str), "%T", c)
		_, err := c.Create(str, chain)
		assert.ErrorIs(t, err, synth.ErrUnsupportedType, "%T", c)
	}

	_, err := synth.ValueCreator{}.Create(reflect.TypeFor[[]int](), chain)
	assert.ErrorIs(t, err, synth.ErrUnsupportedType)
}

func TestSeqShapes(t *testing.T) {
	t.Parallel()

	assert.True(t, synth.IsSeq(reflect.TypeFor[iter.Seq[int]]()))
	assert.False(t, synth.IsSeq(reflect.TypeFor[iter.Seq2[int, int]]()))
	assert.True(t, synth.IsSeq2(reflect.TypeFor[iter.Seq2[int, int]]()))
	assert.False(t, synth.IsSeq(reflect.TypeFor[func(int)]()))
	assert.False(t, synth.IsSeq(reflect.TypeFor[[]int]()))

	empty := synth.EmptySeq(reflect.TypeFor[iter.Seq[int]]()).Interface().(iter.Seq[int])
	count := 0
	for range empty {
		count++
	}
	assert.Zero(t, count)
}

func TestChainWith(t *testing.T) {
	t.Parallel()

	base := synth.Chain{synth.ValueCreator{}}
	extended := base.With(synth.SliceCreator{})
	assert.Len(t, base, 1)
	require.Len(t, extended, 2)
	assert.IsType(t, synth.SliceCreator{}, extended[0])
	assert.True(t, extended.CanCreate(reflect.TypeFor[[]int]()))
	assert.False(t, base.CanCreate(reflect.TypeFor[[]int]()))
}
