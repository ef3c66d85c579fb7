package guardcheck_test

import (
	"context"
	"errors"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/guardcheck/pkg/argument"
	"github.com/dmitrymomot/guardcheck/pkg/async"
)

// greet rejects "" and whitespace-only names with the same check.
func greet(name string) (string, error) {
	if err := argument.NotEmptyOrWhitespace("name", name); err != nil {
		return "", err
	}
	return "Hello, " + name, nil
}

// greetLoosely only rejects "", whitespace is accepted.
func greetLoosely(name string) (string, error) {
	if err := argument.NotEmpty("name", name); err != nil {
		return "", err
	}
	return "Hello, " + name, nil
}

// process rejects nil and empty lists.
func process(items []int) (int, error) {
	if err := argument.NotEmptySlice("items", items); err != nil {
		return 0, err
	}
	sum := 0
	for _, i := range items {
		sum += i
	}
	return sum, nil
}

type user struct {
	Name string
}

// rename null-checks u but never looks at tag.
func rename(u *user, tag *string) error {
	if err := argument.NotNil("u", u); err != nil {
		return err
	}
	u.Name = "renamed"
	return nil
}

// store checks both arguments and panics on a negative limit.
type store struct {
	calls int
}

func (s *store) Save(ctx context.Context, key string, limit int) error {
	s.calls++
	if err := argument.NotNil("ctx", ctx); err != nil {
		return err
	}
	if err := argument.NotEmptyOrWhitespace("key", key); err != nil {
		return err
	}
	if limit < 0 {
		panic(argument.Invalid("limit", "cannot be negative"))
	}
	return nil
}

func (s *store) SaveAsync(key string) *async.Future[int] {
	s.calls++
	return async.Async(context.Background(), key, func(_ context.Context, key string) (int, error) {
		if err := argument.NotEmptyOrWhitespace("key", key); err != nil {
			return 0, err
		}
		return len(key), nil
	})
}

// Flush rejects an empty key before any work starts.
func (s *store) Flush(key string) (<-chan error, error) {
	s.calls++
	if key == "" {
		return nil, argument.Invalid("key", "cannot be empty")
	}
	done := make(chan error, 1)
	go func() {
		if strings.TrimSpace(key) == "" {
			done <- argument.Invalid("key", "cannot be whitespace")
		}
		close(done)
	}()
	return done, nil
}

type client struct {
	endpoint string
	retries  int
}

func newClient(endpoint string, retries int) (*client, error) {
	if err := argument.NotEmptyOrWhitespace("endpoint", endpoint); err != nil {
		return nil, err
	}
	if err := argument.NotEqual("retries", retries, -1); err != nil {
		return nil, err
	}
	return &client{endpoint: endpoint, retries: retries}, nil
}

// mutate writes into the containers it receives.
func mutate(items []string, meta map[string]int) error {
	if err := argument.First(
		argument.NotEmptySlice("items", items),
		argument.NotEmptyMap("meta", meta),
	); err != nil {
		return err
	}
	if items[0] != "SomeValue" || len(meta) != 1 {
		return errors.New("baseline leaked between cases")
	}
	items[0] = "changed"
	meta["extra"] = 1
	return nil
}

// Repository is an interface without a built-in stand-in.
type Repository interface {
	Find(id string) (string, error)
}

type repositoryMock struct {
	mock.Mock
}

func (m *repositoryMock) Find(id string) (string, error) {
	args := m.Called(id)
	return args.String(0), args.Error(1)
}

func lookup(repo Repository, id string) (string, error) {
	if err := argument.NotNil("repo", repo); err != nil {
		return "", err
	}
	if err := argument.NotEmptyOrWhitespace("id", id); err != nil {
		return "", err
	}
	return repo.Find(id)
}
