package statemachine

import (
	"context"
)

// Action executes side effects during state transitions. Returning an error prevents the transition.
type Action[S comparable, E comparable] func(ctx context.Context, from, to S, event E) error

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S comparable, E comparable] func(ctx context.Context, from S, event E) bool

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition[S comparable, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
}

// StringState provides a simple string-based state for basic use cases.
type StringState string

func (s StringState) String() string {
	return string(s)
}

// StringEvent provides a simple string-based event for basic use cases.
type StringEvent string

func (e StringEvent) String() string {
	return string(e)
}
