package statemachine

// Option configures a state machine during construction.
type Option[S comparable, E comparable] func(*Machine[S, E])

// TransitionOption configures a single transition with guards and actions.
type TransitionOption[S comparable, E comparable] func(*transitionConfig[S, E])

type transitionConfig[S comparable, E comparable] struct {
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// New creates a new state machine with the given initial state and options.
func New[S comparable, E comparable](initialState S, opts ...Option[S, E]) *Machine[S, E] {
	m := newMachine[S, E](initialState)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTransition adds a single transition to the state machine.
func WithTransition[S comparable, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		cfg := &transitionConfig[S, E]{}
		for _, opt := range opts {
			opt(cfg)
		}
		m.AddTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithTransitionsFrom adds the same event transition from each of the listed states.
func WithTransitionsFrom[S comparable, E comparable](froms []S, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) {
		for _, from := range froms {
			WithTransition(from, to, event, opts...)(m)
		}
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard[S comparable, E comparable](guard Guard[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if guard != nil {
			cfg.guards = append(cfg.guards, guard)
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction[S comparable, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if action != nil {
			cfg.actions = append(cfg.actions, action)
		}
	}
}
