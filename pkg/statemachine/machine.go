package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is a thread-safe in-memory finite state machine over comparable
// state and event types.
// Transitions are indexed as [from][event][]Transition for O(1) lookups.
type Machine[S comparable, E comparable] struct {
	initialState S
	currentState S
	transitions  map[S]map[E][]Transition[S, E]
	mu           sync.RWMutex
}

func newMachine[S comparable, E comparable](initialState S) *Machine[S, E] {
	return &Machine[S, E]{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[S]map[E][]Transition[S, E]),
	}
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState
}

func (m *Machine[S, E]) AddTransition(from, to S, event E, guards []Guard[S, E], actions []Action[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E][]Transition[S, E])
	}

	// Multiple transitions allowed for same from/event to support guard-based branching
	m.transitions[from][event] = append(m.transitions[from][event], Transition[S, E]{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
}

// Fire applies the first transition for event whose guards all pass.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	transitions := m.transitions[m.currentState][event]
	if len(transitions) == 0 {
		return NewErrNoTransitionAvailable(m.currentState, event)
	}

	t := m.firstAllowed(ctx, transitions, event)
	if t == nil {
		return NewErrTransitionRejected(m.currentState, event)
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.currentState, t.To, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.currentState = t.To
	return nil
}

func (m *Machine[S, E]) CanFire(ctx context.Context, event E) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transitions := m.transitions[m.currentState][event]
	if len(transitions) == 0 {
		return false
	}
	return m.firstAllowed(ctx, transitions, event) != nil
}

func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentState = m.initialState
}

// firstAllowed returns the first transition whose guards pass; callers hold the lock.
func (m *Machine[S, E]) firstAllowed(ctx context.Context, transitions []Transition[S, E], event E) *Transition[S, E] {
	for i, t := range transitions {
		allowed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.currentState, event) {
				allowed = false
				break
			}
		}
		if allowed {
			return &transitions[i]
		}
	}
	return nil
}
