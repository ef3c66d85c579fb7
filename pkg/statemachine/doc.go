// Package statemachine provides a small, type-safe finite state machine.
//
// States and events are any comparable types, typically string-backed
// constants. The machine handles:
//  1. Transition lookup keyed by current state and event
//  2. Optional Guard evaluation to accept or reject transitions
//  3. Execution of side-effect Actions during transitions
//  4. Concurrency-safe access to the current state
//
// # Usage
//
//	const (
//	    Draft     = statemachine.StringState("draft")
//	    Published = statemachine.StringState("published")
//	    Publish   = statemachine.StringEvent("publish")
//	)
//
//	sm := statemachine.New(Draft,
//	    statemachine.WithTransition(Draft, Published, Publish),
//	)
//
//	if err := sm.Fire(ctx, Publish); err != nil {
//	    // handle
//	}
//
// # Error Handling
//
// Fire returns *ErrNoTransitionAvailable when the current state has no
// transition for the event and *ErrTransitionRejected when every candidate
// transition was blocked by a guard. Use IsNoTransitionAvailableError and
// IsTransitionRejectedError to tell them apart. Action errors are wrapped and
// leave the state unchanged.
package statemachine
