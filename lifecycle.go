package guardcheck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/guardcheck/pkg/logger"
	"github.com/dmitrymomot/guardcheck/pkg/statemachine"
)

// State is the lifecycle state of a Validator.
type State string

const (
	StateUnconfigured State = "unconfigured"
	StateConfigured   State = "configured"
	StateRunning      State = "running"
	StatePassed       State = "passed"
	StateFailed       State = "failed"
)

func (s State) String() string { return string(s) }

type event string

const (
	eventConfigure event = "configure"
	eventStart     event = "start"
	eventPass      event = "pass"
	eventFail      event = "fail"
	eventAbort     event = "abort"
)

// newLifecycle wires the transitions of a validator. A finished run can be
// started again or reconfigured; a run that stops on an engine error goes
// back to configured.
func newLifecycle(log *slog.Logger) *statemachine.Machine[State, event] {
	trace := statemachine.WithAction[State, event](func(ctx context.Context, from, to State, ev event) error {
		log.DebugContext(ctx, "validator state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
			slog.String("event", string(ev)),
		)
		return nil
	})

	return statemachine.New(StateUnconfigured,
		statemachine.WithTransitionsFrom(
			[]State{StateUnconfigured, StateConfigured, StatePassed, StateFailed},
			StateConfigured, eventConfigure, trace,
		),
		statemachine.WithTransitionsFrom(
			[]State{StateConfigured, StatePassed, StateFailed},
			StateRunning, eventStart, trace,
		),
		statemachine.WithTransition(StateRunning, StatePassed, eventPass, trace),
		statemachine.WithTransition(StateRunning, StateFailed, eventFail, trace),
		statemachine.WithTransition(StateRunning, StateConfigured, eventAbort, trace),
	)
}

// fire moves the lifecycle, turning a refused transition into a configuration error.
func (v *Validator) fire(ctx context.Context, ev event) error {
	if err := v.lifecycle.Fire(ctx, ev); err != nil {
		v.log.DebugContext(ctx, "validator transition refused", logger.Error(err))
		return fmt.Errorf("%w: %s in state %s", ErrInvalidState, ev, v.lifecycle.Current())
	}
	return nil
}

// State returns the current lifecycle state.
func (v *Validator) State() State {
	return v.lifecycle.Current()
}
