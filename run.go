package guardcheck

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"

	"github.com/dmitrymomot/guardcheck/pkg/logger"
)

// invoker calls the callable once with a full argument vector and returns the
// failure the callable produced. A non-nil error means the call itself failed.
type invoker func(ctx context.Context, args []reflect.Value) (observed error, err error)

// Validate runs every configured (parameter, rule) case against a synchronous
// callable or a constructor. It stops at the first case that does not behave
// as expected and returns a *RuleViolationError for it.
func (v *Validator) Validate(ctx context.Context) error {
	if v.desc.ReturnShape().IsAwaitable() {
		return &CapabilityMismatchError{Callable: v.desc.Name(), Reason: "returns an awaitable; call ValidateAsync"}
	}
	return v.run(ctx, v.invokeSync)
}

// ValidateAsync is Validate for callables returning an awaitable. Every
// awaitable is awaited until it settles; a cancelled ctx stops the wait and
// its error is returned. The callable itself is not interrupted: the
// goroutine awaiting its awaitable keeps running until the awaitable settles.
func (v *Validator) ValidateAsync(ctx context.Context) error {
	if v.desc.IsConstructor() || !v.desc.ReturnShape().IsAwaitable() {
		return &CapabilityMismatchError{Callable: v.desc.Name(), Reason: "does not return an awaitable; call Validate"}
	}
	return v.run(ctx, v.invokeAsync)
}

func (v *Validator) invokeSync(_ context.Context, args []reflect.Value) (observed error, err error) {
	return v.desc.Call(args)
}

func (v *Validator) invokeAsync(ctx context.Context, args []reflect.Value) (observed error, err error) {
	future, err := v.desc.CallAsync(ctx, args)
	if err != nil {
		return nil, err
	}
	_, observed = future.AwaitContext(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	return observed, nil
}

func (v *Validator) run(ctx context.Context, invoke invoker) error {
	if err := v.checkConfigured(); err != nil {
		return err
	}

	ctx = logger.WithRunID(ctx, uuid.NewString())
	if err := v.fire(ctx, eventStart); err != nil {
		return err
	}

	start := time.Now()
	cases, err := v.execute(ctx, invoke)

	outcome, ev := "passed", eventPass
	switch {
	case err == nil:
	case errors.Is(err, ErrRuleViolation):
		outcome, ev = "failed", eventFail
	default:
		outcome, ev = "aborted", eventAbort
	}
	if fireErr := v.fire(ctx, ev); fireErr != nil {
		return errors.Join(err, fireErr)
	}

	v.log.InfoContext(ctx, "validation finished",
		logger.Outcome(outcome),
		logger.Cases(cases),
		logger.Duration(time.Since(start)),
		logger.Error(err),
	)
	return err
}

// checkConfigured requires rules for every parameter.
func (v *Validator) checkConfigured() error {
	if len(v.rules) == 0 {
		return ErrNothingConfigured
	}
	var missing []string
	for _, p := range v.params {
		if _, ok := v.rules[p.Name]; !ok {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return &UnconfiguredParametersError{Params: missing}
	}
	return nil
}

// execute walks parameters in declaration order and their rules in
// configuration order. It returns how many cases ran.
func (v *Validator) execute(ctx context.Context, invoke invoker) (int, error) {
	if _, err := v.caseArgs(); err != nil {
		return 0, err
	}

	cases := 0
	for _, p := range v.params {
		for _, r := range v.rules[p.Name] {
			cases++
			args, err := v.caseArgs()
			if err != nil {
				return cases, err
			}

			invalid, err := r.InvalidValue(&p, args[p.Position])
			if err != nil {
				return cases, creationError(p.Name, err)
			}
			args[p.Position] = invalid

			observed, err := invoke(ctx, args)
			if err != nil {
				return cases, err
			}

			ok, reason := r.Evaluate(p.Name, observed)
			if !ok {
				v.log.DebugContext(ctx, "case failed",
					logger.Param(p.Name), logger.Rule(r.Name()), logger.Outcome("failed"), logger.Error(observed))
				return cases, &RuleViolationError{Rule: r.Name(), Param: p.Name, Reason: reason}
			}
			v.log.DebugContext(ctx, "case passed",
				logger.Param(p.Name), logger.Rule(r.Name()), logger.Outcome("passed"))
		}
	}
	return cases, nil
}

// caseArgs returns a fresh argument vector for one case. Synthesised values
// are created anew, since synthesis is deterministic; caller-supplied values
// from the explicit baseline or SetParameterValue are deep-copied. A callable
// mutating its arguments therefore cannot change those of later cases, except
// through caller-supplied channels and funcs, which are passed as they are.
func (v *Validator) caseArgs() ([]reflect.Value, error) {
	if v.hasBaseline {
		out := make([]reflect.Value, len(v.baseline))
		for i, val := range v.baseline {
			out[i] = cloneValue(val)
		}
		return out, nil
	}

	out := make([]reflect.Value, len(v.params))
	for _, p := range v.params {
		if val, ok := v.overrides[p.Position]; ok {
			out[p.Position] = cloneValue(val)
			continue
		}
		val, err := v.chain.Create(p.Type)
		if err != nil {
			return nil, creationError(p.Name, err)
		}
		out[p.Position] = val
	}
	return out, nil
}

func cloneValue(val reflect.Value) reflect.Value {
	if !val.IsValid() {
		return val
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		if val.IsNil() {
			return val
		}
	case reflect.Array:
	default:
		return val
	}
	dst := reflect.New(val.Type())
	if err := deepcopy.Copy(dst.Interface(), val.Interface()); err != nil {
		return val
	}
	return dst.Elem()
}
