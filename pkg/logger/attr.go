package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RunID records the validation run identifier under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Callable records the name of the callable under test.
func Callable(name string) slog.Attr {
	return slog.String("callable", name)
}

// Param records a parameter name.
func Param(name string) slog.Attr {
	return slog.String("param", name)
}

// Rule records a rule name.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Outcome records the result of a case or a run, e.g. "passed" or "failed".
func Outcome(outcome string) slog.Attr {
	return slog.String("outcome", outcome)
}

// Cases records how many (parameter, rule) cases a run executed.
func Cases(n int) slog.Attr {
	return slog.Int("cases", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
