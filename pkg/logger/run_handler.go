package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// RunHandler wraps a slog.Handler and stamps every record logged with a run
// context: the run id set by WithRunID first, then the attributes returned by
// the extra extractors.
type RunHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewRunHandler wraps next. Nil extractors are dropped.
func NewRunHandler(next slog.Handler, extractors ...ContextExtractor) *RunHandler {
	h := &RunHandler{next: next}
	for _, ex := range extractors {
		if ex != nil {
			h.extractors = append(h.extractors, ex)
		}
	}
	return h
}

func (h *RunHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RunHandler) Handle(ctx context.Context, rec slog.Record) error {
	if id, ok := RunIDFrom(ctx); ok {
		rec.AddAttrs(RunID(id))
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *RunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RunHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *RunHandler) WithGroup(name string) slog.Handler {
	return &RunHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
