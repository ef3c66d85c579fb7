// Package logger provides a context-aware wrapper around log/slog with
// functional options and helper attribute constructors.
//
// New builds a text or JSON handler and wraps it with RunHandler. A context
// prepared with WithRunID makes every record of a validation run carry
// run_id; registered ContextExtractor callbacks add further attributes.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	ctx := logger.WithRunID(context.Background(), uuid.NewString())
//	log.DebugContext(ctx, "case passed", logger.Param("name"), logger.Rule("NotNull"))
//
// Discard returns a logger that drops everything; it is the default for
// validators that were not given a logger.
package logger
