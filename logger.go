package stringcalc

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with stringcalc-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogAliasResolved logs the legacy-shorthand path of type resolution.
func (l *Logger) LogAliasResolved(alias, canonical string) {
	l.Warn("legacy string type shorthand resolved",
		"alias", alias,
		"canonical", canonical,
	)
}

// LogRangeExceeded logs a suggestion result whose every entry misses the
// target tension on the same side.
func (l *Logger) LogRangeExceeded(w *RangeWarning) {
	l.Warn("target tension outside achievable range",
		"types", w.Types,
		"target", w.Target,
		"margin", w.Margin,
		"side", w.Side,
	)
}

// LogSuggest logs a gauge-suggestion search.
func (l *Logger) LogSuggest(target, scale float64, pitchName string, results int, err error) {
	if err != nil {
		l.Error("gauge suggestion failed",
			"target", target,
			"scale_length", scale,
			"pitch", pitchName,
			"error", err,
		)
	} else {
		l.Debug("gauge suggestion completed",
			"target", target,
			"scale_length", scale,
			"pitch", pitchName,
			"results", results,
		)
	}
}
