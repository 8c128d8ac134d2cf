package plango

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/plango/roadmap"
)

// Logger wraps slog.Logger with plango-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithProblem adds a problem id field to the logger.
func (l *Logger) WithProblem(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("problem", id),
	}
}

// WithGuard adds a guard id field to the logger.
func (l *Logger) WithGuard(id roadmap.ID) *Logger {
	return &Logger{
		Logger: l.Logger.With("guard", id),
	}
}

// LogGuardAdded logs the admission of a new guard.
func (l *Logger) LogGuardAdded(ctx context.Context, id roadmap.ID, kind roadmap.GuardType, milestones int) {
	l.DebugContext(ctx, "guard added",
		"guard", id,
		"kind", kind.String(),
		"milestones", milestones,
	)
}

// LogInterfaceBridge logs a new edge spanning an interface.
func (l *Logger) LogInterfaceBridge(ctx context.Context, a, b roadmap.ID) {
	l.DebugContext(ctx, "interface bridged",
		"a", a,
		"b", b,
	)
}

// LogSpannerRepair logs a quality repair between two neighborhood guards.
// spliced is false when the repair was a direct connection.
func (l *Logger) LogSpannerRepair(ctx context.Context, r, rp roadmap.ID, spliced bool) {
	l.DebugContext(ctx, "spanner repaired",
		"r", r,
		"rp", rp,
		"spliced", spliced,
	)
}

// LogSolveStart logs the beginning of a solve run.
func (l *Logger) LogSolveStart(ctx context.Context, problemID string, milestones, edges int) {
	l.InfoContext(ctx, "solve started",
		"problem", problemID,
		"milestones", milestones,
		"edges", edges,
	)
}

// LogSolveProgress logs periodic progress of the solver loop.
func (l *Logger) LogSolveProgress(ctx context.Context, iterations, failures, milestones, edges int) {
	l.InfoContext(ctx, "solve progress",
		"iterations", iterations,
		"failures", failures,
		"milestones", milestones,
		"edges", edges,
	)
}

// LogSolveEnd logs the outcome of a solve run.
func (l *Logger) LogSolveEnd(ctx context.Context, status Status, milestones, edges int, elapsed time.Duration) {
	l.InfoContext(ctx, "solve finished",
		"status", status.String(),
		"milestones", milestones,
		"edges", edges,
		"elapsed", elapsed,
	)
}
