package logger

import (
	"context"
	"log/slog"
	"os"
)

// New builds the process-wide JSON logger. Debug level is enabled only
// for local and dev environments; everything else runs at info.
func New(appEnv string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	switch appEnv {
	case "local", "dev":
		opts.Level = slog.LevelDebug
	}

	l := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	return l.With("service", "dialdesk")
}

type ctxKey struct{}

// With returns a context carrying l.
func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger carried by ctx, or slog.Default() when none is set.
// Request handlers reach scoped loggers through this so log lines keep
// their request_id outside the HTTP layer.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
