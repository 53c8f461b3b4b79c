package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const sentryFlushTimeout = 2 * time.Second

// SentryConfig configures error reporting.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored as a Sentry log entry.
	// Errors always become Sentry events.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes to stdout and, when cfg.DSN is
// set, to Sentry as well. If the DSN is empty or the SDK fails to start, only
// stdout is used.
//
// The returned flush function blocks until buffered Sentry events are sent;
// short-lived programs should defer it.
func NewWithSentry(cfg SentryConfig, opts ...Option) (*slog.Logger, func()) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	stdout := newHandler(o)
	noflush := func() {}

	if cfg.DSN == "" {
		return slog.New(NewContextHandler(stdout, o.extractors...)), noflush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("sentry init failed, logging to stdout only", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(stdout, o.extractors...)), noflush
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background())

	log := slog.New(NewContextHandler(fanout{stdout, sentryHandler}, o.extractors...))
	return log, func() { sentry.Flush(sentryFlushTimeout) }
}

func sentryLogLevels(minLevel slog.Level) []slog.Level {
	all := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	out := make([]slog.Level, 0, len(all))
	for _, l := range all {
		if l >= minLevel {
			out = append(out, l)
		}
	}
	return out
}
