// Package logger builds slog loggers with context extraction and optional
// Sentry reporting.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))),
//		logger.WithExtractors(logger.MailingIDExtractor),
//	)
//
//	ctx = logger.WithMailingID(ctx, "spring-campaign")
//	log.InfoContext(ctx, "sending")
//	// {"level":"INFO","msg":"sending","mailing_id":"spring-campaign"}
//
// # Context Extractors
//
// A ContextExtractor is called for every record, so values stored in the
// context at call time are always the ones logged. ContextHandler applies
// extractors on top of any slog.Handler.
//
// # Sentry
//
// NewWithSentry adds a Sentry handler next to stdout when a DSN is
// configured. Errors become Sentry issues; records at or above
// SentryConfig.MinLevel are stored as Sentry logs. Without a DSN the logger
// writes to stdout only, so the same code runs locally and in production.
//
//	log, flush := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: os.Getenv("SENTRY_ENVIRONMENT"),
//		MinLevel:    slog.LevelWarn,
//	})
//	defer flush()
//
// NewNope returns a logger that discards everything; it is the default
// logger of the socketlabs client.
package logger
