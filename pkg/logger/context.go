package logger

import (
	"context"
	"log/slog"
)

type mailingIDKey struct{}

// WithMailingID stores a mailing ID in ctx for MailingIDExtractor.
func WithMailingID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, mailingIDKey{}, id)
}

// MailingIDFromContext returns the mailing ID stored by WithMailingID.
func MailingIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(mailingIDKey{}).(string)
	return id, ok && id != ""
}

// MailingIDExtractor adds a "mailing_id" attribute when ctx carries one.
func MailingIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := MailingIDFromContext(ctx); ok {
		return slog.String("mailing_id", id), true
	}
	return slog.Attr{}, false
}
