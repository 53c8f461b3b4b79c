package logger

import "log/slog"

// New creates a logger writing to stdout, JSON-encoded at info level unless
// overridden by options.
func New(opts ...Option) *slog.Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return slog.New(NewContextHandler(newHandler(o), o.extractors...))
}

func newHandler(o options) slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.format == FormatText {
		return slog.NewTextHandler(o.output, ho)
	}
	return slog.NewJSONHandler(o.output, ho)
}
