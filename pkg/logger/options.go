package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the handler encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures a logger built by New.
type Option func(*options)

type options struct {
	output     io.Writer
	format     Format
	extractors []ContextExtractor
	level      slog.Level
}

func defaultOptions() options {
	return options{
		output: os.Stdout,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithFormat switches between JSON (default) and text output.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithOutput redirects log output. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
