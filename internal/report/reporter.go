// Package report carries pipeline events to whatever is presenting them.
package report

import (
	"context"
	"log/slog"
)

// Reporter receives the events a run produces.
// Args are slog-style key/value pairs.
type Reporter interface {
	Notice(ctx context.Context, msg string, args ...any)
	Warning(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

// Slog reports events through a slog.Logger.
type Slog struct {
	logger *slog.Logger
}

// NewSlog wraps logger. A nil logger uses slog.Default().
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{logger: logger}
}

func (s *Slog) Notice(ctx context.Context, msg string, args ...any) {
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *Slog) Warning(ctx context.Context, msg string, args ...any) {
	s.logger.WarnContext(ctx, msg, args...)
}

func (s *Slog) Error(ctx context.Context, msg string, args ...any) {
	s.logger.ErrorContext(ctx, msg, args...)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Notice(context.Context, string, ...any)  {}
func (Discard) Warning(context.Context, string, ...any) {}
func (Discard) Error(context.Context, string, ...any)   {}
