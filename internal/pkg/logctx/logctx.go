// Package logctx carries a request correlation id through context.Context
// and stamps it onto every log record emitted while handling that request.
//
// The HTTP layer stores the incoming (or generated) request id with
// WithRequestID; Handler wraps the application's slog.Handler and appends
// the id to each record whose context carries one, so application logs can
// be correlated with the access log.
package logctx

import (
	"context"
	"log/slog"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying the given correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID extracts the correlation id from the context.
// The second return value reports whether an id was set.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// Handler decorates a slog.Handler with the request id from the record's
// context. Records logged outside a request pass through unchanged.
type Handler struct {
	inner slog.Handler
}

// NewHandler wraps the given handler with request id stamping.
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if id, ok := RequestID(ctx); ok {
		record = record.Clone()
		record.AddAttrs(slog.String("request_id", id))
	}
	return h.inner.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
