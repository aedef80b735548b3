// Package logger provides a slog.Handler that decorates records with request scoped IDs.
package logger

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"
)

const (
	KeyRequestID = "request_id"
	KeyTraceID   = "trace_id"
	KeySpanID    = "span_id"
)

// ContextHandler copies the chi request ID and the OpenTelemetry span context from the
// context onto every record. A request_id already bound with Logger.With is not repeated.
type ContextHandler struct {
	slog.Handler
	boundReqID bool
}

func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: handler}
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String(KeyTraceID, sc.TraceID().String()),
			slog.String(KeySpanID, sc.SpanID().String()),
		)
	}
	if !h.boundReqID {
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			r.AddAttrs(slog.String(KeyRequestID, reqID))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := h.boundReqID
	for _, a := range attrs {
		if a.Key == KeyRequestID {
			bound = true
		}
	}
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), boundReqID: bound}
}

// WithGroup keeps the bound request_id state of h.
func (h *ContextHandler) WithGroup(group string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(group), boundReqID: h.boundReqID}
}
