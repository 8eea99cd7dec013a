package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor derives an attribute from the context of a log call.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type attrsKey struct{}

// ContextWithAttrs returns a copy of ctx carrying attrs in addition to the
// attributes already stored in it. Loggers created by New add them to every
// record logged with that context.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	stored := AttrsFromContext(ctx)
	return context.WithValue(ctx, attrsKey{}, append(slices.Clip(stored), attrs...))
}

// AttrsFromContext returns the attributes stored by ContextWithAttrs.
func AttrsFromContext(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(attrsKey{}).([]slog.Attr)
	return attrs
}

// contextHandler adds context attributes to records before passing them on.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	return &contextHandler{next: next, extractors: extractors}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	rec.AddAttrs(AttrsFromContext(ctx)...)
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newContextHandler(h.next.WithAttrs(attrs), h.extractors)
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return newContextHandler(h.next.WithGroup(name), h.extractors)
}
