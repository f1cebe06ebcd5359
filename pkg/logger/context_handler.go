package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor pulls one attribute out of a request context.
// It reports false when the context carries nothing to log.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler runs the extractors on every record. An extracted attribute
// is skipped when the record already has a top-level attribute with the same
// key, so explicit attrs such as RequestID are never duplicated.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func withExtractors(h slog.Handler, extractors []ContextExtractor) slog.Handler {
	if len(extractors) == 0 {
		return h
	}
	return contextHandler{Handler: h, extractors: extractors}
}

func (h contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return h.Handler.Handle(ctx, rec)
	}

	var present map[string]bool
	for _, extract := range h.extractors {
		attr, ok := extract(ctx)
		if !ok {
			continue
		}
		if present == nil {
			present = make(map[string]bool, rec.NumAttrs())
			rec.Attrs(func(a slog.Attr) bool {
				present[a.Key] = true
				return true
			})
		}
		if present[attr.Key] {
			continue
		}
		present[attr.Key] = true
		rec.AddAttrs(attr)
	}
	return h.Handler.Handle(ctx, rec)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
