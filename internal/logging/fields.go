package logging

import (
	"context"

	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

type fieldsKey struct{}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension; other loggers are returned
// unchanged. A nil logger and an empty field map are both safe, so call sites
// can decorate unconditionally.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	return fl.WithFields(mergeFields(nil, fields))
}

// ContextWithFields annotates ctx with logging fields that context-aware
// loggers fold into every subsequent entry. Run-scoped values such as run_id
// travel this way once a logger is bound to the context via WithContext.
// Fields already carried by ctx are kept; on key collision the new value wins.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	carried, _ := ctx.Value(fieldsKey{}).(map[string]any)
	merged := mergeFields(mergeFields(nil, carried), fields)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns a copy of the logging fields carried by ctx, or nil
// when there are none. The copy keeps callers from mutating shared state.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	carried, ok := ctx.Value(fieldsKey{}).(map[string]any)
	if !ok || len(carried) == 0 {
		return nil
	}
	return mergeFields(nil, carried)
}

// mergeFields copies src into dst, allocating dst on first use. Returns dst
// so callers can chain copy-then-overlay sequences.
func mergeFields(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
