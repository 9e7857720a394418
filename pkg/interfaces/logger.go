package interfaces

import "context"

// Logger is the leveled logging contract the importer codes against. The
// method set matches github.com/goliatone/go-logger, so hosts already using
// that package can hand their logger straight to the module; anything else
// plugs in through an adapter satisfying these seven methods.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. The importer requests one logger
// per module namespace (importer.planner, importer.builder, ...); providers
// may scope children per name or return a shared instance.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for loggers that carry persistent
// structured fields. WithFields returns a derived logger that attaches the
// fields to every subsequent entry; the receiver is left untouched.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
