package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// TelemetryStatus captures the result category for command execution.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// outcomeMessage is the log message emitted for a non-success status.
func (s TelemetryStatus) outcomeMessage() string {
	if s == TelemetryStatusContextError {
		return "command.execute.context_error"
	}
	return "command.execute.failed"
}

// TelemetryInfo describes a command execution outcome provided to telemetry
// callbacks. Fields holds the same structured fields the handler logged with,
// so callbacks can emit entries that correlate with the execution trail.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is an optional callback invoked once per command execution.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry returns a callback that logs outcomes through the supplied
// logger with the execution duration attached. It is the stock choice for
// handlers that want durations without a custom metrics sink.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = EnsureLogger(logger)
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		args := []any{"duration_ms", info.Duration.Milliseconds()}
		if info.Status == TelemetryStatusSuccess {
			entry.Info("command.execute.success", args...)
			return
		}
		entry.Error(info.Status.outcomeMessage(), append(args, "error", info.Error)...)
	}
}
