package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

const (
	rootModule    = "importer"
	plannerModule = "importer.planner"
	markupModule  = "importer.markup"
	clientModule  = "importer.client"
	builderModule = "importer.builder"
)

const (
	fieldPageTitle = "page_title"
	fieldParentID  = "parent_id"
	fieldPlanPath  = "plan_path"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PlannerLogger returns the logger namespace reserved for the hierarchy planner.
func PlannerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, plannerModule)
}

// MarkupLogger returns the logger namespace reserved for content transformation.
func MarkupLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markupModule)
}

// ClientLogger returns the logger namespace reserved for the remote wiki client.
func ClientLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, clientModule)
}

// BuilderLogger returns the logger namespace reserved for the hierarchy builder.
func BuilderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, builderModule)
}

// WithPageContext enriches the provided logger with common page fields such as
// title, parent ID, and plan-relative path. Empty values are ignored.
func WithPageContext(logger interfaces.Logger, title, parentID, planPath string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		fields[fieldPageTitle] = trimmed
	}
	if trimmed := strings.TrimSpace(parentID); trimmed != "" {
		fields[fieldParentID] = trimmed
	}
	if trimmed := strings.TrimSpace(planPath); trimmed != "" {
		fields[fieldPlanPath] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
