package commands

import (
	"strings"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

const commandModuleRoot = "importer.commands"

// CommandLogger returns the logger for a command module, named under
// importer.commands and tagged so every execution shares one log shape.
// A blank module lands in the core namespace.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(
		logging.ModuleLogger(provider, commandModuleRoot+"."+name),
		map[string]any{
			"component":      "command",
			"command_module": name,
		},
	)
}

// EnsureLogger returns logger, or the no-op logger when nil, so handler code
// can log unconditionally.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
