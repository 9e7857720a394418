package importercmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-confluence-import/internal/commands"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the importer command handlers produced by RegisterImporterCommands.
type HandlerSet struct {
	Plan    *PlanWorkspaceHandler
	Execute *ExecutePlanHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	planHandlerOpts    []commands.HandlerOption[PlanWorkspaceCommand]
	executeHandlerOpts []commands.HandlerOption[ExecutePlanCommand]
}

// WithPlanHandlerOptions forwards options to the PlanWorkspaceHandler constructor.
func WithPlanHandlerOptions(opts ...commands.HandlerOption[PlanWorkspaceCommand]) Option {
	return func(cfg *options) {
		cfg.planHandlerOpts = append(cfg.planHandlerOpts, opts...)
	}
}

// WithExecuteHandlerOptions forwards options to the ExecutePlanHandler constructor.
func WithExecuteHandlerOptions(opts ...commands.HandlerOption[ExecutePlanCommand]) Option {
	return func(cfg *options) {
		cfg.executeHandlerOpts = append(cfg.executeHandlerOpts, opts...)
	}
}

// RegisterImporterCommands builds importer command handlers and registers them with the
// provided registry. A HandlerSet containing the constructed handlers is returned so
// callers can wire additional integrations (dispatcher, cron) as needed.
func RegisterImporterCommands(reg CommandRegistry, service interfaces.ImporterService, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("importer command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "importer")

	planHandler := NewPlanWorkspaceHandler(service, logger, gates, cfg.planHandlerOpts...)
	executeHandler := NewExecutePlanHandler(service, logger, gates, cfg.executeHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(planHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(executeHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Plan:    planHandler,
		Execute: executeHandler,
	}, nil
}

// RegisterExecuteCron wires the provided execute handler into a cron registrar using the
// supplied command configuration and message payload, enabling scheduled re-imports of a
// workspace. The handler is executed with a background context.
func RegisterExecuteCron(reg CronRegistrar, handler *ExecutePlanHandler, cfg command.HandlerConfig, msg ExecutePlanCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
