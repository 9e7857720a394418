package importercmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-confluence-import/internal/commands"
	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	planOperation    = "importer.plan_workspace"
	executeOperation = "importer.execute_plan"
)

var (
	// ErrImporterFeatureDisabled is returned when the importer feature flag is disabled at runtime.
	ErrImporterFeatureDisabled = errors.New("importer command: feature disabled")
)

var (
	_ command.Commander[PlanWorkspaceCommand] = (*PlanWorkspaceHandler)(nil)
	_ command.Commander[ExecutePlanCommand]   = (*ExecutePlanHandler)(nil)
)

// PlanWorkspaceHandler runs the plan phase via the shared command handler foundation.
type PlanWorkspaceHandler struct {
	inner *commands.Handler[PlanWorkspaceCommand]
}

// NewPlanWorkspaceHandler creates a handler bound to the supplied importer service.
func NewPlanWorkspaceHandler(service interfaces.ImporterService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[PlanWorkspaceCommand]) *PlanWorkspaceHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg PlanWorkspaceCommand) error {
		if !gates.importerEnabled() {
			return ErrImporterFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		planDir, err := service.Plan(ctx, msg.Workspace)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"workspace": msg.Workspace,
			"plan_dir":  planDir,
		}).Info("importer.command.plan_workspace.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[PlanWorkspaceCommand]{
		commands.WithLogger[PlanWorkspaceCommand](baseLogger),
		commands.WithOperation[PlanWorkspaceCommand](planOperation),
		commands.WithMessageFields(func(msg PlanWorkspaceCommand) map[string]any {
			return map[string]any{
				"workspace": msg.Workspace,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PlanWorkspaceCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PlanWorkspaceHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PlanWorkspaceCommand].
func (h *PlanWorkspaceHandler) Execute(ctx context.Context, msg PlanWorkspaceCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExecutePlanHandler publishes planned workspaces via the shared command handler foundation.
type ExecutePlanHandler struct {
	inner *commands.Handler[ExecutePlanCommand]
}

// NewExecutePlanHandler creates a handler bound to the supplied importer service.
func NewExecutePlanHandler(service interfaces.ImporterService, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ExecutePlanCommand]) *ExecutePlanHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExecutePlanCommand) error {
		if !gates.importerEnabled() {
			return ErrImporterFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report, err := service.Execute(ctx, msg.Workspace, interfaces.ExecuteOptions{
			DryRun: msg.DryRun,
		})
		if err != nil {
			return err
		}
		if report != nil {
			logging.WithFields(baseLogger, map[string]any{
				"containers_count": report.Containers,
				"pages_count":      report.Pages,
				"reused_count":     report.Reused,
				"skipped_count":    report.Skipped,
				"dry_run":          msg.DryRun,
			}).Info("importer.command.execute_plan.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExecutePlanCommand]{
		commands.WithLogger[ExecutePlanCommand](baseLogger),
		commands.WithOperation[ExecutePlanCommand](executeOperation),
		commands.WithMessageFields(func(msg ExecutePlanCommand) map[string]any {
			fields := map[string]any{
				"workspace": msg.Workspace,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExecutePlanCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExecutePlanHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExecutePlanCommand].
func (h *ExecutePlanHandler) Execute(ctx context.Context, msg ExecutePlanCommand) error {
	return h.inner.Execute(ctx, msg)
}
