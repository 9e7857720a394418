package confluenceimport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-confluence-import/internal/builder"
	importercmd "github.com/goliatone/go-confluence-import/internal/commands/importer"
	"github.com/goliatone/go-confluence-import/internal/confluence"
	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/internal/logging/console"
	"github.com/goliatone/go-confluence-import/internal/logging/gologger"
	"github.com/goliatone/go-confluence-import/internal/markdown"
	"github.com/goliatone/go-confluence-import/internal/markup"
	"github.com/goliatone/go-confluence-import/internal/workspace"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
	"github.com/google/uuid"
)

// ErrWorkspaceMissing indicates the configured workspace does not exist or is
// not a directory.
var ErrWorkspaceMissing = errors.New("importer: workspace folder does not exist")

// Aliases so hosts only need the root package for common interactions.
type (
	ExecuteOptions = interfaces.ExecuteOptions
	ImportReport   = interfaces.ImportReport
	WikiClient     = interfaces.WikiClient
	HandlerSet     = importercmd.HandlerSet
)

// Option overrides a collaborator during module construction.
type Option func(*Module)

// WithLoggerProvider injects the logger provider used for all module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithClient injects the wiki client, replacing the REST client the module
// would otherwise build from its configuration. Hosts use this to supply
// fakes in tests or their own transport.
func WithClient(client interfaces.WikiClient) Option {
	return func(m *Module) {
		m.client = client
	}
}

// Module is the importer runtime facade: one workspace, one target space.
type Module struct {
	config   Config
	runID    string
	provider interfaces.LoggerProvider
	logger   interfaces.Logger

	client      interfaces.WikiClient
	transformer interfaces.Transformer
	planner     *workspace.Planner
	builder     *builder.Builder
	handlers    *importercmd.HandlerSet
}

// New validates the configuration, checks the workspace exists, and wires the
// renderer, markup pipeline, wiki client, planner, builder, and command
// handlers. Options run before defaults are built so injected collaborators
// win.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if info, err := os.Stat(cfg.Workspace); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrWorkspaceMissing, cfg.Workspace)
	}

	m := &Module{
		config: cfg,
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	m.logger = logging.WithFields(m.runLogger(logging.ModuleLogger(m.provider, "")), map[string]any{
		"space_key": cfg.SpaceKey,
	})

	transformer, err := markup.NewTransformer(markup.TransformerConfig{
		Renderer: markdown.NewGoldmarkRenderer(),
		Logger:   m.runLogger(logging.MarkupLogger(m.provider)),
	})
	if err != nil {
		return nil, err
	}
	m.transformer = transformer

	if m.client == nil {
		client, err := confluence.New(confluence.Config{
			BaseURL:  cfg.APIBaseURL(),
			SpaceKey: cfg.SpaceKey,
			Username: cfg.Username,
			Password: cfg.Password,
			Timeout:  cfg.HTTPTimeout(),
			Logger:   m.runLogger(logging.ClientLogger(m.provider)),
		})
		if err != nil {
			return nil, err
		}
		m.client = client
	}

	m.planner = workspace.NewPlanner(workspace.PlannerConfig{
		PlanDirName: cfg.PlanDirName(),
		Logger:      m.runLogger(logging.PlannerLogger(m.provider)),
	})

	live, err := builder.New(builder.Config{
		Client:      m.client,
		Transformer: m.transformer,
		Logger:      m.runLogger(logging.BuilderLogger(m.provider)),
	})
	if err != nil {
		return nil, err
	}
	m.builder = live

	handlers, err := importercmd.RegisterImporterCommands(nil, moduleService{module: m}, m.provider, importercmd.FeatureGates{})
	if err != nil {
		return nil, err
	}
	m.handlers = handlers

	m.logger.Info("importer.module.ready",
		"workspace", cfg.Workspace,
		"plan_dir", cfg.PlanDirName(),
		"base_url", cfg.APIBaseURL(),
	)
	return m, nil
}

// Plan materialises the plan folder for the configured workspace.
func (m *Module) Plan(ctx context.Context) error {
	return m.handlers.Plan.Execute(ctx, importercmd.PlanWorkspaceCommand{
		Workspace: m.config.Workspace,
	})
}

// Execute publishes the configured workspace's plan folder to the wiki.
func (m *Module) Execute(ctx context.Context, opts ExecuteOptions) error {
	return m.handlers.Execute.Execute(ctx, importercmd.ExecutePlanCommand{
		Workspace: m.config.Workspace,
		DryRun:    opts.DryRun,
	})
}

// Commands exposes the wired command handlers for hosts that dispatch through
// a command bus.
func (m *Module) Commands() *HandlerSet {
	return m.handlers
}

// Planner returns the plan-phase service.
func (m *Module) Planner() *workspace.Planner {
	return m.planner
}

// Builder returns the live-mode hierarchy builder.
func (m *Module) Builder() *builder.Builder {
	return m.builder
}

// Client returns the wiki client used for remote operations.
func (m *Module) Client() interfaces.WikiClient {
	return m.client
}

// Transformer returns the content pipeline applied to document bodies.
func (m *Module) Transformer() interfaces.Transformer {
	return m.transformer
}

// Logger returns the module's root logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}

// RunID identifies this module instance in log output.
func (m *Module) RunID() string {
	return m.runID
}

// runLogger scopes a logger to this module instance so every entry it emits
// carries the run identifier.
func (m *Module) runLogger(base interfaces.Logger) interfaces.Logger {
	return logging.WithFields(base, map[string]any{"run_id": m.runID})
}

// moduleService adapts the module's internals to interfaces.ImporterService
// for the command handlers.
type moduleService struct {
	module *Module
}

var _ interfaces.ImporterService = moduleService{}

func (s moduleService) Plan(ctx context.Context, workspaceDir string) (string, error) {
	return s.module.planner.Plan(ctx, workspaceDir)
}

func (s moduleService) Execute(ctx context.Context, workspaceDir string, opts interfaces.ExecuteOptions) (*interfaces.ImportReport, error) {
	planDir := filepath.Join(workspaceDir, s.module.config.PlanDirName())
	if opts.DryRun {
		dry, err := builder.New(builder.Config{
			Client:      s.module.client,
			Transformer: s.module.transformer,
			Logger:      s.module.runLogger(logging.BuilderLogger(s.module.provider)),
			DryRun:      true,
		})
		if err != nil {
			return nil, err
		}
		return dry.Build(ctx, planDir)
	}
	return s.module.builder.Build(ctx, planDir)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch provider := strings.ToLower(strings.TrimSpace(cfg.Provider)); provider {
	case "", LoggingProviderConsole:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case LoggingProviderGoLogger:
		glp, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return glp, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
}
