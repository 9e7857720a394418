package bootstrap

import (
	"fmt"
	"strings"

	confluenceimport "github.com/goliatone/go-confluence-import"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

// Options captures configuration for importer CLI bootstraps.
type Options struct {
	SpaceKey  string
	Workspace string
	Username  string
	Password  string
	OrgName   string
	LogLevel  string
	LogFormat string

	// Client replaces the HTTP wiki client when set.
	Client interfaces.WikiClient
	// LoggerProvider replaces the provider derived from the logging options.
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the importer module and its logger for CLI use.
type Module struct {
	Importer *confluenceimport.Module
	Logger   interfaces.Logger
}

// BuildModule constructs an importer module from CLI options. Requesting a
// log format selects the gologger provider; the default console provider
// has no formats.
func BuildModule(opts Options) (*Module, error) {
	cfg := confluenceimport.DefaultConfig()
	cfg.SpaceKey = strings.TrimSpace(opts.SpaceKey)
	cfg.Workspace = strings.TrimSpace(opts.Workspace)
	cfg.Username = strings.TrimSpace(opts.Username)
	cfg.Password = opts.Password
	cfg.OrgName = strings.TrimSpace(opts.OrgName)

	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Provider = confluenceimport.LoggingProviderGoLogger
		cfg.Logging.Format = format
	}

	moduleOpts := []confluenceimport.Option{}
	if opts.Client != nil {
		moduleOpts = append(moduleOpts, confluenceimport.WithClient(opts.Client))
	}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, confluenceimport.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := confluenceimport.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise importer module: %w", err)
	}

	return &Module{
		Importer: module,
		Logger:   module.Logger(),
	}, nil
}
