package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrSpaceKeyRequired indicates the target space key is missing.
var ErrSpaceKeyRequired = errors.New("importer config: space key is required")

// ErrWorkspaceRequired indicates the workspace folder is missing.
var ErrWorkspaceRequired = errors.New("importer config: workspace folder is required")

// ErrUsernameRequired indicates the wiki username is missing.
var ErrUsernameRequired = errors.New("importer config: username is required")

// ErrPasswordRequired indicates the wiki password or API token is missing.
var ErrPasswordRequired = errors.New("importer config: password is required")

// ErrOrgNameRequired indicates the organization name used to derive the API endpoint is missing.
var ErrOrgNameRequired = errors.New("importer config: organization name is required")

// ErrPlanDirInvalid indicates the plan folder setting is not a bare directory name.
var ErrPlanDirInvalid = errors.New("importer config: plan folder must be a bare directory name")

var ErrHTTPTimeoutInvalid = errors.New("importer config: http timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("importer config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("importer config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("importer config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("importer config: logging format is invalid")

// DefaultPlanDir names the folder the plan phase materialises inside the
// workspace when no override is configured.
const DefaultPlanDir = "plan"

// DefaultHTTPTimeout bounds individual wiki API requests.
const DefaultHTTPTimeout = 30 * time.Second

// Logging provider names accepted by LoggingConfig.Provider.
const (
	LoggingProviderConsole  = "console"
	LoggingProviderGoLogger = "gologger"
)

// Config aggregates the settings one import run needs. Fields intentionally
// use simple types so host applications can populate them from flags,
// environment variables, or their own configuration layers.
type Config struct {
	// SpaceKey selects the wiki space pages are created in.
	SpaceKey string
	// Workspace is the exported wiki folder holding the root index file.
	Workspace string
	// Username authenticates wiki API requests.
	Username string
	// Password carries the password or API token paired with Username.
	Password string
	// OrgName derives the API endpoint: values with a dot are used as a
	// full host, anything else as an Atlassian Cloud tenant name.
	OrgName string
	// PlanDir is the basename of the plan folder written into Workspace.
	PlanDir string
	HTTP    HTTPConfig
	Logging LoggingConfig
}

// HTTPConfig captures transport behaviour for the wiki client.
type HTTPConfig struct {
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults a CLI invocation starts from. Space,
// workspace, and credential fields stay empty; callers must supply them.
func DefaultConfig() Config {
	return Config{
		PlanDir: DefaultPlanDir,
		HTTP: HTTPConfig{
			Timeout: DefaultHTTPTimeout,
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderConsole,
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.SpaceKey) == "" {
		return ErrSpaceKeyRequired
	}
	if strings.TrimSpace(cfg.Workspace) == "" {
		return ErrWorkspaceRequired
	}
	if strings.TrimSpace(cfg.Username) == "" {
		return ErrUsernameRequired
	}
	if strings.TrimSpace(cfg.Password) == "" {
		return ErrPasswordRequired
	}
	if strings.TrimSpace(cfg.OrgName) == "" {
		return ErrOrgNameRequired
	}
	if planDir := strings.TrimSpace(cfg.PlanDir); strings.ContainsAny(planDir, `/\`) {
		return fmt.Errorf("%w: %s", ErrPlanDirInvalid, planDir)
	}
	if cfg.HTTP.Timeout < 0 {
		return ErrHTTPTimeoutInvalid
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == LoggingProviderGoLogger {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// PlanDirName returns the configured plan folder basename, falling back to
// DefaultPlanDir when unset.
func (cfg Config) PlanDirName() string {
	if name := strings.TrimSpace(cfg.PlanDir); name != "" {
		return name
	}
	return DefaultPlanDir
}

// HTTPTimeout returns the configured request timeout, falling back to
// DefaultHTTPTimeout when unset.
func (cfg Config) HTTPTimeout() time.Duration {
	if cfg.HTTP.Timeout > 0 {
		return cfg.HTTP.Timeout
	}
	return DefaultHTTPTimeout
}

// APIBaseURL derives the wiki endpoint from the organization name.
func (cfg Config) APIBaseURL() string {
	org := strings.TrimSpace(cfg.OrgName)
	if strings.Contains(org, ".") {
		return "https://" + org
	}
	return fmt.Sprintf("https://%s.atlassian.net/wiki", org)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case LoggingProviderConsole, LoggingProviderGoLogger:
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
