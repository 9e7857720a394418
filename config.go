package confluenceimport

import "github.com/goliatone/go-confluence-import/internal/runtimeconfig"

var (
	ErrSpaceKeyRequired        = runtimeconfig.ErrSpaceKeyRequired
	ErrWorkspaceRequired       = runtimeconfig.ErrWorkspaceRequired
	ErrUsernameRequired        = runtimeconfig.ErrUsernameRequired
	ErrPasswordRequired        = runtimeconfig.ErrPasswordRequired
	ErrOrgNameRequired         = runtimeconfig.ErrOrgNameRequired
	ErrPlanDirInvalid          = runtimeconfig.ErrPlanDirInvalid
	ErrHTTPTimeoutInvalid      = runtimeconfig.ErrHTTPTimeoutInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	HTTPConfig    = runtimeconfig.HTTPConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultPlanDir is the plan folder basename used when Config.PlanDir is empty.
const DefaultPlanDir = runtimeconfig.DefaultPlanDir

// DefaultHTTPTimeout is the wiki request timeout used when Config.HTTP.Timeout is zero.
const DefaultHTTPTimeout = runtimeconfig.DefaultHTTPTimeout

// Logging provider names accepted by Config.Logging.Provider.
const (
	LoggingProviderConsole  = runtimeconfig.LoggingProviderConsole
	LoggingProviderGoLogger = runtimeconfig.LoggingProviderGoLogger
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
