package runtimeconfig_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-confluence-import/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.SpaceKey = "DOCS"
	cfg.Workspace = "notes"
	cfg.Username = "bot@example.com"
	cfg.Password = "secret"
	cfg.OrgName = "acme"
	return cfg
}

func TestConfigValidate_AcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "space key",
			mutate: func(cfg *runtimeconfig.Config) { cfg.SpaceKey = " " },
			want:   runtimeconfig.ErrSpaceKeyRequired,
		},
		{
			name:   "workspace",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Workspace = "" },
			want:   runtimeconfig.ErrWorkspaceRequired,
		},
		{
			name:   "username",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Username = "" },
			want:   runtimeconfig.ErrUsernameRequired,
		},
		{
			name:   "password",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Password = "" },
			want:   runtimeconfig.ErrPasswordRequired,
		},
		{
			name:   "org name",
			mutate: func(cfg *runtimeconfig.Config) { cfg.OrgName = "" },
			want:   runtimeconfig.ErrOrgNameRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_RejectsNestedPlanDir(t *testing.T) {
	cfg := validConfig()
	cfg.PlanDir = "out/plan"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrPlanDirInvalid) {
		t.Fatalf("expected ErrPlanDirInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Timeout = -time.Second

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrHTTPTimeoutInvalid) {
		t.Fatalf("expected ErrHTTPTimeoutInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidGologgerFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_IgnoresFormatForConsoleProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "console"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected console provider to ignore format, got %v", err)
	}
}

func TestAPIBaseURL_CloudTenant(t *testing.T) {
	cfg := validConfig()
	cfg.OrgName = "acme"

	if got := cfg.APIBaseURL(); got != "https://acme.atlassian.net/wiki" {
		t.Fatalf("unexpected base url %q", got)
	}
}

func TestAPIBaseURL_FullHost(t *testing.T) {
	cfg := validConfig()
	cfg.OrgName = "wiki.internal.example.com"

	if got := cfg.APIBaseURL(); got != "https://wiki.internal.example.com" {
		t.Fatalf("unexpected base url %q", got)
	}
}

func TestPlanDirName_DefaultsWhenUnset(t *testing.T) {
	cfg := validConfig()
	cfg.PlanDir = "  "

	if got := cfg.PlanDirName(); got != runtimeconfig.DefaultPlanDir {
		t.Fatalf("expected default plan dir, got %q", got)
	}

	cfg.PlanDir = "staging"
	if got := cfg.PlanDirName(); got != "staging" {
		t.Fatalf("expected configured plan dir, got %q", got)
	}
}

func TestHTTPTimeout_DefaultsWhenUnset(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Timeout = 0

	if got := cfg.HTTPTimeout(); got != runtimeconfig.DefaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %v", got)
	}

	cfg.HTTP.Timeout = 5 * time.Second
	if got := cfg.HTTPTimeout(); got != 5*time.Second {
		t.Fatalf("expected configured timeout, got %v", got)
	}
}
