package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	confluenceimport "github.com/goliatone/go-confluence-import"
	"github.com/goliatone/go-confluence-import/cmd/confluence-import/internal/bootstrap"
)

const (
	commandPlan    = "plan"
	commandExecute = "execute"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "confluence-import:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	username  string
	password  string
	orgName   string
	logLevel  string
	logFormat string
	dryRun    bool
	envFile   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "confluence-import SPACEKEY FOLDER COMMAND",
		Short: "Publish an exported markdown workspace to Confluence",
		Long: `confluence-import migrates a folder of exported markdown documents into a
Confluence space in two phases. The plan phase reads the workspace's index
files and materialises the page hierarchy as a folder tree; the execute
phase walks that tree and creates one page per entry, parents first.

COMMAND is either "plan" or "execute". Credentials come from the
CONFLUENCE_USERNAME, CONFLUENCE_PASSWORD, and CONFLUENCE_ORGNAME
environment variables (a .env file is honoured) or from the flags below.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd.Context(), flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.username, "username", "u", "", "wiki user (CONFLUENCE_USERNAME wins when set)")
	cmd.Flags().StringVarP(&flags.password, "password", "p", "", "wiki password or API token (CONFLUENCE_PASSWORD wins when set)")
	cmd.Flags().StringVarP(&flags.orgName, "orgname", "o", "", "Atlassian tenant name or full wiki host (CONFLUENCE_ORGNAME wins when set)")
	cmd.Flags().StringVarP(&flags.logLevel, "loglevel", "l", "info", "log level (trace, debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "structured log format (json, console, pretty)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report what execute would create without creating pages")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "extra dotenv file loaded before reading the environment")

	return cmd
}

func runRoot(ctx context.Context, flags *rootFlags, args []string) error {
	spaceKey, workspaceDir, command := args[0], args[1], args[2]

	if command != commandPlan && command != commandExecute {
		return fmt.Errorf("unknown command %q: want %q or %q", command, commandPlan, commandExecute)
	}
	if flags.dryRun && command != commandExecute {
		return fmt.Errorf("--dry-run only applies to %s", commandExecute)
	}

	if err := loadEnvironment(flags.envFile); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		SpaceKey:  spaceKey,
		Workspace: workspaceDir,
		Username:  envOrFlag("CONFLUENCE_USERNAME", flags.username),
		Password:  envOrFlag("CONFLUENCE_PASSWORD", flags.password),
		OrgName:   envOrFlag("CONFLUENCE_ORGNAME", flags.orgName),
		LogLevel:  flags.logLevel,
		LogFormat: flags.logFormat,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if command == commandPlan {
		return module.Importer.Plan(ctx)
	}
	return module.Importer.Execute(ctx, confluenceimport.ExecuteOptions{DryRun: flags.dryRun})
}

// loadEnvironment loads .env when present plus any explicitly named dotenv
// file. Only the explicit file must exist.
func loadEnvironment(envFile string) error {
	_ = godotenv.Load()

	if trimmed := strings.TrimSpace(envFile); trimmed != "" {
		if err := godotenv.Load(trimmed); err != nil {
			return fmt.Errorf("load env file %s: %w", trimmed, err)
		}
	}
	return nil
}

func envOrFlag(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
