package interfaces

import "context"

// ImporterService exposes the two-phase import workflow: Plan materialises a
// publishable folder tree from a workspace export, Execute publishes a
// previously planned tree to the wiki.
type ImporterService interface {
	// Plan builds the plan folder for the workspace and returns its path.
	Plan(ctx context.Context, workspaceDir string) (string, error)
	// Execute walks the workspace's plan folder and creates wiki pages,
	// returning a report of what was created, reused, or skipped.
	Execute(ctx context.Context, workspaceDir string, opts ExecuteOptions) (*ImportReport, error)
}

// ExecuteOptions tunes a single execute run.
type ExecuteOptions struct {
	// DryRun resolves and logs every page that would be created without
	// performing any write against the wiki.
	DryRun bool
}

// ImportReport summarises one execute run.
type ImportReport struct {
	// Containers counts pages created for plan subfolders.
	Containers int
	// Pages counts pages created from Markdown documents.
	Pages int
	// Reused counts plan entries that matched an existing page under the
	// same parent instead of creating a duplicate.
	Reused int
	// Skipped counts creations suppressed by dry-run mode.
	Skipped int
	// PageIDs maps slash-separated plan-relative paths to the wiki page ID
	// recorded for them ("" maps to the space homepage).
	PageIDs map[string]string
}
