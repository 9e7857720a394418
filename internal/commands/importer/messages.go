package importercmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	planWorkspaceMessageType = "importer.plan_workspace"
	executePlanMessageType   = "importer.execute_plan"
)

// PlanWorkspaceCommand triggers the plan phase for a workspace export. The
// command mirrors ImporterService.Plan semantics: the workspace's root index
// is walked and a publishable folder tree is written next to the sources.
type PlanWorkspaceCommand struct {
	// Workspace selects the exported wiki folder (relative or absolute) holding the root index file.
	Workspace string `json:"workspace"`
}

// Type implements command.Message.
func (PlanWorkspaceCommand) Type() string { return planWorkspaceMessageType }

// Validate ensures workspace input is present before handlers execute.
func (cmd PlanWorkspaceCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Workspace, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("importer.plan_workspace.workspace_required", "workspace is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}

// ExecutePlanCommand publishes a previously planned workspace to the wiki,
// creating pages parent-before-child under the space homepage.
type ExecutePlanCommand struct {
	// Workspace selects the exported wiki folder whose plan tree should be published.
	Workspace string `json:"workspace"`
	// DryRun resolves and logs every page that would be created without writing to the wiki.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ExecutePlanCommand) Type() string { return executePlanMessageType }

// Validate ensures workspace input is present before handlers execute.
func (cmd ExecutePlanCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Workspace, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("importer.execute_plan.workspace_required", "workspace is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}
