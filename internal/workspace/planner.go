package workspace

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

const (
	// RootIndexName is the only index recognized by name; nested indexes are
	// recognized structurally.
	RootIndexName = "index.md"

	defaultPlanDirName = "plan"
)

// PlannerConfig carries the plan folder name and logger for a Planner.
type PlannerConfig struct {
	PlanDirName string
	Logger      interfaces.Logger
}

// Planner materializes a workspace's index hierarchy into a plan tree on
// disk. The planner never mutates the workspace's own documents; leaves are
// copied byte-for-byte into the plan folder.
type Planner struct {
	planDirName string
	logger      interfaces.Logger
}

// NewPlanner builds a Planner, defaulting the plan folder name to "plan".
func NewPlanner(cfg PlannerConfig) *Planner {
	name := cfg.PlanDirName
	if name == "" {
		name = defaultPlanDirName
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Planner{planDirName: name, logger: logger}
}

// Plan resolves the root index of workspaceDir and materializes the
// hierarchy under a fresh plan folder, returning the plan folder path. The
// plan folder must not pre-exist; partial trees from a failed run are left
// in place for inspection.
func (p *Planner) Plan(ctx context.Context, workspaceDir string) (string, error) {
	rootIndex := filepath.Join(workspaceDir, RootIndexName)
	if info, err := os.Stat(rootIndex); err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootIndexMissing, rootIndex)
	}

	planDir := filepath.Join(workspaceDir, p.planDirName)
	if _, err := os.Stat(planDir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrPlanExists, planDir)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("workspace plan stat %s: %w", planDir, err)
	}

	p.logger.Info("workspace.plan.started",
		"workspace", workspaceDir,
		"plan_dir", planDir,
	)

	if err := os.MkdirAll(planDir, 0o755); err != nil {
		return "", fmt.Errorf("workspace plan create %s: %w", planDir, err)
	}

	walk := &planWalk{
		workspaceDir: workspaceDir,
		planDir:      planDir,
		visited:      map[string]struct{}{},
		logger:       p.logger,
	}
	if err := walk.processIndex(ctx, rootIndex, ""); err != nil {
		return "", err
	}

	p.logger.Info("workspace.plan.completed", "plan_dir", planDir)
	return planDir, nil
}

// planWalk holds the state of one recursive descent over the index files.
type planWalk struct {
	workspaceDir string
	planDir      string
	visited      map[string]struct{}
	logger       interfaces.Logger
}

// processIndex walks one index file. destSubpath is the plan-relative folder
// receiving this index's entries; empty for the root index. Sibling order is
// line order, which later fixes remote page creation order.
func (w *planWalk) processIndex(ctx context.Context, indexPath, destSubpath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	resolved, err := filepath.Abs(indexPath)
	if err != nil {
		return fmt.Errorf("workspace plan resolve %s: %w", indexPath, err)
	}
	if _, seen := w.visited[resolved]; seen {
		return &CycleError{Index: indexPath}
	}
	w.visited[resolved] = struct{}{}

	dest := w.planDir
	if destSubpath != "" {
		dest = filepath.Join(w.planDir, destSubpath)
		w.logger.Debug("workspace.plan.folder", "plan_path", destSubpath)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return fmt.Errorf("workspace plan create %s: %w", dest, err)
		}
	}

	file, err := os.Open(indexPath)
	if err != nil {
		return fmt.Errorf("workspace plan open %s: %w", indexPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, ok := ParseEntry(scanner.Text())
		if !ok {
			continue
		}

		target, err := w.resolveTarget(indexPath, entry.Target)
		if err != nil {
			return err
		}

		isIndex, err := IsIndex(target)
		if err != nil {
			return err
		}

		if isIndex {
			sub := filepath.Join(destSubpath, SanitizeFolderName(entry.Title))
			if err := w.processIndex(ctx, target, sub); err != nil {
				return err
			}
			continue
		}

		if err := w.copyLeaf(target, dest); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("workspace plan read %s: %w", indexPath, err)
	}
	return nil
}

// resolveTarget resolves an entry target against the workspace root. Export
// tools escape punctuation in paths, so a missing file is retried with the
// backslashes stripped before failing.
func (w *planWalk) resolveTarget(indexPath, target string) (string, error) {
	resolved := filepath.Join(w.workspaceDir, target)
	if fileExists(resolved) {
		return resolved, nil
	}

	unescaped := filepath.Join(w.workspaceDir, strings.ReplaceAll(target, `\`, ""))
	if fileExists(unescaped) {
		w.logger.Debug("workspace.plan.unescaped", "target", target)
		return unescaped, nil
	}

	return "", &TargetError{Index: indexPath, Target: target}
}

func (w *planWalk) copyLeaf(sourcePath, destDir string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("workspace plan read %s: %w", sourcePath, err)
	}

	dest := filepath.Join(destDir, filepath.Base(sourcePath))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("workspace plan write %s: %w", dest, err)
	}

	w.logger.Debug("workspace.plan.leaf", "source", sourcePath, "plan_path", dest)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
