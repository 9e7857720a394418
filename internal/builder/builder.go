package builder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/internal/markdown"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

// Config wires the builder's collaborators. Client and Transformer are
// required; DryRun keeps the walk read-only against the remote space.
type Config struct {
	Client      interfaces.WikiClient
	Transformer interfaces.Transformer
	Logger      interfaces.Logger
	DryRun      bool
}

// Builder creates the remote page hierarchy described by a plan tree.
type Builder struct {
	client      interfaces.WikiClient
	transformer interfaces.Transformer
	logger      interfaces.Logger
	dryRun      bool
}

// New validates the configuration and builds a Builder.
func New(cfg Config) (*Builder, error) {
	if cfg.Client == nil {
		return nil, ErrClientRequired
	}
	if cfg.Transformer == nil {
		return nil, ErrTransformerRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Builder{
		client:      cfg.Client,
		transformer: cfg.Transformer,
		logger:      logger,
		dryRun:      cfg.DryRun,
	}, nil
}

// Build walks planDir and ensures one remote page per entry, parents before
// children. The returned report carries the page record map keyed by
// plan-relative path; the empty key holds the space homepage every top-level
// entry hangs from.
func (b *Builder) Build(ctx context.Context, planDir string) (*interfaces.ImportReport, error) {
	if info, err := os.Stat(planDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrPlanMissing, planDir)
	}

	homeID, err := b.client.SpaceHomeID(ctx)
	if err != nil {
		return nil, err
	}

	b.logger.Info("builder.build.started",
		"plan_dir", planDir,
		"home_id", homeID,
		"dry_run", b.dryRun,
	)

	run := &buildRun{
		builder: b,
		result:  &interfaces.ImportReport{PageIDs: map[string]string{"": homeID}},
	}

	err = filepath.WalkDir(planDir, func(entryPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("builder walk %s: %w", entryPath, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(planDir, entryPath)
		if err != nil {
			return fmt.Errorf("builder walk %s: %w", entryPath, err)
		}
		if rel == "." {
			return nil
		}
		return run.visit(ctx, entryPath, filepath.ToSlash(rel), d)
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("builder.build.completed",
		"containers", run.result.Containers,
		"pages", run.result.Pages,
		"reused", run.result.Reused,
		"skipped", run.result.Skipped,
	)
	return run.result, nil
}

// buildRun is the walk state of one Build call.
type buildRun struct {
	builder  *Builder
	result   *interfaces.ImportReport
	sequence int
}

func (r *buildRun) visit(ctx context.Context, entryPath, key string, d fs.DirEntry) error {
	parentID, ok := r.result.PageIDs[parentKey(key)]
	if !ok {
		return fmt.Errorf("builder: no page recorded for parent of %s", key)
	}

	if d.IsDir() {
		id, reused, err := r.ensurePage(ctx, d.Name(), "", parentID, key)
		if err != nil {
			return err
		}
		r.record(key, id, reused)
		r.result.Containers++
		return nil
	}

	doc, err := markdown.LoadDocument(ctx, entryPath)
	if err != nil {
		return err
	}
	body, err := r.builder.transformer.Transform(ctx, doc.Body)
	if err != nil {
		return fmt.Errorf("builder transform %s: %w", entryPath, err)
	}

	title := strings.TrimSuffix(d.Name(), ".md")
	id, reused, err := r.ensurePage(ctx, title, string(body), parentID, key)
	if err != nil {
		return err
	}
	r.record(key, id, reused)
	r.result.Pages++
	return nil
}

// ensurePage resolves the page for title under parentID: an existing page
// whose immediate parent matches is reused, otherwise one is created. In
// dry-run mode the creation is skipped and a synthetic ID recorded.
func (r *buildRun) ensurePage(ctx context.Context, title, body, parentID, planPath string) (string, bool, error) {
	logger := logging.WithPageContext(r.builder.logger, title, parentID, planPath)

	candidates, err := r.builder.client.FindPages(ctx, title)
	if err != nil {
		return "", false, err
	}
	for _, candidate := range candidates {
		ancestors, err := r.builder.client.Ancestors(ctx, candidate)
		if err != nil {
			return "", false, err
		}
		if len(ancestors) > 0 && ancestors[len(ancestors)-1] == parentID {
			logger.Info("builder.page.reused", "page_id", candidate)
			return candidate, true, nil
		}
	}

	if r.builder.dryRun {
		r.sequence++
		r.result.Skipped++
		id := fmt.Sprintf("dry-run-%d", r.sequence)
		logger.Info("builder.page.planned", "page_id", id)
		return id, false, nil
	}

	info, err := r.builder.client.CreatePage(ctx, interfaces.PageDraft{
		Title:    title,
		Body:     body,
		ParentID: parentID,
	})
	if err != nil {
		return "", false, err
	}
	return info.ID, false, nil
}

func (r *buildRun) record(key, id string, reused bool) {
	r.result.PageIDs[key] = id
	if reused {
		r.result.Reused++
	}
}

// parentKey maps a plan-relative path to its parent's record key; top-level
// entries resolve to the empty key, the space homepage.
func parentKey(key string) string {
	parent := path.Dir(key)
	if parent == "." {
		return ""
	}
	return parent
}
