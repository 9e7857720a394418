package markup

import (
	"context"
	"fmt"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

// TransformerConfig wires the renderer and pipeline used for document bodies.
type TransformerConfig struct {
	Renderer interfaces.MarkdownRenderer
	Pipeline *Pipeline
	Logger   interfaces.Logger
}

// Transformer converts one Markdown document body into Confluence storage
// format: render to HTML, then apply the storage-format passes.
type Transformer struct {
	renderer interfaces.MarkdownRenderer
	pipeline *Pipeline
	logger   interfaces.Logger
}

var _ interfaces.Transformer = (*Transformer)(nil)

// NewTransformer validates the configuration and builds a Transformer. The
// pipeline defaults to the full storage-format conversion.
func NewTransformer(cfg TransformerConfig) (*Transformer, error) {
	if cfg.Renderer == nil {
		return nil, ErrRendererRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	pipeline := cfg.Pipeline
	if pipeline == nil {
		pipeline = NewPipeline(logger)
	}

	return &Transformer{
		renderer: cfg.Renderer,
		pipeline: pipeline,
		logger:   logger,
	}, nil
}

// Transform satisfies interfaces.Transformer.
func (t *Transformer) Transform(ctx context.Context, markdown []byte) ([]byte, error) {
	html, err := t.renderer.Render(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("markup transform render: %w", err)
	}

	out, err := t.pipeline.Apply(string(html))
	if err != nil {
		return nil, fmt.Errorf("markup transform: %w", err)
	}

	t.logger.Debug("markup.transform.completed",
		"input_bytes", len(markdown),
		"output_bytes", len(out),
	)
	return []byte(out), nil
}
