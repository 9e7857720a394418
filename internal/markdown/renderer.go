package markdown

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

// GoldmarkRenderer implements interfaces.MarkdownRenderer using the goldmark
// engine. The renderer is intentionally stateless so callers can reuse a
// single instance across documents without additional locking.
type GoldmarkRenderer struct{}

// NewGoldmarkRenderer constructs a renderer with the fixed feature set the
// storage-format pipeline depends on: pipe tables, fenced code blocks, and
// raw HTML passthrough. Raw HTML must survive rendering because later
// pipeline stages rewrite HTML comments (doctoc blocks, placeholders).
func NewGoldmarkRenderer() *GoldmarkRenderer {
	return &GoldmarkRenderer{}
}

var _ interfaces.MarkdownRenderer = (*GoldmarkRenderer)(nil)

// Render satisfies interfaces.MarkdownRenderer by converting Markdown bytes
// into HTML.
func (r *GoldmarkRenderer) Render(ctx context.Context, markdown []byte) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("markdown render: %w", err)
		}
	}

	engine := newGoldmarkEngine()
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// newGoldmarkEngine builds a goldmark.Markdown per invocation. Fenced code
// blocks emit `language-` prefixed classes that the code-macro stage reads.
func newGoldmarkEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}
