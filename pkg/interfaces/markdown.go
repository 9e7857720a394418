package interfaces

import (
	"context"
	"time"
)

// MarkdownRenderer defines how raw Markdown bytes are converted into HTML.
// Implementations are expected to be safe for reuse across documents.
type MarkdownRenderer interface {
	Render(ctx context.Context, markdown []byte) ([]byte, error)
}

// Transformer converts one Markdown document body into wiki storage format.
// It is the full content pipeline: rendering plus every storage-format
// rewrite the target wiki requires.
type Transformer interface {
	Transform(ctx context.Context, markdown []byte) ([]byte, error)
}

// Document represents a Markdown file loaded from a workspace or plan tree.
// The struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
}

// FrontMatter models the metadata block some exports prepend to documents.
// Only Title is interpreted; everything else is preserved in Raw so callers
// can log or audit what was stripped from the rendered body.
type FrontMatter struct {
	Title string         `yaml:"title" json:"title"`
	Tags  []string       `yaml:"tags" json:"tags"`
	Raw   map[string]any `yaml:",inline" json:"raw"`
}
