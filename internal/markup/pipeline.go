package markup

import (
	"fmt"

	"github.com/goliatone/go-confluence-import/internal/logging"
	"github.com/goliatone/go-confluence-import/pkg/interfaces"
)

// Pass is a single named rewrite over rendered HTML. Passes are pure string
// transforms; a pass that finds nothing to rewrite returns its input
// unchanged and never fails solely because its pattern is absent.
type Pass struct {
	Name  string
	Apply func(html string) (string, error)
}

// Pipeline applies passes in registration order. The zero-value pipeline is
// not usable; construct one through NewPipeline.
type Pipeline struct {
	passes []Pass
	logger interfaces.Logger
}

// NewPipeline builds a pipeline from the supplied passes, defaulting to the
// full storage-format conversion when none are given.
func NewPipeline(logger interfaces.Logger, passes ...Pass) *Pipeline {
	if logger == nil {
		logger = logging.NoOp()
	}
	if len(passes) == 0 {
		passes = DefaultPasses()
	}
	return &Pipeline{
		passes: append([]Pass(nil), passes...),
		logger: logger,
	}
}

// DefaultPasses returns the storage-format conversion in its required order:
// panel macros first (sigils and blockquotes), then the TOC macro while the
// doctoc comment markers are still intact, then comment placeholders, code
// macros, and finally footnote references.
func DefaultPasses() []Pass {
	return []Pass{
		Admonitions(),
		TableOfContents(),
		Comments(),
		CodeBlocks(),
		FootnoteRefs(),
	}
}

// Apply runs every pass over the input and returns the converted markup.
func (p *Pipeline) Apply(html string) (string, error) {
	out := html
	for _, pass := range p.passes {
		next, err := pass.Apply(out)
		if err != nil {
			return "", fmt.Errorf("markup pass %s: %w", pass.Name, err)
		}
		if next != out {
			p.logger.Trace("markup.pass.applied", "pass", pass.Name)
		}
		out = next
	}
	return out, nil
}
