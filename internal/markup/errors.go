package markup

import (
	"errors"
	"fmt"
)

var (
	ErrRendererRequired = errors.New("markup: renderer is required")
	ErrFootnoteHref     = errors.New("markup: footnote definition missing href")
)

// FootnoteError reports a footnote definition line with no extractable link
// target. The definition is preserved so operators can find the offending
// line in the source document.
type FootnoteError struct {
	Definition string
}

func (e *FootnoteError) Error() string {
	if e == nil || e.Definition == "" {
		return ErrFootnoteHref.Error()
	}
	return fmt.Sprintf("%s: %q", ErrFootnoteHref.Error(), e.Definition)
}

func (e *FootnoteError) Unwrap() error {
	return ErrFootnoteHref
}
