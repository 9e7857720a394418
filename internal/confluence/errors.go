package confluence

import (
	"errors"
	"fmt"
)

var (
	ErrBaseURLRequired  = errors.New("confluence: base URL is required")
	ErrSpaceKeyRequired = errors.New("confluence: space key is required")
	ErrSpaceHomeMissing = errors.New("confluence: space homepage not resolvable")
	ErrUnexpectedStatus = errors.New("confluence: unexpected response status")
)

// APIError reports a non-OK response. The response body is preserved so
// operators can see the remote failure verbatim.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return ErrUnexpectedStatus.Error()
	}
	return fmt.Sprintf("%s: %s %s returned %d", ErrUnexpectedStatus.Error(), e.Method, e.URL, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}
