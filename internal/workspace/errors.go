package workspace

import (
	"errors"
	"fmt"
)

var (
	ErrRootIndexMissing = errors.New("workspace: root index file not found")
	ErrPlanExists       = errors.New("workspace: plan folder already exists")
	ErrTargetMissing    = errors.New("workspace: entry target not found")
	ErrIndexCycle       = errors.New("workspace: index cycle detected")
)

// TargetError reports an index entry whose target does not exist, even after
// the backslash-unescape fallback.
type TargetError struct {
	Index  string
	Target string
}

func (e *TargetError) Error() string {
	if e == nil {
		return ErrTargetMissing.Error()
	}
	return fmt.Sprintf("%s: %s referenced by %s", ErrTargetMissing.Error(), e.Target, e.Index)
}

func (e *TargetError) Unwrap() error {
	return ErrTargetMissing
}

// CycleError reports an index file reached twice during planning.
type CycleError struct {
	Index string
}

func (e *CycleError) Error() string {
	if e == nil {
		return ErrIndexCycle.Error()
	}
	return fmt.Sprintf("%s: %s", ErrIndexCycle.Error(), e.Index)
}

func (e *CycleError) Unwrap() error {
	return ErrIndexCycle
}
