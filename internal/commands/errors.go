package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so callers and log pipelines can key
// off stable identifiers rather than message strings.
const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"
)

// wrapIfBare tags err with a category and text code unless it already carries
// go-errors metadata from a lower layer.
func wrapIfBare(err error, category goerrors.Category, code, msg string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return wrapIfBare(err, goerrors.CategoryValidation, commandValidationCode, "command validation failed")
}

func wrapContextError(err error) error {
	switch err {
	case context.Canceled:
		return wrapIfBare(err, goerrors.CategoryCommand, commandContextCanceled, "command execution cancelled")
	case context.DeadlineExceeded:
		return wrapIfBare(err, goerrors.CategoryCommand, commandContextTimeout, "command execution deadline exceeded")
	default:
		return wrapIfBare(err, goerrors.CategoryCommand, commandContextErrorCode, "command context error")
	}
}

func wrapExecuteError(err error) error {
	return wrapIfBare(err, goerrors.CategoryCommand, commandExecuteFailed, "command execution failed")
}
