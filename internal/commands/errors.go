package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by wrapped command errors so host applications can map
// localize command failures without string-matching messages.
const (
	commandValidationCode   = "LOCALIZE_COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "LOCALIZE_COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "LOCALIZE_COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "LOCALIZE_COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "LOCALIZE_COMMAND_EXECUTION_FAILED"
)

// wrap* helpers categorise failures exactly once. Errors already wrapped by
// go-errors pass through so handler-level causes keep their original category.

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(commandExecuteFailed)
}
