// Package errors holds the sentinel errors shared across icmt packages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Configuration errors
	ErrEmptyURL           = errors.New("API URL cannot be empty")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrPromptDisabled     = errors.New("input required but prompting is disabled")

	// Registration page errors
	ErrNoEventSelected    = errors.New("no event selected")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrPageClosed         = errors.New("registration already completed")
	ErrValidationFailed   = errors.New("validation failed")

	// API errors
	ErrInvalidEventID = errors.New("invalid event id")
	ErrNotInitialized = errors.New("API client is not initialized")
)

// Wrap wraps an error with additional context
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is checks if the error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As checks if the error can be unwrapped to the target type
func As(err error, target any) bool {
	return errors.As(err, target)
}
