// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Document errors.
	ErrExtractionFailed = errors.New("could not extract text from document")
	ErrFileTooLarge     = errors.New("statement too large")
	ErrUnsupportedFile  = errors.New("unsupported file type")

	// Pipeline errors.
	ErrNoTransactionsFound = errors.New("no transactions found")
	ErrInvalidCategorySet  = errors.New("no categories selected")

	// Oracle errors. These are recovered inside the oracle client via
	// documented fallback defaults and never terminate a run.
	ErrOracleUnavailable = errors.New("reasoning oracle unavailable")
	ErrMalformedResponse = errors.New("malformed oracle response")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrOracleUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
