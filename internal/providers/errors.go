package providers

import "errors"

// Failure taxonomy for remote calls. Authentication and quota failures
// are fatal with no retry; rate-limit failures are retryable by the
// caller; anything else is wrapped and fatal.

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "invalid API key: " + e.message
}

type quotaError struct {
	message string
}

func (e *quotaError) Error() string {
	return "insufficient credits: " + e.message
}

type rateLimitError struct {
	message string
}

func (e *rateLimitError) Error() string {
	if e.message == "" {
		return "rate limited"
	}
	return "rate limited: " + e.message
}

// NewAuthError returns an authentication failure.
func NewAuthError(message string) error {
	return &authError{message: message}
}

// NewQuotaError returns a billing/credit failure.
func NewQuotaError(message string) error {
	return &quotaError{message: message}
}

// NewRateLimitError returns a rate-limit rejection.
func NewRateLimitError(message string) error {
	return &rateLimitError{message: message}
}

// IsAuthError checks if an error is an authentication failure.
func IsAuthError(err error) bool {
	var e *authError
	return errors.As(err, &e)
}

// IsQuotaError checks if an error is a billing/credit failure.
func IsQuotaError(err error) bool {
	var e *quotaError
	return errors.As(err, &e)
}

// IsRateLimitError checks if an error is a rate-limit rejection.
func IsRateLimitError(err error) bool {
	var e *rateLimitError
	return errors.As(err, &e)
}
