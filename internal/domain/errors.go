package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip planner.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTransientUpstream indicates the upstream reported an overload or rate limit.
	ErrTransientUpstream = errors.New("upstream temporarily unavailable")

	// ErrUpstream indicates a non-success, non-transient upstream response or a transport failure.
	ErrUpstream = errors.New("upstream request failed")

	// ErrAuth indicates the token exchange with the upstream failed.
	ErrAuth = errors.New("upstream authentication failed")

	// ErrProviderData indicates a response that parsed but was semantically unexpected.
	ErrProviderData = errors.New("unexpected provider data")

	// ErrItineraryFormat indicates AI text that did not yield parseable structure.
	ErrItineraryFormat = errors.New("itinerary response is not valid structured data")

	// ErrSuggestionFormat indicates AI hotel suggestions that did not yield parseable structure.
	ErrSuggestionFormat = errors.New("hotel suggestions are not valid structured data")

	// ErrExhaustedRetries indicates an operation failed on every allowed attempt.
	ErrExhaustedRetries = errors.New("retries exhausted")
)

// UpstreamError is a failed call to an external provider.
type UpstreamError struct {
	// Endpoint identifies the target that was called
	Endpoint string

	// StatusCode is the HTTP status, or 0 for transport-level failures
	StatusCode int

	// Transient is true when the upstream reported an overload or rate limit
	Transient bool

	// Detail is the (possibly truncated) response body or failure description
	Detail string

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("upstream %s", e.Endpoint)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransientUpstream for transient failures and ErrUpstream otherwise.
func (e *UpstreamError) Is(target error) bool {
	if e.Transient {
		return target == ErrTransientUpstream
	}
	return target == ErrUpstream
}

// NewUpstreamError creates a non-transient upstream error.
func NewUpstreamError(endpoint string, statusCode int, detail string, err error) *UpstreamError {
	return &UpstreamError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Detail:     detail,
		Err:        err,
	}
}

// NewTransientUpstreamError creates an upstream error that may succeed on retry.
func NewTransientUpstreamError(endpoint string, statusCode int, detail string) *UpstreamError {
	return &UpstreamError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Transient:  true,
		Detail:     detail,
	}
}

// AuthError is a failed token acquisition.
type AuthError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: token exchange failed: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is matches ErrAuth.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

// NewAuthError creates a new AuthError.
func NewAuthError(provider string, err error) *AuthError {
	return &AuthError{Provider: provider, Err: err}
}

// ProviderDataError is a provider response that parsed but was not usable.
type ProviderDataError struct {
	Provider string
	Detail   string
}

// Error implements the error interface.
func (e *ProviderDataError) Error() string {
	return fmt.Sprintf("%s: unexpected provider data: %s", e.Provider, e.Detail)
}

// Is matches ErrProviderData.
func (e *ProviderDataError) Is(target error) bool {
	return target == ErrProviderData
}

// NewProviderDataError creates a new ProviderDataError.
func NewProviderDataError(provider, detail string) *ProviderDataError {
	return &ProviderDataError{Provider: provider, Detail: detail}
}

// ExhaustedRetriesError is returned after every allowed attempt of an operation failed
// with a transient error.
type ExhaustedRetriesError struct {
	Operation string
	Attempts  int
	Last      error
}

// Error implements the error interface.
func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("%s: giving up after %d attempts: %v", e.Operation, e.Attempts, e.Last)
}

// Unwrap returns the error of the final attempt.
func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Last
}

// Is matches ErrExhaustedRetries.
func (e *ExhaustedRetriesError) Is(target error) bool {
	return target == ErrExhaustedRetries
}

// NewExhaustedRetriesError creates a new ExhaustedRetriesError.
func NewExhaustedRetriesError(operation string, attempts int, last error) *ExhaustedRetriesError {
	return &ExhaustedRetriesError{Operation: operation, Attempts: attempts, Last: last}
}

// ItineraryFormatError is AI text that could not be parsed into a day plan.
type ItineraryFormatError struct {
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *ItineraryFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrItineraryFormat, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrItineraryFormat, e.Detail)
}

// Unwrap returns the underlying parse error.
func (e *ItineraryFormatError) Unwrap() error {
	return e.Err
}

// Is matches ErrItineraryFormat.
func (e *ItineraryFormatError) Is(target error) bool {
	return target == ErrItineraryFormat
}

// NewItineraryFormatError creates a new ItineraryFormatError.
func NewItineraryFormatError(detail string, err error) *ItineraryFormatError {
	return &ItineraryFormatError{Detail: detail, Err: err}
}

// ValidationError represents a validation error for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsTransient checks if the error is a transient upstream failure worth retrying.
// An exhausted error is terminal even though it wraps a transient one.
func IsTransient(err error) bool {
	if errors.Is(err, ErrExhaustedRetries) {
		return false
	}
	return errors.Is(err, ErrTransientUpstream)
}

// IsExhaustedRetries checks if the error is a terminal retry exhaustion.
func IsExhaustedRetries(err error) bool {
	return errors.Is(err, ErrExhaustedRetries)
}
