// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
//
// The upstream registry failures form one family: every leaf below also
// unwraps to ErrUpstream, so callers can match the family ("something went
// wrong talking to the registry") or the specific kind. ErrValidation is
// deliberately outside that family - it marks a caller precondition
// violation detected before any network I/O happens.
var (
	// ErrUpstream is the catch-all for registry API failures that are not
	// otherwise classified: server errors, network failures, unexpected
	// client errors. Callers may retry.
	ErrUpstream = errors.New("registry unavailable")

	// ErrCompanyNotFound indicates the company number does not exist in
	// the registry. Permanent; retrying will not help.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrRateLimited indicates the registry is throttling this client.
	// Retryable, ideally after the hinted delay.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrAuthentication indicates the registry rejected the credentials.
	// Not retryable without fixing the API key configuration.
	ErrAuthentication = errors.New("authentication failed")

	// ErrInvalidResponse indicates the HTTP call succeeded but the payload
	// could not be interpreted as a company profile with an address.
	// Not retryable; usually signals an upstream contract change.
	ErrInvalidResponse = errors.New("invalid registry response")

	// ErrValidation indicates the caller supplied malformed input.
	ErrValidation = errors.New("validation failed")
)

// UpstreamError provides context for unclassified registry failures.
type UpstreamError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
// The wrapped cause remains reachable through errors.As on the struct.
func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// NewUpstreamError creates an upstream error. cause may be nil.
func NewUpstreamError(message string, cause error) error {
	return &UpstreamError{Message: message, Cause: cause}
}

// CompanyNotFoundError provides context for not found errors.
type CompanyNotFoundError struct {
	CompanyNumber string
}

// Error implements the error interface.
func (e *CompanyNotFoundError) Error() string {
	return fmt.Sprintf("company %q not found", e.CompanyNumber)
}

// Unwrap supports matching both the leaf and the upstream family.
func (e *CompanyNotFoundError) Unwrap() []error {
	return []error{ErrCompanyNotFound, ErrUpstream}
}

// NewCompanyNotFoundError creates a not found error for a company number.
func NewCompanyNotFoundError(companyNumber string) error {
	return &CompanyNotFoundError{CompanyNumber: companyNumber}
}

// RateLimitError provides context for throttling errors.
type RateLimitError struct {
	// RetryAfter is the registry's suggested wait in seconds.
	// Nil when the Retry-After header was absent or not parseable.
	RetryAfter *int64
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("rate limit exceeded, retry after %d seconds", *e.RetryAfter)
	}

	return "rate limit exceeded"
}

// Unwrap supports matching both the leaf and the upstream family.
func (e *RateLimitError) Unwrap() []error {
	return []error{ErrRateLimited, ErrUpstream}
}

// NewRateLimitError creates a rate limit error. retryAfter may be nil.
func NewRateLimitError(retryAfter *int64) error {
	return &RateLimitError{RetryAfter: retryAfter}
}

// AuthenticationError provides context for credential failures.
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Message
}

// Unwrap supports matching both the leaf and the upstream family.
func (e *AuthenticationError) Unwrap() []error {
	return []error{ErrAuthentication, ErrUpstream}
}

// NewAuthenticationError creates an authentication error.
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// InvalidResponseError provides context for payload interpretation failures.
type InvalidResponseError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *InvalidResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap supports matching both the leaf and the upstream family.
func (e *InvalidResponseError) Unwrap() []error {
	return []error{ErrInvalidResponse, ErrUpstream}
}

// NewInvalidResponseError creates an invalid response error. cause may be nil.
func NewInvalidResponseError(message string, cause error) error {
	return &InvalidResponseError{Message: message, Cause: cause}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsUpstream checks if an error belongs to the upstream failure family.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsCompanyNotFound checks if an error is a company not found error.
func IsCompanyNotFound(err error) bool {
	return errors.Is(err, ErrCompanyNotFound)
}

// IsRateLimited checks if an error is a rate limit error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsAuthentication checks if an error is an authentication error.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsInvalidResponse checks if an error is an invalid response error.
func IsInvalidResponse(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// Retryable reports whether the caller could reasonably retry the
// operation that produced err. Rate limiting and unclassified upstream
// failures are retryable; not-found, authentication, invalid-response and
// validation failures are not.
func Retryable(err error) bool {
	switch {
	case IsCompanyNotFound(err), IsAuthentication(err), IsInvalidResponse(err), IsValidation(err):
		return false
	case IsRateLimited(err), IsUpstream(err):
		return true
	default:
		return false
	}
}
