// Package errors provides centralized error definitions for the sheetbook
// codebase. It defines the three error classes the application distinguishes
// between — validation, network, and remote — plus classification helpers and
// a pluggable reporter hook.
//
// # Error Types
//
//   - ValidationError: input rejected before any network call was made
//   - NetworkError: the HTTP request itself failed (DNS, dial, timeout)
//   - RemoteError: the store answered with a non-success status
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError("phone", "must be exactly 10 digits")
//	err := errors.NewNetworkError("list contacts", cause)
//	err := errors.NewRemoteError("create contact", http.StatusBadGateway, body)
//
// Checking errors:
//
//	if errors.IsValidation(err) { ... }
//
//	var remoteErr *errors.RemoteError
//	if errors.As(err, &remoteErr) { ... }
//
// # Reporting
//
// Failures in the interactive UI are deliberately not surfaced to the user;
// they go to the diagnostic log only. SetReporter installs an optional hook
// that observes every reported failure without changing control flow, which
// is the supported way to add user-visible error surfaces on top.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors
var (
	// ErrInvalidPhone indicates that a phone number failed validation.
	ErrInvalidPhone = New("phone number must be exactly 10 digits")
	// ErrContactNotFound indicates that no contact matched the requested id.
	ErrContactNotFound = New("contact not found")
)

// -----------------------------------------------------------------------------
// ValidationError
// -----------------------------------------------------------------------------

// ValidationError indicates that user input was rejected before any network
// call was made. The triggering operation must not have contacted the store.
type ValidationError struct {
	// Field is the name of the offending input field.
	Field string
	// Reason is a human-readable description of the failure.
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Is reports whether target is a ValidationError, so that
// errors.Is(err, &ValidationError{}) works for class checks.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// -----------------------------------------------------------------------------
// NetworkError
// -----------------------------------------------------------------------------

// NetworkError indicates that the HTTP request itself failed before a
// response was received (connection refused, DNS failure, timeout).
type NetworkError struct {
	// Op is the operation that was being attempted, e.g. "list contacts".
	Op string
	// Cause is the underlying transport error.
	Cause error
}

// NewNetworkError wraps a transport-level failure.
func NewNetworkError(op string, cause error) *NetworkError {
	return &NetworkError{Op: op, Cause: cause}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------
// RemoteError
// -----------------------------------------------------------------------------

// RemoteError indicates that the store answered with a non-success status.
type RemoteError struct {
	// Op is the operation that was being attempted.
	Op string
	// StatusCode is the HTTP status returned by the store.
	StatusCode int
	// Body is the response body, truncated by the caller if large.
	Body string
}

// NewRemoteError creates a RemoteError for a non-2xx response.
func NewRemoteError(op string, statusCode int, body string) *RemoteError {
	return &RemoteError{Op: op, StatusCode: statusCode, Body: body}
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote error during %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("remote error during %s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return As(err, &v)
}

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool {
	var n *NetworkError
	return As(err, &n)
}

// IsRemote reports whether err is (or wraps) a RemoteError.
func IsRemote(err error) bool {
	var r *RemoteError
	return As(err, &r)
}

// -----------------------------------------------------------------------------
// Reporter Hook
// -----------------------------------------------------------------------------

// Reporter observes failures that the UI swallows. Implementations must not
// panic; the return value of Report is ignored.
type Reporter interface {
	// Report is called once per swallowed failure with the operation name
	// and the error.
	Report(op string, err error)
}

// reporter is the installed hook. nil means reporting is disabled.
var reporter Reporter

// SetReporter installs a hook that observes every swallowed failure.
// Passing nil disables reporting. Not safe for concurrent use with Report;
// install the reporter during startup.
func SetReporter(r Reporter) {
	reporter = r
}

// Report forwards a swallowed failure to the installed reporter, if any.
func Report(op string, err error) {
	if reporter != nil && err != nil {
		reporter.Report(op, err)
	}
}
