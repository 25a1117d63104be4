package core

import (
	"fmt"
	"strings"
)

// ValidationError reports a malformed or missing caller input. It is raised
// before any request is built, so the transport is never touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AuthError means the session is no longer authenticated: the platform served
// a login page, or the response carried a logged-out error code.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("not logged in: %s", e.Reason)
}

// RemoteError carries a structured error returned by the platform. The
// summary and description are passed through from the server verbatim.
type RemoteError struct {
	Code        int
	Summary     string
	Description string
}

func (e *RemoteError) Error() string {
	parts := []string{}
	if e.Summary != "" {
		parts = append(parts, e.Summary)
	}
	if e.Description != "" {
		parts = append(parts, e.Description)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("server error %d", e.Code)
	}
	return strings.Join(parts, ": ")
}

// TransportError wraps a network-level failure from the HTTP client. The
// underlying error is preserved for errors.Is/errors.As.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
