// Package apperrors defines the client error taxonomy. Every failure a user
// can see is one of these three kinds; the caller decides how to surface it
// and never retries automatically.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or invalid user selection. No request is
// sent and no state changes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for a form field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError reports a transport or request failure. State is unchanged
// and recovery is a manual retry by the user.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// NewNetwork wraps a transport failure with the operation it interrupted.
func NewNetwork(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// ServerRejection reports a well-formed response carrying a failure flag.
// Reason holds the server-supplied message when one was present.
type ServerRejection struct {
	Op     string
	Reason string
}

func (e *ServerRejection) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s rejected by server", e.Op)
	}
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Reason)
}

// NewRejection creates a ServerRejection for an operation.
func NewRejection(op, reason string) *ServerRejection {
	return &ServerRejection{Op: op, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsRejection reports whether err is a ServerRejection.
func IsRejection(err error) bool {
	var sr *ServerRejection
	return errors.As(err, &sr)
}
