package models

import (
	"errors"
	"fmt"
)

// Error kinds reported in the failure payload.
const (
	KindInvalidInput     = "InvalidInputError"
	KindMalformedRequest = "MalformedRequestError"
	KindAnalysisFailure  = "AnalysisError"
)

// AppError is a structured failure surfaced to the caller. It marshals
// directly as the {"error", "type"} failure payload.
type AppError struct {
	Message string `json:"error"`
	Kind    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// NewAppError creates a new application error.
func NewAppError(kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// InvalidInput creates an invalid-input error (empty batch, missing fields).
func InvalidInput(message string) *AppError {
	return NewAppError(KindInvalidInput, message)
}

// InvalidInputf creates an invalid-input error with formatting.
func InvalidInputf(format string, a ...interface{}) *AppError {
	return InvalidInput(fmt.Sprintf(format, a...))
}

// MalformedRequest creates a malformed-request error (non-JSON or
// schema-violating input).
func MalformedRequest(message string) *AppError {
	return NewAppError(KindMalformedRequest, message)
}

// MalformedRequestf creates a malformed-request error with formatting.
func MalformedRequestf(format string, a ...interface{}) *AppError {
	return MalformedRequest(fmt.Sprintf(format, a...))
}

// AnalysisFailure creates a generic analysis error.
func AnalysisFailure(message string) *AppError {
	return NewAppError(KindAnalysisFailure, message)
}

// AsAppError returns err as an *AppError, wrapping unknown errors under the
// generic analysis kind.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return AnalysisFailure(err.Error()).WithError(err)
}
