// Package domainerrors defines the transport-agnostic error vocabulary used
// across services and handlers. Services return these; the HTTP layer maps
// them onto status codes without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for transport mapping and logging.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeValidation   Code = "validation_error"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal_error"
)

// Error carries a code plus a human-readable description. The description is
// safe to return to callers for client-fault codes; internal errors keep it
// server-side.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New builds a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds a domain error that keeps the underlying cause for logs and
// errors.Is/As chains.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the Code from an error chain, defaulting to CodeInternal
// for anything that is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
