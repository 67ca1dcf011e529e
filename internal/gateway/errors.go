// Package gateway is the single point of contact with the remote shop API.
//
// This file defines the uniform error shape every remote failure is mapped
// into. Callers never see raw transport errors or HTTP statuses; they see a
// *Error whose Kind they can branch on:
//
//   - KindUnauthorized: missing or rejected credential. Surfaced as a prompt
//     to log in, never retried silently.
//   - KindNotFound: the server reported absence of the requested resource.
//   - KindTransport: network failure, non-2xx status, or malformed payload.
//     The message is surfaced verbatim to the user; no automatic retry.
//   - KindValidation: a client-side precondition failed before any request
//     was sent (e.g. calling a protected operation while logged out).
package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure.
type Kind string

// Failure classes. See the package comment for semantics.
const (
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindTransport    Kind = "transport"
	KindValidation   Kind = "validation"
)

// Error is the uniform failure value returned by all gateway operations.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Status is the server-reported HTTP status, or 0 when the failure
	// happened before a response was received.
	Status int
	// Message is human-readable and safe to show to the user.
	Message string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, when one exists.
func (e *Error) Unwrap() error { return e.cause }

// Transportf builds a KindTransport error with no underlying status.
func Transportf(format string, args ...any) *Error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a KindValidation error. It is exported so services can
// report precondition failures in the same taxonomy as remote failures.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// kindOf extracts the Kind of err, or "" when err is not a gateway error.
func kindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}

// IsUnauthorized reports whether err is a gateway error of KindUnauthorized.
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }

// IsNotFound reports whether err is a gateway error of KindNotFound.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

// IsTransport reports whether err is a gateway error of KindTransport.
func IsTransport(err error) bool { return kindOf(err) == KindTransport }

// IsValidation reports whether err is a gateway error of KindValidation.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// UserMessage returns the user-facing message for err. Gateway errors yield
// their Message; anything else falls back to err.Error().
func UserMessage(err error) string {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
