// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the ChatPaat backend REST API.
package api

import "errors"

// =============================================================================
// ERROR TYPES
// =============================================================================

// Error represents a failure talking to the backend.
type Error struct {
	Type    ErrorType
	Status  int // HTTP status, 0 when the request never completed
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	// ErrTypeAuth covers bad credentials and expired sessions. Surfaced
	// inline on forms, or as a forced sign-out elsewhere.
	ErrTypeAuth
	// ErrTypeNetwork covers transport failures and non-2xx responses that
	// are not auth failures.
	ErrTypeNetwork
	// ErrTypeValidation is client-side input rejection; no request is made.
	ErrTypeValidation
	// ErrTypeInvalidResponse means the backend answered 2xx with a body we
	// could not decode.
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnauthorized = &Error{Type: ErrTypeAuth, Status: 401, Message: "session expired or invalid credentials"}
	ErrUnreachable  = &Error{Type: ErrTypeNetwork, Message: "backend is unreachable"}
	ErrTimeout      = &Error{Type: ErrTypeNetwork, Message: "request timed out"}
)

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeAuth
}

// IsNetwork reports whether err is a transport or server failure.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeNetwork
}

// IsValidation reports whether err is client-side input rejection.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Type == ErrTypeValidation
}
