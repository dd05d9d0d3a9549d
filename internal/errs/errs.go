/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package errs defines the error shape returned to API clients.
//
// Handlers return *HTTPError values; the global echo error handler renders
// them. Not-found responses carry a "message" field, every other failure an
// "error" field.
package errs

import (
	"net/http"

	"github.com/pkg/errors"
)

// Messages shared by handlers and the error handler.
const (
	MsgUserNotFound  = "User not found"
	MsgRouteNotFound = "Route not found"
)

// HTTPError is an error with an HTTP status, serialised directly to JSON.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"error,omitempty"`

	// Internal is the cause, logged but never serialised.
	Internal error `json:"-"`
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Detail
}

func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// NewNotFoundError returns a 404 with a "message" body.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

// NewMethodNotAllowedError returns a 405 with a "message" body.
func NewMethodNotAllowedError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusMethodNotAllowed,
		Message: message,
	}
}

// NewBadRequestError returns a 400 with an "error" body.
func NewBadRequestError(detail string) *HTTPError {
	return &HTTPError{
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

// NewUnsupportedMediaTypeError returns a 415 with an "error" body.
func NewUnsupportedMediaTypeError(detail string) *HTTPError {
	return &HTTPError{
		Status: http.StatusUnsupportedMediaType,
		Detail: detail,
	}
}

// NewServiceUnavailableError returns a 503 with an "error" body.
func NewServiceUnavailableError(detail string, cause error) *HTTPError {
	return &HTTPError{
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Internal: cause,
	}
}

// NewInternalServerError returns a 500 whose body carries err's text.
// err is annotated with a stack trace for logging.
func NewInternalServerError(err error) *HTTPError {
	detail := http.StatusText(http.StatusInternalServerError)
	if err != nil {
		detail = err.Error()
	}
	return &HTTPError{
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Internal: errors.WithStack(err),
	}
}
