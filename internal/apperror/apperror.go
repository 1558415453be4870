// Package apperror defines the application's error taxonomy. Each expected
// failure condition gets its own variant so the error-translating middleware
// can match exhaustively instead of probing ad-hoc fields.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidObject = errors.New("invalid object")
	ErrInvalidQuery  = errors.New("invalid query")
	ErrBadRequest    = errors.New("bad request")
)

// AppError carries the HTTP status and client-facing message for an expected
// failure. Unexpected failures never become AppErrors; they propagate raw and
// are classified centrally by the middleware.
type AppError struct {
	Err    error  // taxonomy sentinel
	Status int    // HTTP status to emit
	Msg    string // human-readable message, sent verbatim
}

func (e *AppError) Error() string {
	return e.Msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports an absent resource with a resource-specific message,
// e.g. "Article does not exist".
func NotFound(msg string) *AppError {
	return &AppError{Err: ErrNotFound, Status: http.StatusNotFound, Msg: msg}
}

// InvalidObject reports a malformed, missing, or mistyped request body.
func InvalidObject() *AppError {
	return &AppError{Err: ErrInvalidObject, Status: http.StatusBadRequest, Msg: "Invalid Object"}
}

// InvalidQuery reports a disallowed filter, sort, or pagination parameter.
func InvalidQuery(msg string) *AppError {
	return &AppError{Err: ErrInvalidQuery, Status: http.StatusBadRequest, Msg: msg}
}

// BadRequest reports a malformed path parameter, e.g. a non-numeric id.
func BadRequest() *AppError {
	return &AppError{Err: ErrBadRequest, Status: http.StatusBadRequest, Msg: "Bad Request"}
}
