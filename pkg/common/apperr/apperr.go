package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error carrying an application code and an HTTP status.
type AppError struct {
	Code       int
	Message    string
	HTTPStatus int
	Cause      error
}

// New creates an AppError.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	return &AppError{Code: code, Message: msg, HTTPStatus: httpStatus, Cause: cause}
}

// Wrap wraps err into an AppError. It returns nil for a nil err.
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, httpStatus, err)
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }

// As returns the AppError carried by err, if any.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	if ae, ok := As(err); ok && ae.HTTPStatus != 0 {
		return ae.HTTPStatus
	}
	return http.StatusInternalServerError
}
