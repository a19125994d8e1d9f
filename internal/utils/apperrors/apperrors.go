// Package apperrors carries typed, layered errors from repositories and
// services up to the HTTP layer, where they are mapped onto status codes.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Layer identifies where an error was raised or wrapped.
type Layer string

const (
	LayerHandler        Layer = "handler"
	LayerDomain         Layer = "domain"
	LayerRepository     Layer = "repository"
	LayerInfrastructure Layer = "infrastructure"
)

// ErrorType drives the HTTP status mapping.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUpstream     ErrorType = "upstream"
	ErrorTypeInternal     ErrorType = "internal"
)

// Error is the concrete error carried between layers. Code is a stable
// literal identifying the raise site in logs.
type Error struct {
	Layer   Layer
	Type    ErrorType
	Message string
	Code    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Layer, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Layer, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed error at the given layer.
func NewError(_ context.Context, layer Layer, errorType ErrorType, message string, err error, code string) *Error {
	return &Error{
		Layer:   layer,
		Type:    errorType,
		Message: message,
		Code:    code,
		Err:     err,
	}
}

// AsError wraps err, preserving the error type of an already-typed error
// so that a repository not_found stays a not_found at the handler.
func AsError(ctx context.Context, layer Layer, err error, message string) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return &Error{
			Layer:   layer,
			Type:    typed.Type,
			Message: message,
			Code:    typed.Code,
			Err:     err,
		}
	}
	return NewError(ctx, layer, ErrorTypeInternal, message, err, "")
}

// TypeOf extracts the error type, defaulting to internal.
func TypeOf(err error) ErrorType {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Type
	}
	return ErrorTypeInternal
}

// CodeOf extracts the error code literal, if any.
func CodeOf(err error) string {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Code
	}
	return ""
}

// HTTPStatus maps an error type onto a status code.
func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err carries the not_found type.
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrorTypeNotFound
}
