// Package apperr defines the application error types classified by the
// error-translation middleware.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Stable error codes emitted in the envelope.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeTypeMismatch  = "TYPE_MISMATCH"
	CodeRouteNotFound = "RESOURCE_NOT_FOUND"
	CodeBusiness      = "BUSINESS_ERROR"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

// BusinessError is a caller-raised rule violation carrying its own
// machine code and HTTP status.
type BusinessError struct {
	Message string
	Code    string
	Status  int
	Cause   error
}

func (e *BusinessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error { return e.Cause }

// Builder assembles a BusinessError. Build rejects an empty message; code
// and status fall back to BUSINESS_ERROR / 400 when unset.
type Builder struct {
	message string
	code    string
	status  int
	cause   error
}

// NewBusinessError starts a builder.
func NewBusinessError() *Builder {
	return &Builder{}
}

func (b *Builder) Message(message string) *Builder {
	b.message = message
	return b
}

func (b *Builder) Code(code string) *Builder {
	b.code = code
	return b
}

func (b *Builder) Status(status int) *Builder {
	b.status = status
	return b
}

func (b *Builder) Cause(cause error) *Builder {
	b.cause = cause
	return b
}

// Build validates the staged fields and constructs the error.
func (b *Builder) Build() (*BusinessError, error) {
	if strings.TrimSpace(b.message) == "" {
		return nil, errors.New("business error message is required")
	}
	code := b.code
	if code == "" {
		code = CodeBusiness
	}
	status := b.status
	if status == 0 {
		status = http.StatusBadRequest
	}
	return &BusinessError{
		Message: b.message,
		Code:    code,
		Status:  status,
		Cause:   b.cause,
	}, nil
}

// TypeMismatchError reports a request parameter that could not be coerced
// to its expected type.
type TypeMismatchError struct {
	Value    string
	Param    string
	Expected string
	Cause    error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Invalid value '%s' for parameter '%s'. Expected type: %s",
		e.Value, e.Param, e.Expected)
}

func (e *TypeMismatchError) Unwrap() error { return e.Cause }

// ParseIntParam coerces a path or query parameter to int64, reporting a
// TypeMismatchError on failure.
func ParseIntParam(name, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &TypeMismatchError{Value: value, Param: name, Expected: "int", Cause: err}
	}
	return n, nil
}

// ParseBoolParam coerces a path or query parameter to bool, reporting a
// TypeMismatchError on failure.
func ParseBoolParam(name, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &TypeMismatchError{Value: value, Param: name, Expected: "bool", Cause: err}
	}
	return b, nil
}

// RouteNotFoundError reports a request for which no handler is registered.
type RouteNotFoundError struct {
	Method string
	URL    string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("No handler found for %s %s", e.Method, e.URL)
}
