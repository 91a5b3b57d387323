// Package response defines the uniform JSON envelope returned by every
// Gitly API endpoint, success or failure.
package response

import "time"

// Status classifies the outcome carried by an envelope.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
	StatusFailure Status = "FAILURE"
)

// DefaultSuccessMessage is used when a success envelope is built from data alone.
const DefaultSuccessMessage = "Request processed successfully"

// Response is the API envelope. Optional fields are dropped from the wire
// when unset; Error is populated only for non-SUCCESS statuses. Data is a
// pointer so an explicitly-set zero payload (0, false, empty struct) still
// serializes; only an absent payload is omitted.
type Response[T any] struct {
	Status    Status       `json:"status"`
	Message   string       `json:"message,omitempty"`
	Data      *T           `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp,omitzero"`
	Path      string       `json:"path,omitempty"`
}

// ErrorDetail carries machine-readable error information inside an envelope.
type ErrorDetail struct {
	Code             string           `json:"code"`
	Details          string           `json:"details,omitempty"`
	ValidationErrors []FieldViolation `json:"validationErrors,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
	StackTrace       string           `json:"stackTrace,omitempty"`
}

// FieldViolation describes a single rejected field from request validation.
type FieldViolation struct {
	Field         string `json:"field"`
	RejectedValue any    `json:"rejectedValue,omitempty"`
	Message       string `json:"message"`
}

// Success builds a SUCCESS envelope around data with the default message.
func Success[T any](data T) *Response[T] {
	return &Response[T]{
		Status:    StatusSuccess,
		Message:   DefaultSuccessMessage,
		Data:      &data,
		Timestamp: time.Now(),
	}
}

// SuccessWith builds a SUCCESS envelope with an explicit message and data.
func SuccessWith[T any](message string, data T) *Response[T] {
	return &Response[T]{
		Status:    StatusSuccess,
		Message:   message,
		Data:      &data,
		Timestamp: time.Now(),
	}
}

// SuccessMessage builds a data-less SUCCESS envelope.
func SuccessMessage(message string) *Response[any] {
	return &Response[any]{
		Status:    StatusSuccess,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Error builds a data-less ERROR envelope.
func Error(message string) *Response[any] {
	return &Response[any]{
		Status:    StatusError,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// ErrorWith builds an ERROR envelope carrying structured error detail.
func ErrorWith(message string, detail *ErrorDetail) *Response[any] {
	return &Response[any]{
		Status:    StatusError,
		Message:   message,
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// Failure builds a FAILURE envelope. FAILURE marks an expected negative
// business outcome, as opposed to ERROR which marks a translated fault.
func Failure(message string) *Response[any] {
	return &Response[any]{
		Status:    StatusFailure,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// FailureWith builds a FAILURE envelope that still carries data.
func FailureWith[T any](message string, data T) *Response[T] {
	return &Response[T]{
		Status:    StatusFailure,
		Message:   message,
		Data:      &data,
		Timestamp: time.Now(),
	}
}

// WithPath records the originating request path on the envelope. It mutates
// the receiver and returns it; intended as a finalizing step before
// serialization, last call wins.
func (r *Response[T]) WithPath(path string) *Response[T] {
	r.Path = path
	return r
}

// WithError attaches error detail to the envelope, returning the receiver.
func (r *Response[T]) WithError(detail *ErrorDetail) *Response[T] {
	r.Error = detail
	return r
}
