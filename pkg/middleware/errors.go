package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/inguzdev/gitly/pkg/apperr"
	"github.com/inguzdev/gitly/pkg/response"
)

// ErrorTranslator is the single boundary turning errors that escape handler
// logic into (HTTP status, envelope) pairs. It is the last line of defense
// and never panics; the debug flag gates stack-trace exposure.
type ErrorTranslator struct {
	logger *zap.Logger
	debug  bool
}

func NewErrorTranslator(logger *zap.Logger, debug bool) *ErrorTranslator {
	return &ErrorTranslator{logger: logger, debug: debug}
}

// Middleware recovers panics and translates any error recorded on the
// context into an envelope response. Handlers report failures with
// c.Error(err) and return without writing.
func (t *ErrorTranslator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				t.write(c, fmt.Errorf("panic: %v", rec), debug.Stack())
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			t.write(c, c.Errors.Last().Err, nil)
		}
	}
}

// NotFound is the JSON no-route handler for API paths.
func (t *ErrorTranslator) NotFound(c *gin.Context) {
	t.write(c, &apperr.RouteNotFoundError{
		Method: c.Request.Method,
		URL:    c.Request.URL.Path,
	}, nil)
}

func (t *ErrorTranslator) write(c *gin.Context, err error, stack []byte) {
	status, env := t.Translate(c.Request.URL.Path, err, stack)
	if c.Writer.Written() {
		return
	}
	c.AbortWithStatusJSON(status, env)
}

// Translate classifies err into an HTTP status and response envelope.
// It is total: a fault inside classification degrades to a generic 500.
func (t *ErrorTranslator) Translate(path string, err error, stack []byte) (status int, env *response.Response[any]) {
	defer func() {
		if rec := recover(); rec != nil {
			t.logger.Error("error translation failed",
				zap.String("path", path),
				zap.Any("panic", rec),
			)
			status = http.StatusInternalServerError
			env = t.internalEnvelope(path, fmt.Errorf("panic: %v", rec), nil)
		}
	}()

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		t.logger.Warn("validation error",
			zap.String("path", path),
			zap.Error(err),
		)
		violations := make([]response.FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, response.FieldViolation{
				Field:         fe.Field(),
				RejectedValue: fe.Value(),
				Message:       fieldMessage(fe),
			})
		}
		detail := &response.ErrorDetail{
			Code:             apperr.CodeValidation,
			Details:          "Request validation failed",
			ValidationErrors: violations,
		}
		return http.StatusBadRequest, response.ErrorWith("Validation failed", detail).WithPath(path)
	}

	var mismatch *apperr.TypeMismatchError
	if errors.As(err, &mismatch) {
		t.logger.Warn("type mismatch error",
			zap.String("path", path),
			zap.Error(err),
		)
		detail := &response.ErrorDetail{
			Code:    apperr.CodeTypeMismatch,
			Details: mismatch.Error(),
		}
		return http.StatusBadRequest, response.ErrorWith("Invalid parameter type", detail).WithPath(path)
	}

	var notFound *apperr.RouteNotFoundError
	if errors.As(err, &notFound) {
		t.logger.Warn("resource not found",
			zap.String("path", path),
			zap.String("method", notFound.Method),
		)
		detail := &response.ErrorDetail{
			Code:    apperr.CodeRouteNotFound,
			Details: notFound.Error(),
		}
		return http.StatusNotFound, response.ErrorWith("Resource not found", detail).WithPath(path)
	}

	var business *apperr.BusinessError
	if errors.As(err, &business) {
		t.logger.Warn("business error",
			zap.String("path", path),
			zap.String("code", business.Code),
			zap.Error(err),
		)
		detail := &response.ErrorDetail{
			Code:    business.Code,
			Details: business.Message,
		}
		// Literal-constructed errors may bypass the builder defaults.
		status = business.Status
		if status == 0 {
			status = http.StatusBadRequest
		}
		return status, response.Failure(business.Message).WithError(detail).WithPath(path)
	}

	t.logger.Error("unexpected error",
		zap.String("path", path),
		zap.Error(err),
	)
	return http.StatusInternalServerError, t.internalEnvelope(path, err, stack)
}

func (t *ErrorTranslator) internalEnvelope(path string, err error, stack []byte) *response.Response[any] {
	detail := &response.ErrorDetail{
		Code:    apperr.CodeInternal,
		Details: "An unexpected error occurred. Please try again later.",
	}
	if t.debug {
		if stack == nil {
			stack = debug.Stack()
		}
		detail.StackTrace = fmt.Sprintf("%v\n%s", err, stack)
	}
	return response.ErrorWith("Internal server error", detail).WithPath(path)
}

// fieldMessage renders a short human message for a single field violation.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "url":
		return "invalid URL format"
	default:
		return fmt.Sprintf("%s failed validation on '%s'", fe.Field(), fe.Tag())
	}
}
