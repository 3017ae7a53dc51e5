package dto

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/addresskit/companieshouse/internal/domain"
	"github.com/addresskit/companieshouse/internal/platform/logging"
)

// GetTraceID extracts the current OpenTelemetry trace ID from the request
// context. Returns empty string if no span is recording.
func GetTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

// FromDomainError maps a domain error to an HTTP status code and error
// response envelope. Unknown errors map to 500 with a generic message so
// internals never leak to callers.
func FromDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsCompanyNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsRateLimited(err):
		return http.StatusTooManyRequests, NewErrorResponse(ErrorCodeRateLimited, err.Error())

	case domain.IsAuthentication(err), domain.IsInvalidResponse(err), domain.IsUpstream(err):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeUpstream, err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// HandleError writes the mapped error response for a domain error.
// Rate limit errors that carry a retry hint echo it in the Retry-After
// header so callers can throttle themselves. Errors that map to 500 are
// logged with full details, since the response body hides them.
func HandleError(c *gin.Context, err error) {
	status, resp := FromDomainError(err)
	if resp == nil {
		return
	}

	if traceID := GetTraceID(c); traceID != "" {
		resp.TraceID = traceID
	}

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			slog.String("error", err.Error()),
			slog.String("trace_id", resp.TraceID),
		)
	}

	var rateLimitErr *domain.RateLimitError
	if errors.As(err, &rateLimitErr) && rateLimitErr.RetryAfter != nil {
		c.Header("Retry-After", strconv.FormatInt(*rateLimitErr.RetryAfter, 10))
	}

	c.JSON(status, resp)
}

// RespondWithValidationErrors writes a 400 response carrying field-level
// messages in the Details map.
func RespondWithValidationErrors(c *gin.Context, fieldErrors map[string]string) {
	errResp := NewErrorResponseWithDetails(
		ErrorCodeValidation,
		"request validation failed",
		fieldErrors,
	)

	if traceID := GetTraceID(c); traceID != "" {
		errResp.TraceID = traceID
	}

	c.JSON(http.StatusBadRequest, errResp)
}
