package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{Error: ErrorDetail{
		Code:    string(code),
		Message: GetErrorMessage(code),
		TraceID: traceID,
	}}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError lists one "field: message" detail per field, sorted by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, len(fields))
	for i, field := range fields {
		details[i] = field + ": " + fieldErrors[field]
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError wraps an internal error with a generic system error message.
// The internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// statusByGroup maps the code prefix to its status; statusOverrides wins over it
var (
	statusByGroup = map[string]int{
		"VALIDATION": http.StatusBadRequest,
		"AUTH":       http.StatusUnauthorized,
		"RESOURCE":   http.StatusNotFound,
		"SYSTEM":     http.StatusInternalServerError,
	}
	statusOverrides = map[ErrorCode]int{
		AuthForbidden:            http.StatusForbidden,
		ResourceMethodNotAllowed: http.StatusMethodNotAllowed,
		SystemRateLimitExceeded:  http.StatusTooManyRequests,
		SystemServiceUnavailable: http.StatusServiceUnavailable,
	}
)

// GetHTTPStatus returns the HTTP status for a code. Unregistered codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := statusOverrides[code]; ok {
		return status
	}
	if !IsValidErrorCode(code) {
		return http.StatusInternalServerError
	}
	group, _, _ := strings.Cut(string(code), "_")
	if status, ok := statusByGroup[group]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) IsClientError() bool {
	return er.GetHTTPStatus() < http.StatusInternalServerError
}

func (er *ErrorResponse) IsServerError() bool {
	return !er.IsClientError()
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
