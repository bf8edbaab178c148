package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrServer       = errors.New("server error")
)

// APIError is a non-200 response from the API. It matches ErrNotFound,
// ErrForbidden, ErrUnauthorized, ErrValidation or ErrServer with errors.Is.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []string
	TraceID    string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d", e.StatusCode)
	if e.Code != "" {
		msg += " " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	return msg
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode >= 500:
		return ErrServer
	case e.StatusCode >= 400:
		return ErrValidation
	default:
		return nil
	}
}

// FieldErrors splits "field: reason" details into a map. Details without a field prefix are skipped.
func (e *APIError) FieldErrors() map[string]string {
	fields := make(map[string]string, len(e.Details))
	for _, detail := range e.Details {
		name, reason, ok := strings.Cut(detail, ": ")
		if ok {
			fields[name] = reason
		}
	}
	return fields
}

type errorEnvelope struct {
	Error struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
		TraceID string   `json:"trace_id"`
	} `json:"error"`
	// bare {"message": "..."} bodies, as sent by proxies in front of the API
	Message string `json:"message"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Code = envelope.Error.Code
	apiErr.Message = envelope.Error.Message
	apiErr.Details = envelope.Error.Details
	apiErr.TraceID = envelope.Error.TraceID
	if apiErr.Message == "" {
		apiErr.Message = envelope.Message
	}
	return apiErr
}
