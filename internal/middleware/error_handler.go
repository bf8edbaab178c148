package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dipadubank/internal/errors"
	"dipadubank/internal/schema"
	"dipadubank/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "API error responses by code, route and status",
	},
	[]string{"code", "endpoint", "status"},
)

// CustomHTTPErrorHandler renders any error that escapes a handler as the standard error envelope.
// Echo routing errors keep their status, validation errors become VALIDATION_001 with per-field
// details and everything else is reported as SYSTEM_001 without internal detail.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse, httpStatus := toErrorResponse(err, c.Request().Method, traceID)

	logLevel := slog.LevelWarn
	if httpStatus >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(c.Request().Context(), logLevel, "request failed",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(httpStatus)).Inc()

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpStatus)
	} else {
		err = c.JSON(httpStatus, errorResponse)
	}
	if err != nil {
		slog.Error("failed to send error response", "trace_id", traceID, "error", err)
	}
}

func toErrorResponse(err error, method, traceID string) (*errors.ErrorResponse, int) {
	var (
		echoErr        *echo.HTTPError
		schemaErr      *schema.ValidationError
		validationErrs validator.ValidationErrors
	)

	switch {
	case stderrors.As(err, &echoErr):
		code := mapHTTPStatusToErrorCode(echoErr.Code)
		var opts []errors.ErrorOption
		switch {
		case echoErr.Code == http.StatusMethodNotAllowed:
			opts = append(opts, errors.WithMessage(fmt.Sprintf("Method %s not allowed", method)))
		case echoErr.Code < http.StatusInternalServerError:
			opts = append(opts, errors.WithMessage(fmt.Sprint(echoErr.Message)))
		}
		return errors.NewErrorResponse(code, traceID, opts...), echoErr.Code

	case stderrors.As(err, &schemaErr):
		return errors.NewValidationError(schemaErr.Fields, traceID), http.StatusBadRequest

	case stderrors.As(err, &validationErrs):
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fieldErrors[fieldErr.Field()] = validation.Describe(validator.ValidationErrors{fieldErr})
		}
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest

	default:
		response, _ := errors.WrapSystemError(err, traceID)
		return response, response.GetHTTPStatus()
	}
}

func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthForbidden
	case http.StatusNotFound:
		return errors.ResourceNotFound
	case http.StatusMethodNotAllowed:
		return errors.ResourceMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
