package handlers

import (
	"log/slog"
	"net/http"

	"dipadubank/internal/errors"
	"dipadubank/internal/models"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (coded 4xx and 503) and SendSystemError (500,
// generic message, cause logged). The error envelope is never built by hand.

// TraceIDContextKey matches the key the request ID middleware writes
const TraceIDContextKey = "trace_id"

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return models.TraceIDFromContext(c.Request().Context())
}

// SendError writes the envelope for code with the status the code maps to
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs err and answers SYSTEM_001 without exposing it
func SendSystemError(c echo.Context, err error) error {
	response, cause := errors.WrapSystemError(err, getTraceID(c))
	slog.ErrorContext(c.Request().Context(), "request failed with internal error",
		"trace_id", response.Error.TraceID,
		"route", c.Path(),
		"method", c.Request().Method,
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, response)
}
