package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dipadubank/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
	seen struct {
		echoValue    string
		requestValue string
	}
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Use(RequestID())
	s.echo.GET("/api/users", func(c echo.Context) error {
		s.seen.echoValue = GetTraceID(c)
		s.seen.requestValue = models.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
}

func (s *RequestIDTestSuite) serve(traceID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RequestIDTestSuite) TestGeneratesUUIDWhenMissing() {
	rec := s.serve("")

	traceID := rec.Header().Get(TraceIDHeader)
	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, s.seen.echoValue)
	s.Equal(traceID, s.seen.requestValue)
}

func (s *RequestIDTestSuite) TestKeepsCallerTraceID() {
	rec := s.serve("gw-2024.03_abc-1")

	s.Equal("gw-2024.03_abc-1", rec.Header().Get(TraceIDHeader))
	s.Equal("gw-2024.03_abc-1", s.seen.echoValue)
	s.Equal("gw-2024.03_abc-1", s.seen.requestValue)
}

func (s *RequestIDTestSuite) TestReplacesImplausibleTraceIDs() {
	for name, supplied := range map[string]string{
		"spaces":   "trace id",
		"markup":   "<script>",
		"too long": strings.Repeat("a", maxTraceIDLength+1),
	} {
		s.Run(name, func() {
			rec := s.serve(supplied)

			traceID := rec.Header().Get(TraceIDHeader)
			s.NotEqual(supplied, traceID)
			_, err := uuid.Parse(traceID)
			s.NoError(err)
		})
	}
}

func (s *RequestIDTestSuite) TestUniquePerRequest() {
	ids := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ids[s.serve("").Header().Get(TraceIDHeader)] = true
	}
	s.Len(ids, 50)
}

func (s *RequestIDTestSuite) TestGetTraceIDOutsideMiddleware() {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
