package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dipadubank/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerSuite struct {
	suite.Suite
	db   *database.DB
	echo *echo.Echo
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerSuite))
}

func (s *HealthCheckHandlerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = echo.New()
}

func (s *HealthCheckHandlerSuite) check(handler *HealthCheckHandler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	c.Set(TraceIDContextKey, "trace-health")
	s.Require().NoError(handler.HealthCheck(c))
	return rec
}

func (s *HealthCheckHandlerSuite) TestHealthy() {
	cache := DependencyCheck{Name: "cache", Ping: func(context.Context) error { return nil }}

	rec := s.check(NewHealthCheckHandler(s.db.DB, cache))

	s.Equal(http.StatusOK, rec.Code)
	var body healthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("healthy", body.Status)
	s.NotEmpty(body.Time)
	s.Equal(map[string]string{"database": "ok", "cache": "ok"}, body.Checks)
}

func (s *HealthCheckHandlerSuite) TestDatabaseDown() {
	s.Require().NoError(s.db.Close())

	rec := s.check(NewHealthCheckHandler(s.db.DB))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	var body ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("SYSTEM_003", body.Error.Code)
	s.Equal("trace-health", body.Error.TraceID)
	s.Equal([]string{"database connection failed"}, body.Error.Details)
}

func (s *HealthCheckHandlerSuite) TestOptionalDependencyDown() {
	cache := DependencyCheck{Name: "cache", Ping: func(context.Context) error {
		return stderrors.New("dial tcp 127.0.0.1:6379: connection refused")
	}}

	rec := s.check(NewHealthCheckHandler(s.db.DB, cache))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "cache connection failed")
	s.NotContains(rec.Body.String(), "6379")
}
