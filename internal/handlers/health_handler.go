package handlers

import (
	"context"
	"net/http"
	"time"

	"dipadubank/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// DependencyCheck probes one backing service for /health
type DependencyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks"`
}

// HealthCheckHandler reports whether the database and any optional dependencies answer
type HealthCheckHandler struct {
	checks []DependencyCheck
}

func NewHealthCheckHandler(db *gorm.DB, extra ...DependencyCheck) *HealthCheckHandler {
	database := DependencyCheck{
		Name: "database",
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	return &HealthCheckHandler{checks: append([]DependencyCheck{database}, extra...)}
}

// HealthCheck answers 200 when every dependency responds, SYSTEM_003 naming the failed ones otherwise
//
// Method: GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	results := make(map[string]string, len(h.checks))
	var failed []string
	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			results[check.Name] = "unavailable"
			failed = append(failed, check.Name+" connection failed")
			continue
		}
		results[check.Name] = "ok"
	}

	if len(failed) > 0 {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails(failed...))
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
		Checks: results,
	})
}
