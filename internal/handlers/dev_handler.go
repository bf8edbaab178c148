package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dipadubank/internal/dto"
	"dipadubank/internal/errors"
	"dipadubank/internal/models"
	"dipadubank/internal/query"
	"dipadubank/internal/routes"
	"dipadubank/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName carries the session token for the form pages
	SessionCookieName = "session_token"

	defaultSeedCount = 10
	maxSeedCount     = 500
)

// DevHandler serves development-only endpoints. The server mounts it only when APP_ENV=development.
type DevHandler struct {
	sessions  services.SessionServiceInterface
	resources map[string]services.ResourceServiceInterface
	generator *services.PayloadGenerator
	metrics   services.MetricsRecorderInterface
	audit     services.AuditServiceInterface
}

func NewDevHandler(
	sessions services.SessionServiceInterface,
	resources []services.ResourceServiceInterface,
	generator *services.PayloadGenerator,
	metrics services.MetricsRecorderInterface,
	audit services.AuditServiceInterface,
) *DevHandler {
	byEntity := make(map[string]services.ResourceServiceInterface, len(resources))
	for _, r := range resources {
		byEntity[r.Entity()] = r
	}
	return &DevHandler{
		sessions:  sessions,
		resources: byEntity,
		generator: generator,
		metrics:   metrics,
		audit:     audit,
	}
}

// IssueSession mints a session token for the posted identity and sets the session cookie
//
// Method: POST /dev/session
func (h *DevHandler) IssueSession(c echo.Context) error {
	var req dto.IssueSessionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidBody)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, expiresAt, err := h.sessions.IssueToken(models.Identity{
		RoqUserID: req.RoqUserID,
		TenantID:  req.TenantID,
		Roles:     req.Roles,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}

// Seed creates fake records of one resource through its service, so seeded records
// are validated, notified and audited like any other.
//
// Method: POST /dev/seed/:route?count=N (default 10, max 500)
func (h *DevHandler) Seed(c echo.Context) error {
	entity := routes.ToEntity(c.Param("route"))
	service, ok := h.resources[entity]
	if !ok {
		return SendError(c, errors.ResourceUnknownEntity)
	}

	count := defaultSeedCount
	if raw := c.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return SendError(c, errors.ValidationInvalidQuery, errors.WithDetails("count: must be a positive integer"))
		}
		count = min(n, maxSeedCount)
	}

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		record, err := service.Create(c.Request().Context(), h.generator.Generate(service.Schema()))
		if err != nil {
			return SendSystemError(c, err)
		}
		ids = append(ids, record.GetID())
		h.metrics.IncrementCounter(services.MetricSeededRecords, map[string]string{"entity": entity})
	}

	return c.JSON(http.StatusOK, dto.SeedResponse{
		Entity:  entity,
		Created: len(ids),
		IDs:     ids,
	})
}

// RecordHistory lists the audit trail of one record, newest first
//
// Method: GET /dev/audit/:route/:id?offset=&limit=
func (h *DevHandler) RecordHistory(c echo.Context) error {
	entity := routes.ToEntity(c.Param("route"))
	if _, ok := h.resources[entity]; !ok {
		return SendError(c, errors.ResourceUnknownEntity)
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id: must be a valid UUID"))
	}
	offset, limit, err := pageParams(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidQuery, errors.WithDetails(err.Error()))
	}

	entries, total, err := h.audit.GetRecordHistory(c.Request().Context(), entity, id, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AuditPage{Entries: entries, Total: total, Offset: offset, Limit: limit})
}

// ActorActivity lists the mutations one user performed, newest first
//
// Method: GET /dev/audit/actors/:roq_user_id?offset=&limit=
func (h *DevHandler) ActorActivity(c echo.Context) error {
	offset, limit, err := pageParams(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidQuery, errors.WithDetails(err.Error()))
	}

	entries, total, err := h.audit.GetActorActivity(c.Request().Context(), c.Param("roq_user_id"), offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AuditPage{Entries: entries, Total: total, Offset: offset, Limit: limit})
}

func pageParams(c echo.Context) (offset, limit int, err error) {
	limit = query.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			return 0, 0, fmt.Errorf("limit: must be a positive integer")
		}
		limit = min(n, query.MaxLimit)
	}
	if raw := c.QueryParam("offset"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			return 0, 0, fmt.Errorf("offset: must be a non-negative integer")
		}
		offset = n
	}
	return offset, limit, nil
}
