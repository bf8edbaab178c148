package handlers

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"dipadubank/internal/errors"
	"dipadubank/internal/models"
	"dipadubank/internal/query"
	"dipadubank/internal/repositories"
	"dipadubank/internal/schema"
	"dipadubank/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	collectionMethods = []string{http.MethodGet, http.MethodPost}
	memberMethods     = []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete}
)

// ResourceHandler serves the REST endpoints of one entity. Every request is authorized
// before any data access; a denied request gets 403 and nothing else happens.
type ResourceHandler struct {
	service    services.ResourceServiceInterface
	authorizer services.AuthorizationServiceInterface
}

func NewResourceHandler(service services.ResourceServiceInterface, authorizer services.AuthorizationServiceInterface) *ResourceHandler {
	return &ResourceHandler{
		service:    service,
		authorizer: authorizer,
	}
}

// Register mounts the collection and member endpoints under route on g.
// Routes accept any method so unsupported ones get a coded 405.
func (h *ResourceHandler) Register(g *echo.Group, route string) {
	g.Any("/"+route, h.Collection)
	g.Any("/"+route+"/:id", h.Member)
}

// Collection handles GET (list) and POST (create) on /api/<route>
func (h *ResourceHandler) Collection(c echo.Context) error {
	method := c.Request().Method
	if !slices.Contains(collectionMethods, method) {
		return methodNotAllowed(c, collectionMethods)
	}

	op, _ := models.OperationFromMethod(method)
	if proceed, err := h.authorize(c, op, nil); !proceed {
		return err
	}

	if method == http.MethodPost {
		return h.create(c)
	}
	return h.list(c)
}

// Member handles GET, PUT, PATCH and DELETE on /api/<route>/:id
func (h *ResourceHandler) Member(c echo.Context) error {
	method := c.Request().Method
	if !slices.Contains(memberMethods, method) {
		return methodNotAllowed(c, memberMethods)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id: must be a valid UUID"))
	}

	op, _ := models.OperationFromMethod(method)
	if proceed, err := h.authorize(c, op, &id); !proceed {
		return err
	}

	switch method {
	case http.MethodGet:
		return h.get(c, id)
	case http.MethodPut:
		return h.update(c, id, schema.Full)
	case http.MethodPatch:
		return h.update(c, id, schema.Partial)
	default:
		return h.delete(c, id)
	}
}

// authorize reports whether the request may proceed. When it may not, the 401/403/5xx
// response has already been written.
func (h *ResourceHandler) authorize(c echo.Context, op models.Operation, resourceID *uuid.UUID) (bool, error) {
	ctx := c.Request().Context()
	identity, ok := models.IdentityFromContext(ctx)
	if !ok {
		return false, SendError(c, errors.AuthMissingToken)
	}

	granted, err := h.authorizer.HasAccess(ctx, identity, h.service.Entity(), resourceID, op)
	if err != nil {
		if stderrors.Is(err, services.ErrCircuitBreakerOpen) {
			return false, SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("authorization service unavailable"))
		}
		return false, SendSystemError(c, fmt.Errorf("authorize %s %s: %w", op, h.service.Entity(), err))
	}
	if !granted {
		return false, SendError(c, errors.AuthForbidden)
	}
	return true, nil
}

func (h *ResourceHandler) list(c echo.Context) error {
	q, err := query.Parse(c.QueryParams(), h.service.Schema())
	if err != nil {
		return h.sendServiceError(c, err)
	}

	page, err := h.service.List(c.Request().Context(), q)
	if err != nil {
		return h.sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ResourceHandler) get(c echo.Context, id uuid.UUID) error {
	q, err := query.Parse(c.QueryParams(), h.service.Schema())
	if err != nil {
		return h.sendServiceError(c, err)
	}

	entity, err := h.service.Get(c.Request().Context(), q.WithID(id))
	if err != nil {
		return h.sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *ResourceHandler) create(c echo.Context) error {
	payload, err := decodePayload(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidBody, errors.WithDetails(err.Error()))
	}

	entity, err := h.service.Create(c.Request().Context(), payload)
	if err != nil {
		return h.sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *ResourceHandler) update(c echo.Context, id uuid.UUID, mode schema.Mode) error {
	payload, err := decodePayload(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidBody, errors.WithDetails(err.Error()))
	}

	entity, err := h.service.Update(c.Request().Context(), id, payload, mode)
	if err != nil {
		return h.sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *ResourceHandler) delete(c echo.Context, id uuid.UUID) error {
	entity, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return h.sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *ResourceHandler) sendServiceError(c echo.Context, err error) error {
	var validationErr *schema.ValidationError
	switch {
	case stderrors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, errors.NewValidationError(validationErr.Fields, getTraceID(c)))
	case stderrors.Is(err, repositories.ErrRecordNotFound):
		return SendError(c, errors.ResourceNotFound)
	default:
		return SendSystemError(c, err)
	}
}

// decodePayload reads a JSON object body keeping numbers exact. An empty body is an empty object.
func decodePayload(c echo.Context) (map[string]interface{}, error) {
	payload := make(map[string]interface{})

	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		if stderrors.Is(err, io.EOF) {
			return payload, nil
		}
		return nil, fmt.Errorf("request body must be a JSON object")
	}
	return payload, nil
}

func methodNotAllowed(c echo.Context, methods []string) error {
	c.Response().Header().Set(echo.HeaderAllow, strings.Join(methods, ", "))
	return SendError(c, errors.ResourceMethodNotAllowed,
		errors.WithMessage(fmt.Sprintf("Method %s not allowed", c.Request().Method)))
}
