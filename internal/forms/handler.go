// Package forms serves the server-rendered list, create and edit pages. Pages validate
// input against the resource schema locally and talk to the API only through the SDK.
package forms

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"dipadubank/internal/client"
	"dipadubank/internal/query"
	"dipadubank/internal/routes"
	"dipadubank/internal/schema"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName = "session_token"

	msgCreateForbidden = "You don't have permissions to create this resource"
	msgUpdateForbidden = "You don't have permissions to update this resource"
	msgCheckFields     = "Please correct the highlighted fields"
)

// Handler serves the pages under prefix. Each request builds an SDK client carrying the
// caller's session token.
type Handler struct {
	prefix     string
	apiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHandler(prefix, apiBaseURL string, httpClient *http.Client, logger *slog.Logger) *Handler {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Handler{
		prefix:     strings.TrimRight(prefix, "/"),
		apiBaseURL: apiBaseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Register mounts the pages on e under the handler prefix
func (h *Handler) Register(e *echo.Echo) {
	g := e.Group(h.prefix)
	g.GET("/:route", h.List)
	g.GET("/:route/create", h.CreateForm)
	g.POST("/:route/create", h.Create)
	g.GET("/:route/edit/:id", h.EditForm)
	g.POST("/:route/edit/:id", h.Update)
}

// resource resolves the :route param; ok is false when a not found page was rendered
func (h *Handler) resource(c echo.Context) (*client.Resource[map[string]interface{}], *schema.Schema, bool, error) {
	route := c.Param("route")
	if !routes.IsKnown(route) {
		return nil, nil, false, h.renderError(c, http.StatusNotFound, "Not found", "Unknown resource "+route)
	}
	s := schema.MustLookup(routes.ToEntity(route))
	sdk := client.New(h.apiBaseURL, client.WithHTTPClient(h.httpClient), client.WithToken(sessionToken(c)))
	return client.Records(sdk, route), s, true, nil
}

func (h *Handler) List(c echo.Context) error {
	records, s, ok, err := h.resource(c)
	if !ok {
		return err
	}

	route := records.Route()
	view := listPage{
		page:      h.page(plural(route), plural(route)),
		Singular:  schema.Humanize(s.Entity),
		CreateURL: h.url(route, "create"),
	}
	for _, f := range s.Fields {
		view.Columns = append(view.Columns, f.Label())
	}

	q, err := query.Parse(c.QueryParams(), s)
	if err != nil {
		view.Error = err.Error()
		return c.Render(http.StatusBadRequest, pageList, view)
	}

	result, err := records.List(c.Request().Context(), q)
	if err != nil {
		view.Error = h.describe(c, err, "")
		return c.Render(statusFor(err), pageList, view)
	}

	view.TotalCount = result.TotalCount
	for _, record := range result.Data {
		row := rowView{EditURL: h.url(route, "edit", fmt.Sprint(record["id"]))}
		for _, f := range s.Fields {
			row.Cells = append(row.Cells, cell(record[f.Name]))
		}
		view.Rows = append(view.Rows, row)
	}
	if q.Offset > 0 {
		view.PrevURL = h.pageURL(route, max(q.Offset-q.Limit, 0), q.Limit)
	}
	if int64(q.Offset+q.Limit) < result.TotalCount {
		view.NextURL = h.pageURL(route, q.Offset+q.Limit, q.Limit)
	}

	return c.Render(http.StatusOK, pageList, view)
}

func (h *Handler) CreateForm(c echo.Context) error {
	records, s, ok, err := h.resource(c)
	if !ok {
		return err
	}
	return c.Render(http.StatusOK, pageForm, h.createPage(records.Route(), s, emptyValues(s), nil, ""))
}

func (h *Handler) Create(c echo.Context) error {
	records, s, ok, err := h.resource(c)
	if !ok {
		return err
	}
	route := records.Route()

	form, err := c.FormParams()
	if err != nil {
		return h.renderError(c, http.StatusBadRequest, "Bad request", "The form could not be read")
	}

	fields, err := s.ValidateForm(form, schema.Full)
	if err != nil {
		return c.Render(http.StatusBadRequest, pageForm,
			h.createPage(route, s, submittedValues(s, form), validationFields(err), msgCheckFields))
	}

	if _, err := records.Create(c.Request().Context(), fields); err != nil {
		return c.Render(statusFor(err), pageForm,
			h.createPage(route, s, submittedValues(s, form), apiFieldErrors(err), h.describe(c, err, msgCreateForbidden)))
	}

	return c.Redirect(http.StatusSeeOther, h.url(route))
}

func (h *Handler) EditForm(c echo.Context) error {
	records, s, ok, err := h.resource(c)
	if !ok {
		return err
	}
	route := records.Route()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusNotFound, "Not found", "No such record")
	}

	record, err := records.GetByID(c.Request().Context(), id, query.Query{})
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return h.renderError(c, http.StatusNotFound, "Not found", "No such record")
		}
		return h.renderError(c, statusFor(err), "Edit "+schema.Humanize(s.Entity), h.describe(c, err, msgUpdateForbidden))
	}

	return c.Render(http.StatusOK, pageForm, h.editPage(route, s, id, recordValues(s, *record), nil, ""))
}

func (h *Handler) Update(c echo.Context) error {
	records, s, ok, err := h.resource(c)
	if !ok {
		return err
	}
	route := records.Route()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusNotFound, "Not found", "No such record")
	}

	form, err := c.FormParams()
	if err != nil {
		return h.renderError(c, http.StatusBadRequest, "Bad request", "The form could not be read")
	}

	fields, err := s.ValidateForm(form, schema.Full)
	if err != nil {
		return c.Render(http.StatusBadRequest, pageForm,
			h.editPage(route, s, id, submittedValues(s, form), validationFields(err), msgCheckFields))
	}

	if _, err := records.Update(c.Request().Context(), id, fields); err != nil {
		return c.Render(statusFor(err), pageForm,
			h.editPage(route, s, id, submittedValues(s, form), apiFieldErrors(err), h.describe(c, err, msgUpdateForbidden)))
	}

	return c.Redirect(http.StatusSeeOther, h.url(route))
}

func (h *Handler) createPage(route string, s *schema.Schema, values, fieldErrors map[string]string, message string) formPage {
	title := "Create " + schema.Humanize(s.Entity)
	p := h.page(title, title)
	p.Error = message
	return formPage{
		page:    p,
		Action:  h.url(route, "create"),
		ListURL: h.url(route),
		Submit:  "Create",
		Fields:  fieldViews(s, values, fieldErrors),
	}
}

func (h *Handler) editPage(route string, s *schema.Schema, id uuid.UUID, values, fieldErrors map[string]string, message string) formPage {
	title := "Edit " + schema.Humanize(s.Entity)
	p := h.page(title, title)
	p.Error = message
	return formPage{
		page:    p,
		Action:  h.url(route, "edit", id.String()),
		ListURL: h.url(route),
		Submit:  "Save",
		Fields:  fieldViews(s, values, fieldErrors),
	}
}

func (h *Handler) page(title, heading string) page {
	return page{Title: title, Heading: heading, Nav: navigation(h.prefix)}
}

func (h *Handler) renderError(c echo.Context, status int, heading, message string) error {
	p := h.page(heading, heading)
	p.Error = message
	return c.Render(status, pageError, p)
}

func (h *Handler) url(parts ...string) string {
	return h.prefix + "/" + strings.Join(parts, "/")
}

func (h *Handler) pageURL(route string, offset, limit int) string {
	return h.url(route) + "?offset=" + strconv.Itoa(offset) + "&limit=" + strconv.Itoa(limit)
}

// describe turns an SDK error into the message shown on the page. forbidden is the
// page specific text for a 403.
func (h *Handler) describe(c echo.Context, err error, forbidden string) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrForbidden) && forbidden != "":
		return forbidden
	case errors.Is(err, client.ErrUnauthorized):
		return "Your session has expired. Please sign in again."
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return http.StatusText(apiErr.StatusCode)
	default:
		h.logger.ErrorContext(c.Request().Context(), "resource API call failed",
			"path", c.Request().URL.Path,
			"error", err,
		)
		return "Something went wrong. Please try again later."
	}
}

func statusFor(err error) int {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

func validationFields(err error) map[string]string {
	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields
	}
	return nil
}

func apiFieldErrors(err error) map[string]string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && errors.Is(err, client.ErrValidation) {
		return apiErr.FieldErrors()
	}
	return nil
}

func sessionToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get("Authorization"); len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
