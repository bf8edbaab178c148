package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dipadubank/internal/models"
	"dipadubank/internal/notifications"
	"dipadubank/internal/query"
	"dipadubank/internal/repositories"
	"dipadubank/internal/repositories/repository_mocks"
	"dipadubank/internal/schema"
	"dipadubank/internal/services"
	"dipadubank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ResourceHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockService    *service_mocks.MockResourceServiceInterface
	mockAuthorizer *service_mocks.MockAuthorizationServiceInterface
	handler        *ResourceHandler
	echo           *echo.Echo
	identity       models.Identity
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerSuite))
}

func (s *ResourceHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockResourceServiceInterface(s.ctrl)
	s.mockAuthorizer = service_mocks.NewMockAuthorizationServiceInterface(s.ctrl)
	s.mockService.EXPECT().Entity().Return("bank_account").AnyTimes()
	s.mockService.EXPECT().Schema().Return(schema.MustLookup("bank_account")).AnyTimes()
	s.handler = NewResourceHandler(s.mockService, s.mockAuthorizer)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.identity = models.Identity{RoqUserID: "roq-1", TenantID: "tenant-1", Roles: []string{"Owner"}}
}

func (s *ResourceHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newContext builds a request carrying the session identity, as RequireSession would
func (s *ResourceHandlerSuite) newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = req.WithContext(models.WithIdentity(req.Context(), s.identity))

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-1")
	return c, rec
}

func (s *ResourceHandlerSuite) memberContext(method string, id string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := s.newContext(method, "/api/bank-accounts/"+id, body)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *ResourceHandlerSuite) allow(op models.Operation, resourceID *uuid.UUID) {
	s.mockAuthorizer.EXPECT().
		HasAccess(gomock.Any(), s.identity, "bank_account", resourceID, op).
		Return(true, nil)
}

func (s *ResourceHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var body ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func account(id uuid.UUID, number string) *models.BankAccount {
	a := &models.BankAccount{AccountNumber: number, AccountBalance: decimal.NewFromInt(100)}
	a.ID = id
	return a
}

func (s *ResourceHandlerSuite) TestList_ParsesQuery() {
	s.allow(models.OperationRead, nil)
	s.mockService.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q query.Query) (*models.Page[models.Entity], error) {
			s.Equal(5, q.Limit)
			s.Equal(10, q.Offset)
			s.Equal([]query.Order{{Field: "account_number", Desc: true}}, q.Order)
			s.Equal([]query.Filter{{Field: "account_status", Value: "active"}}, q.Filters)
			return &models.Page[models.Entity]{
				Data:       []models.Entity{account(uuid.New(), "ACC-1")},
				TotalCount: 11,
				Offset:     q.Offset,
				Limit:      q.Limit,
			}, nil
		})

	c, rec := s.newContext(http.MethodGet, "/api/bank-accounts?limit=5&offset=10&order=-account_number&account_status=active", nil)
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusOK, rec.Code)
	var page struct {
		Data       []map[string]interface{} `json:"data"`
		TotalCount int64                    `json:"totalCount"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &page))
	s.Len(page.Data, 1)
	s.EqualValues(11, page.TotalCount)
	s.Equal("ACC-1", page.Data[0]["account_number"])
	s.Equal(map[string]interface{}{}, page.Data[0]["_count"])
}

func (s *ResourceHandlerSuite) TestList_InvalidQuery() {
	s.allow(models.OperationRead, nil)

	c, rec := s.newContext(http.MethodGet, "/api/bank-accounts?order=password", nil)
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

func (s *ResourceHandlerSuite) TestCreate_ReturnsRecord() {
	id := uuid.New()
	s.allow(models.OperationCreate, nil)
	s.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload map[string]interface{}) (models.Entity, error) {
			s.Equal(json.Number("250.5"), payload["account_balance"])
			s.Equal("ACC-9", payload["account_number"])
			return account(id, "ACC-9"), nil
		})

	c, rec := s.newContext(http.MethodPost, "/api/bank-accounts", map[string]interface{}{
		"account_balance": 250.5,
		"account_number":  "ACC-9",
	})
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), id.String())
}

func (s *ResourceHandlerSuite) TestCreate_ValidationError() {
	s.allow(models.OperationCreate, nil)
	s.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, schema.NewValidationError(map[string]string{"account_number": "is required"}))

	c, rec := s.newContext(http.MethodPost, "/api/bank-accounts", map[string]interface{}{"account_balance": 1})
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal([]string{"account_number: is required"}, body.Error.Details)
	s.Equal("trace-1", body.Error.TraceID)
}

func (s *ResourceHandlerSuite) TestCreate_MalformedBody() {
	s.allow(models.OperationCreate, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/bank-accounts", strings.NewReader("[1,2"))
	req = req.WithContext(models.WithIdentity(req.Context(), s.identity))
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", s.decodeError(rec).Error.Code)
}

func (s *ResourceHandlerSuite) TestForbidden_NoServiceCalls() {
	id := uuid.New()
	s.mockAuthorizer.EXPECT().
		HasAccess(gomock.Any(), s.identity, "bank_account", &id, models.OperationDelete).
		Return(false, nil)

	c, rec := s.memberContext(http.MethodDelete, id.String(), nil)
	s.NoError(s.handler.Member(c))

	s.Equal(http.StatusForbidden, rec.Code)
	body := s.decodeError(rec)
	s.Equal("AUTH_004", body.Error.Code)
	s.Equal("Forbidden", body.Error.Message)
}

func (s *ResourceHandlerSuite) TestMissingIdentity() {
	req := httptest.NewRequest(http.MethodGet, "/api/bank-accounts", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.decodeError(rec).Error.Code)
}

func (s *ResourceHandlerSuite) TestAuthorizerUnavailable() {
	s.mockAuthorizer.EXPECT().HasAccess(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, services.ErrCircuitBreakerOpen)

	c, rec := s.newContext(http.MethodGet, "/api/bank-accounts", nil)
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SYSTEM_003", s.decodeError(rec).Error.Code)
}

func (s *ResourceHandlerSuite) TestAuthorizerError() {
	s.mockAuthorizer.EXPECT().HasAccess(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("dial tcp: connection refused"))

	c, rec := s.newContext(http.MethodPost, "/api/bank-accounts", map[string]interface{}{})
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ResourceHandlerSuite) TestMethodNotAllowed_BeforeAuthorization() {
	c, rec := s.newContext(http.MethodPut, "/api/bank-accounts", map[string]interface{}{})
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal("GET, POST", rec.Header().Get(echo.HeaderAllow))
	body := s.decodeError(rec)
	s.Equal("RESOURCE_002", body.Error.Code)
	s.Equal("Method PUT not allowed", body.Error.Message)

	c, rec = s.memberContext(http.MethodPost, uuid.NewString(), nil)
	s.NoError(s.handler.Member(c))
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal("Method POST not allowed", s.decodeError(rec).Error.Message)
}

func (s *ResourceHandlerSuite) TestMember_InvalidID() {
	c, rec := s.memberContext(http.MethodGet, "not-a-uuid", nil)
	s.NoError(s.handler.Member(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.decodeError(rec).Error.Code)
}

func (s *ResourceHandlerSuite) TestGet_NotFound() {
	id := uuid.New()
	s.allow(models.OperationRead, &id)
	s.mockService.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q query.Query) (models.Entity, error) {
			s.Require().NotNil(q.ID)
			s.Equal(id, *q.ID)
			return nil, repositories.ErrRecordNotFound
		})

	c, rec := s.memberContext(http.MethodGet, id.String(), nil)
	s.NoError(s.handler.Member(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("RESOURCE_001", s.decodeError(rec).Error.Code)
}

func (s *ResourceHandlerSuite) TestGet_WithRelations() {
	id := uuid.New()
	s.allow(models.OperationRead, &id)
	s.mockService.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q query.Query) (models.Entity, error) {
			s.Equal([]string{"transaction_histories"}, q.Relations)
			return account(id, "ACC-2"), nil
		})

	c, rec := s.newContext(http.MethodGet, "/api/bank-accounts/"+id.String()+"?relations=transaction_histories", nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	s.NoError(s.handler.Member(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ResourceHandlerSuite) TestPutIsFullPatchIsPartial() {
	id := uuid.New()
	cases := []struct {
		method string
		mode   schema.Mode
	}{
		{http.MethodPut, schema.Full},
		{http.MethodPatch, schema.Partial},
	}

	for _, tc := range cases {
		s.Run(tc.method, func() {
			s.allow(models.OperationUpdate, &id)
			s.mockService.EXPECT().Update(gomock.Any(), id, gomock.Any(), tc.mode).Return(account(id, "ACC-3"), nil)

			c, rec := s.memberContext(tc.method, id.String(), map[string]interface{}{"account_status": "frozen"})
			s.NoError(s.handler.Member(c))
			s.Equal(http.StatusOK, rec.Code)
		})
	}
}

func (s *ResourceHandlerSuite) TestDelete_ReturnsPriorRecord() {
	id := uuid.New()
	s.allow(models.OperationDelete, &id)
	s.mockService.EXPECT().Delete(gomock.Any(), id).Return(account(id, "ACC-4"), nil)

	c, rec := s.memberContext(http.MethodDelete, id.String(), nil)
	s.NoError(s.handler.Member(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ACC-4")
}

func (s *ResourceHandlerSuite) TestServiceFailureIsGeneric() {
	s.allow(models.OperationRead, nil)
	s.mockService.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New(`pq: relation "bank_accounts" does not exist`))

	c, rec := s.newContext(http.MethodGet, "/api/bank-accounts", nil)
	s.NoError(s.handler.Collection(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decodeError(rec)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.NotContains(rec.Body.String(), "bank_accounts")
}

// A denied request never reaches persistence: the repository mock expects no data calls.
func (s *ResourceHandlerSuite) TestForbidden_ZeroPersistenceCalls() {
	mockRepo := repository_mocks.NewMockResourceRepositoryInterface(s.ctrl)
	mockRepo.EXPECT().Entity().Return("bank_account").AnyTimes()
	mockLogger := service_mocks.NewMockResourceLoggerInterface(s.ctrl)
	mockMetrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	mockLogger.EXPECT().LogAuthorizationDecision(gomock.Any(), "bank_account", gomock.Any(), gomock.Any(), false).AnyTimes()
	mockMetrics.EXPECT().IncrementCounter(services.MetricAuthorizationDecision, gomock.Any()).AnyTimes()

	service := services.NewResourceService(mockRepo, notifications.NoopNotifier{}, service_mocks.NewMockAuditServiceInterface(s.ctrl), mockLogger, mockMetrics)
	authorizer := services.NewPolicyAuthorizer(services.Policy{}, mockLogger, mockMetrics)
	handler := NewResourceHandler(service, authorizer)

	id := uuid.New()
	requests := []struct {
		method string
		member bool
		body   interface{}
	}{
		{http.MethodGet, false, nil},
		{http.MethodPost, false, map[string]interface{}{"account_balance": 1, "account_number": "A"}},
		{http.MethodGet, true, nil},
		{http.MethodPut, true, map[string]interface{}{"account_balance": 1, "account_number": "A"}},
		{http.MethodPatch, true, map[string]interface{}{"account_status": "closed"}},
		{http.MethodDelete, true, nil},
	}

	for _, r := range requests {
		var (
			c   echo.Context
			rec *httptest.ResponseRecorder
		)
		if r.member {
			c, rec = s.memberContext(r.method, id.String(), r.body)
			s.NoError(handler.Member(c))
		} else {
			c, rec = s.newContext(r.method, "/api/bank-accounts", r.body)
			s.NoError(handler.Collection(c))
		}
		s.Equal(http.StatusForbidden, rec.Code, r.method)
	}
}
