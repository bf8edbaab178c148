package services

import (
	"context"
	"errors"
	"testing"

	"dipadubank/internal/models"
	"dipadubank/internal/notifications"
	"dipadubank/internal/query"
	"dipadubank/internal/repositories"
	"dipadubank/internal/repositories/repository_mocks"
	"dipadubank/internal/schema"
	"dipadubank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type recordingNotifier struct {
	events []notifications.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, event notifications.Event) error {
	n.events = append(n.events, event)
	return n.err
}

func (n *recordingNotifier) Close() error { return nil }

type ResourceServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *repository_mocks.MockResourceRepositoryInterface
	mockAudit   *service_mocks.MockAuditServiceInterface
	mockLogger  *service_mocks.MockResourceLoggerInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	notifier    *recordingNotifier
	service     ResourceServiceInterface
	ctx         context.Context
}

func TestResourceServiceSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}

func (s *ResourceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockResourceRepositoryInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockResourceLoggerInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.notifier = &recordingNotifier{}

	s.mockRepo.EXPECT().Entity().Return("bank_account").AnyTimes()
	s.mockRepo.EXPECT().NewEntity().DoAndReturn(func() models.Entity { return &models.BankAccount{} }).AnyTimes()
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = NewResourceService(s.mockRepo, s.notifier, s.mockAudit, s.mockLogger, s.mockMetrics)
	s.ctx = models.WithIdentity(context.Background(), models.Identity{RoqUserID: "roq-1", TenantID: "tenant-1"})
}

func (s *ResourceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResourceServiceTestSuite) TestCreate_Success() {
	id := uuid.New()
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entity models.Entity) error {
			account := entity.(*models.BankAccount)
			s.Equal("ACC-1", account.AccountNumber)
			s.True(account.AccountBalance.Equal(decimal.RequireFromString("100.50")))
			s.Nil(account.AccountType)
			account.ID = id
			return nil
		},
	)
	s.mockLogger.EXPECT().LogResourceCreated(s.ctx, "bank_account", id)
	s.mockAudit.EXPECT().RecordChange(s.ctx, "bank_account", models.OperationCreate, id, []string{"account_balance", "account_number"}).Return(nil)

	entity, err := s.service.Create(s.ctx, map[string]interface{}{
		"id":              "client-chosen",
		"account_number":  "ACC-1",
		"account_balance": 100.50,
	})

	s.Require().NoError(err)
	s.Equal(id, entity.GetID())
	s.Require().Len(s.notifier.events, 1)
	s.Equal(models.OperationCreate, s.notifier.events[0].Operation)
	s.Equal(id, s.notifier.events[0].RecordID)
	s.Equal("roq-1", s.notifier.events[0].Identity.RoqUserID)
}

func (s *ResourceServiceTestSuite) TestCreate_ValidationFailsClosed() {
	s.mockLogger.EXPECT().LogValidationFailure(s.ctx, "bank_account", models.OperationCreate, []string{"account_number: is required"})

	_, err := s.service.Create(s.ctx, map[string]interface{}{"account_balance": 1})

	s.ErrorIs(err, schema.ErrValidation)
	s.Empty(s.notifier.events)
}

func (s *ResourceServiceTestSuite) TestCreate_NotificationFailureIsNotFatal() {
	s.notifier.err = errors.New("broker down")
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.mockLogger.EXPECT().LogResourceCreated(s.ctx, "bank_account", gomock.Any())
	s.mockLogger.EXPECT().LogNotificationFailure(s.ctx, "bank_account", models.OperationCreate, gomock.Any(), "broker down")
	s.mockAudit.EXPECT().RecordChange(s.ctx, "bank_account", models.OperationCreate, gomock.Any(), gomock.Any()).Return(nil)

	entity, err := s.service.Create(s.ctx, map[string]interface{}{"account_number": "ACC-2", "account_balance": 0})

	s.NoError(err)
	s.NotNil(entity)
}

func (s *ResourceServiceTestSuite) TestCreate_AuditFailureIsNotFatal() {
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.mockLogger.EXPECT().LogResourceCreated(s.ctx, "bank_account", gomock.Any())
	s.mockAudit.EXPECT().RecordChange(s.ctx, "bank_account", models.OperationCreate, gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	s.mockLogger.EXPECT().LogAuditFailure(s.ctx, "bank_account", models.OperationCreate, gomock.Any(), gomock.Any())

	_, err := s.service.Create(s.ctx, map[string]interface{}{"account_number": "ACC-3", "account_balance": 5})
	s.NoError(err)
}

func (s *ResourceServiceTestSuite) TestCreate_PersistenceErrorSkipsNotification() {
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(errors.New("connection reset"))

	_, err := s.service.Create(s.ctx, map[string]interface{}{"account_number": "ACC-4", "account_balance": 5})

	s.Error(err)
	s.Empty(s.notifier.events)
}

func (s *ResourceServiceTestSuite) TestUpdate_Partial() {
	id := uuid.New()
	updated := &models.BankAccount{AccountNumber: "ACC-1"}
	updated.ID = id
	fields := map[string]interface{}{"account_status": "frozen"}

	s.mockRepo.EXPECT().Update(s.ctx, id, fields).Return(updated, nil)
	s.mockLogger.EXPECT().LogResourceUpdated(s.ctx, "bank_account", id, []string{"account_status"})
	s.mockAudit.EXPECT().RecordChange(s.ctx, "bank_account", models.OperationUpdate, id, []string{"account_status"}).Return(nil)

	entity, err := s.service.Update(s.ctx, id, map[string]interface{}{"account_status": "frozen"}, schema.Partial)

	s.NoError(err)
	s.Equal(updated, entity)
	s.Require().Len(s.notifier.events, 1)
	s.Equal(models.OperationUpdate, s.notifier.events[0].Operation)
}

func (s *ResourceServiceTestSuite) TestUpdate_FullRequiresRequiredFields() {
	s.mockLogger.EXPECT().LogValidationFailure(s.ctx, "bank_account", models.OperationUpdate, gomock.Any())

	_, err := s.service.Update(s.ctx, uuid.New(), map[string]interface{}{"account_status": "frozen"}, schema.Full)
	s.ErrorIs(err, schema.ErrValidation)
}

func (s *ResourceServiceTestSuite) TestUpdate_NullRequiredFieldRejectedInPartialMode() {
	s.mockLogger.EXPECT().LogValidationFailure(s.ctx, "bank_account", models.OperationUpdate, gomock.Any())

	_, err := s.service.Update(s.ctx, uuid.New(), map[string]interface{}{"account_number": nil}, schema.Partial)
	s.ErrorIs(err, schema.ErrValidation)
}

func (s *ResourceServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().Update(s.ctx, id, gomock.Any()).Return(nil, repositories.ErrRecordNotFound)

	_, err := s.service.Update(s.ctx, id, map[string]interface{}{"account_owner": "Ann"}, schema.Partial)

	s.ErrorIs(err, repositories.ErrRecordNotFound)
	s.Empty(s.notifier.events)
}

func (s *ResourceServiceTestSuite) TestDelete_NotifiesBeforeDeleting() {
	id := uuid.New()
	prior := &models.BankAccount{AccountNumber: "ACC-9"}
	prior.ID = id

	s.mockRepo.EXPECT().Delete(s.ctx, id).DoAndReturn(func(context.Context, uuid.UUID) (models.Entity, error) {
		s.Require().Len(s.notifier.events, 1, "notification must precede the delete")
		s.Equal(id, s.notifier.events[0].RecordID)
		return prior, nil
	})
	s.mockLogger.EXPECT().LogResourceDeleted(s.ctx, "bank_account", id)
	s.mockAudit.EXPECT().RecordChange(s.ctx, "bank_account", models.OperationDelete, id, nil).Return(nil)

	entity, err := s.service.Delete(s.ctx, id)

	s.NoError(err)
	s.Equal(prior, entity)
}

func (s *ResourceServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().Delete(s.ctx, id).Return(nil, repositories.ErrRecordNotFound)

	_, err := s.service.Delete(s.ctx, id)
	s.ErrorIs(err, repositories.ErrRecordNotFound)
}

func (s *ResourceServiceTestSuite) TestList_BuildsPage() {
	q := query.New().Paginate(20, 10)
	rows := []models.Entity{&models.BankAccount{}, &models.BankAccount{}}
	s.mockRepo.EXPECT().FindMany(s.ctx, q).Return(rows, int64(42), nil)

	page, err := s.service.List(s.ctx, q)

	s.Require().NoError(err)
	s.Equal(int64(42), page.TotalCount)
	s.Equal(20, page.Offset)
	s.Equal(10, page.Limit)
	s.Len(page.Data, 2)
}

func (s *ResourceServiceTestSuite) TestGet_PassesQueryThrough() {
	id := uuid.New()
	q := query.New().WithID(id).With("transaction_histories")
	s.mockRepo.EXPECT().FindFirst(s.ctx, q).Return(nil, repositories.ErrRecordNotFound)

	_, err := s.service.Get(s.ctx, q)
	s.ErrorIs(err, repositories.ErrRecordNotFound)
}
