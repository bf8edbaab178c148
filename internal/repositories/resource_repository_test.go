package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dipadubank/internal/database"
	"dipadubank/internal/models"
	"dipadubank/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestResourceRepository(t *testing.T) {
	suite.Run(t, new(ResourceRepositorySuite))
}

type ResourceRepositorySuite struct {
	suite.Suite
	db       *database.DB
	accounts ResourceRepositoryInterface
	ctx      context.Context
}

func (s *ResourceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.accounts = NewResourceRepository[models.BankAccount](s.db.DB)
	s.ctx = context.Background()
}

func (s *ResourceRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ResourceRepositorySuite) createAccount(number string, balance int64, accountType string) *models.BankAccount {
	account := &models.BankAccount{
		AccountBalance: decimal.NewFromInt(balance),
		AccountNumber:  number,
		AccountType:    &accountType,
	}
	s.Require().NoError(s.accounts.Create(s.ctx, account))
	return account
}

func (s *ResourceRepositorySuite) TestEntity() {
	s.Equal("bank_account", s.accounts.Entity())
	s.IsType(&models.BankAccount{}, s.accounts.NewEntity())
}

func (s *ResourceRepositorySuite) TestCreateThenFindFirst() {
	created := s.createAccount("ACC-1", 100, "savings")

	s.NotEqual(uuid.Nil, created.ID)
	s.False(created.CreatedAt.IsZero())
	s.False(created.UpdatedAt.Before(created.CreatedAt))

	found, err := s.accounts.FindFirst(s.ctx, query.New().WithID(created.ID))
	s.Require().NoError(err)

	account := found.(*models.BankAccount)
	s.Equal(created.ID, account.ID)
	s.Equal("ACC-1", account.AccountNumber)
	s.True(decimal.NewFromInt(100).Equal(account.AccountBalance))
	s.Equal("savings", *account.AccountType)
	s.Nil(account.InterestRate)
}

func (s *ResourceRepositorySuite) TestFindFirst_NotFound() {
	_, err := s.accounts.FindFirst(s.ctx, query.New().WithID(uuid.New()))

	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *ResourceRepositorySuite) TestFindMany_FiltersOrderAndPages() {
	s.createAccount("ACC-1", 10, "savings")
	s.createAccount("ACC-2", 20, "checking")
	s.createAccount("ACC-3", 30, "savings")
	s.createAccount("ACC-4", 40, "savings")

	q := query.New().
		Where("account_type", "savings").
		OrderBy("account_number", true).
		Paginate(1, 2)

	records, total, err := s.accounts.FindMany(s.ctx, q)

	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(records, 2)
	s.Equal("ACC-3", records[0].(*models.BankAccount).AccountNumber)
	s.Equal("ACC-1", records[1].(*models.BankAccount).AccountNumber)
}

func (s *ResourceRepositorySuite) TestFindMany_DefaultsToNewestFirst() {
	s.createAccount("ACC-OLD", 1, "savings")
	time.Sleep(5 * time.Millisecond)
	s.createAccount("ACC-NEW", 2, "savings")

	records, total, err := s.accounts.FindMany(s.ctx, query.New())

	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Equal("ACC-NEW", records[0].(*models.BankAccount).AccountNumber)
}

func (s *ResourceRepositorySuite) TestUpdate_KeepsCreatedAtAndAdvancesUpdatedAt() {
	created := s.createAccount("ACC-1", 100, "savings")
	time.Sleep(5 * time.Millisecond)

	updated, err := s.accounts.Update(s.ctx, created.ID, map[string]interface{}{
		"account_balance": json.Number("250.75"),
		"account_type":    nil,
	})

	s.Require().NoError(err)
	account := updated.(*models.BankAccount)
	s.True(decimal.RequireFromString("250.75").Equal(account.AccountBalance))
	s.Nil(account.AccountType)
	s.Equal("ACC-1", account.AccountNumber)
	s.True(account.UpdatedAt.After(created.UpdatedAt))

	reloaded, err := s.accounts.FindFirst(s.ctx, query.New().WithID(created.ID))
	s.Require().NoError(err)
	stored := reloaded.(*models.BankAccount)
	s.True(stored.CreatedAt.Equal(created.CreatedAt))
	s.False(stored.UpdatedAt.Before(created.UpdatedAt))
	s.Nil(stored.AccountType)
	s.True(decimal.RequireFromString("250.75").Equal(stored.AccountBalance))
}

func (s *ResourceRepositorySuite) TestUpdate_NotFound() {
	_, err := s.accounts.Update(s.ctx, uuid.New(), map[string]interface{}{"account_owner": "Ada"})

	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *ResourceRepositorySuite) TestDelete_ReturnsPriorState() {
	created := s.createAccount("ACC-1", 100, "savings")

	deleted, err := s.accounts.Delete(s.ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, deleted.GetID())
	s.Equal("ACC-1", deleted.(*models.BankAccount).AccountNumber)

	_, err = s.accounts.FindFirst(s.ctx, query.New().WithID(created.ID))
	s.ErrorIs(err, ErrRecordNotFound)

	_, err = s.accounts.Delete(s.ctx, created.ID)
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *ResourceRepositorySuite) TestFindFirst_LoadsRelations() {
	wallets := NewResourceRepository[models.CryptoWallet](s.db.DB)
	transactions := NewResourceRepository[models.CryptoTransaction](s.db.DB)

	wallet := &models.CryptoWallet{WalletAddress: "bc1qwallet0001", Currency: "BTC"}
	s.Require().NoError(wallets.Create(s.ctx, wallet))

	tx := &models.CryptoTransaction{
		Amount:         decimal.RequireFromString("0.25"),
		Currency:       "BTC",
		CryptoWalletID: &wallet.ID,
	}
	s.Require().NoError(transactions.Create(s.ctx, tx))

	found, err := transactions.FindFirst(s.ctx, query.New().WithID(tx.ID).With("crypto_wallet"))
	s.Require().NoError(err)

	loaded := found.(*models.CryptoTransaction)
	s.Require().NotNil(loaded.CryptoWallet)
	s.Equal("bc1qwallet0001", loaded.CryptoWallet.WalletAddress)

	found, err = wallets.FindFirst(s.ctx, query.New().WithID(wallet.ID).With("crypto_transactions"))
	s.Require().NoError(err)
	s.Len(found.(*models.CryptoWallet).CryptoTransactions, 1)
}

func TestResourceRepository_DatabaseErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := NewResourceRepository[models.BankAccount](db)
	connErr := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bank_accounts"`).WillReturnError(connErr)

	_, _, err = repo.FindMany(context.Background(), query.New())
	assert.ErrorIs(t, err, connErr)
	assert.ErrorContains(t, err, "failed to count bank_account records")

	mock.ExpectQuery(`SELECT \* FROM "bank_accounts"`).WillReturnError(connErr)

	_, err = repo.FindFirst(context.Background(), query.New().WithID(uuid.New()))
	assert.ErrorIs(t, err, connErr)
	assert.NotErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
