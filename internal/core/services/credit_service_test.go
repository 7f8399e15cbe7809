package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/core/services"
	"github.com/storekhata/storekhata_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jackc/pgx/v5"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByCustomerID(ctx context.Context, customerID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, customerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockCustomerRepository is a mock type for the CustomerRepository interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByIDForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, tx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ApplyCreditDeltaInTx(ctx context.Context, tx pgx.Tx, customerID string, kind domain.TransactionType, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, customerID, kind, amount, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CreditServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCustomerRepo *MockCustomerRepository
	service          *services.CreditService
}

func (suite *CreditServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewCreditService(suite.mockTxnRepo, suite.mockCustomerRepo)
}

// --- Test Cases ---

func (suite *CreditServiceTestSuite) TestRecordTransaction_BorrowSuccess() {
	ctx := context.Background()
	customerID := uuid.NewString()
	actorID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Borrow,
		Amount:          decimal.NewFromInt(500),
		Description:     "goods on credit",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, customerID, req, &actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(customerID, txn.CustomerID)
	suite.Equal(domain.Borrow, txn.TransactionType)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(500)))
	suite.Require().NotNil(txn.CreatedBy)
	suite.Equal(actorID, *txn.CreatedBy)
	suite.False(txn.CreatedAt.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *CreditServiceTestSuite) TestRecordTransaction_NilActor() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Repay,
		Amount:          decimal.NewFromInt(100),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, uuid.NewString(), req, nil)

	suite.Require().NoError(err)
	suite.Nil(txn.CreatedBy)
}

func (suite *CreditServiceTestSuite) TestRecordTransaction_RejectsZeroAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Borrow,
		Amount:          decimal.Zero,
	}

	txn, err := suite.service.RecordTransaction(ctx, uuid.NewString(), req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *CreditServiceTestSuite) TestRecordTransaction_RejectsNegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Repay,
		Amount:          decimal.NewFromInt(-50),
	}

	txn, err := suite.service.RecordTransaction(ctx, uuid.NewString(), req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *CreditServiceTestSuite) TestRecordTransaction_RejectsUnknownType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		TransactionType: "ADJUST",
		Amount:          decimal.NewFromInt(10),
	}

	txn, err := suite.service.RecordTransaction(ctx, uuid.NewString(), req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
}

func (suite *CreditServiceTestSuite) TestRecordTransaction_CustomerMissing() {
	ctx := context.Background()
	customerID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		TransactionType: domain.Borrow,
		Amount:          decimal.NewFromInt(100),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, customerID, req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *CreditServiceTestSuite) TestListTransactions_CustomerMissing() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	txns, err := suite.service.ListTransactionsByCustomerID(ctx, customerID, 20, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txns)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByCustomerID")
}

func (suite *CreditServiceTestSuite) TestListTransactions_EmptyHistoryIsNotAnError() {
	ctx := context.Background()
	customerID := uuid.NewString()
	customer := &domain.Customer{CustomerID: customerID}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(customer, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByCustomerID", ctx, customerID, 20, 0).Return([]domain.Transaction{}, nil).Once()

	txns, err := suite.service.ListTransactionsByCustomerID(ctx, customerID, 20, 0)

	suite.Require().NoError(err)
	suite.Empty(txns)
}

func TestCreditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CreditServiceTestSuite))
}

// --- Accumulator consistency ---

// accumulatingTxnRepo mimics the persistence contract: every accepted
// transaction both lands in the log and bumps the matching accumulator,
// atomically from the caller's point of view.
type accumulatingTxnRepo struct {
	mu       sync.Mutex
	log      []domain.Transaction
	borrowed decimal.Decimal
	repaid   decimal.Decimal
}

func newAccumulatingTxnRepo() *accumulatingTxnRepo {
	return &accumulatingTxnRepo{borrowed: decimal.Zero, repaid: decimal.Zero}
}

func (r *accumulatingTxnRepo) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = append(r.log, txn)
	switch txn.TransactionType {
	case domain.Borrow:
		r.borrowed = r.borrowed.Add(txn.Amount)
	case domain.Repay:
		r.repaid = r.repaid.Add(txn.Amount)
	}
	return nil
}

func (r *accumulatingTxnRepo) ListTransactionsByCustomerID(_ context.Context, _ string, _ int, _ int) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Transaction, len(r.log))
	copy(out, r.log)
	return out, nil
}

// TestAccumulatorsMatchReplayedLog records a mixed history and verifies the
// maintained accumulators equal a from-scratch replay of the log.
func TestAccumulatorsMatchReplayedLog(t *testing.T) {
	ctx := context.Background()
	repo := newAccumulatingTxnRepo()
	svc := services.NewCreditService(repo, new(MockCustomerRepository))
	customerID := uuid.NewString()

	history := []struct {
		kind   domain.TransactionType
		amount int64
	}{
		{domain.Borrow, 1500},
		{domain.Repay, 800},
		{domain.Borrow, 250},
		{domain.Repay, 700},
		{domain.Borrow, 90},
	}
	for _, h := range history {
		_, err := svc.RecordTransaction(ctx, customerID, dto.CreateTransactionRequest{
			TransactionType: h.kind,
			Amount:          decimal.NewFromInt(h.amount),
		}, nil)
		if err != nil {
			t.Fatalf("RecordTransaction failed: %v", err)
		}
	}

	// Replay the log from scratch.
	log, err := repo.ListTransactionsByCustomerID(ctx, customerID, 0, 0)
	if err != nil {
		t.Fatalf("listing log failed: %v", err)
	}
	replayBorrowed, replayRepaid := decimal.Zero, decimal.Zero
	for _, txn := range log {
		switch txn.TransactionType {
		case domain.Borrow:
			replayBorrowed = replayBorrowed.Add(txn.Amount)
		case domain.Repay:
			replayRepaid = replayRepaid.Add(txn.Amount)
		}
	}

	if !repo.borrowed.Equal(replayBorrowed) {
		t.Errorf("totalBorrowed accumulator %s != replayed %s", repo.borrowed, replayBorrowed)
	}
	if !repo.repaid.Equal(replayRepaid) {
		t.Errorf("totalRepaid accumulator %s != replayed %s", repo.repaid, replayRepaid)
	}

	// 1500+250+90 borrowed, 800+700 repaid: due = 340.
	due := repo.borrowed.Sub(repo.repaid)
	if !due.Equal(decimal.NewFromInt(340)) {
		t.Errorf("amount due = %s, want 340", due)
	}
}

// TestConcurrentBorrowsSumExactly drives many concurrent borrow events and
// verifies no update is lost: the accumulator equals the exact sum.
func TestConcurrentBorrowsSumExactly(t *testing.T) {
	ctx := context.Background()
	repo := newAccumulatingTxnRepo()
	svc := services.NewCreditService(repo, new(MockCustomerRepository))
	customerID := uuid.NewString()

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RecordTransaction(ctx, customerID, dto.CreateTransactionRequest{
				TransactionType: domain.Borrow,
				Amount:          decimal.NewFromInt(10),
			}, nil)
			if err != nil {
				t.Errorf("RecordTransaction failed: %v", err)
			}
		}()
	}
	wg.Wait()

	want := decimal.NewFromInt(workers * 10)
	if !repo.borrowed.Equal(want) {
		t.Errorf("totalBorrowed = %s after %d concurrent borrows, want %s", repo.borrowed, workers, want)
	}
	if len(repo.log) != workers {
		t.Errorf("log has %d rows, want %d", len(repo.log), workers)
	}
}
