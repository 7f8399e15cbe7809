package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/core/services"
	"github.com/storekhata/storekhata_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockSaleRepository is a mock type for the SaleRepository interface
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, allowNegativeStock bool) error {
	args := m.Called(ctx, sale, items, allowNegativeStock)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleItem), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, limit int, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

// MockProductRepository is a mock type for the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductsByIDsForUpdate(ctx context.Context, tx pgx.Tx, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, tx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ApplyStockDecrementsInTx(ctx context.Context, tx pgx.Tx, decrements map[string]int, allowNegativeStock bool, userID string, now time.Time) error {
	args := m.Called(ctx, tx, decrements, allowNegativeStock, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo     *MockSaleRepository
	mockProductRepo  *MockProductRepository
	mockCustomerRepo *MockCustomerRepository
	service          *services.SaleService
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockProductRepo, suite.mockCustomerRepo, false)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

// --- Test Cases ---

func (suite *SaleServiceTestSuite) TestCreateSale_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	productA := uuid.NewString()
	productB := uuid.NewString()

	req := dto.CreateSaleRequest{
		PaymentStatus: domain.Paid,
		Items: []dto.SaleItemRequest{
			{ProductID: productA, Quantity: 2, UnitPrice: decimalPtr(decimal.NewFromInt(30))},
			{ProductID: productB, Quantity: 1, UnitPrice: decimalPtr(decimal.NewFromInt(45))},
		},
	}

	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem"), false).Return(nil).Once()

	sale, items, err := suite.service.CreateSale(ctx, req, &actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Len(items, 2)
	// 2*30 + 1*45
	suite.True(sale.TotalAmount.Equal(decimal.NewFromInt(105)), "total = %s", sale.TotalAmount)
	suite.Equal(domain.Paid, sale.PaymentStatus)
	suite.Require().NotNil(sale.CreatedBy)
	suite.Equal(actorID, *sale.CreatedBy)
	for _, item := range items {
		suite.Equal(sale.SaleID, item.SaleID)
		suite.NotEmpty(item.SaleItemID)
	}
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_DefaultsToCatalogPrice() {
	ctx := context.Background()
	productID := uuid.NewString()
	product := &domain.Product{
		ProductID: productID,
		Name:      "Rice 5kg",
		UnitPrice: decimal.NewFromInt(550),
	}

	req := dto.CreateSaleRequest{
		PaymentStatus: domain.Paid,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: 3}, // no price supplied
		},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(product, nil).Once()
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem"), false).Return(nil).Once()

	sale, items, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.True(items[0].UnitPrice.Equal(decimal.NewFromInt(550)))
	suite.True(sale.TotalAmount.Equal(decimal.NewFromInt(1650)))
}

func (suite *SaleServiceTestSuite) TestCreateSale_ProductMissing() {
	ctx := context.Background()
	productID := uuid.NewString()

	req := dto.CreateSaleRequest{
		PaymentStatus: domain.Paid,
		Items: []dto.SaleItemRequest{
			{ProductID: productID, Quantity: 1},
		},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(nil, apperrors.ErrNotFound).Once()

	sale, items, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(sale)
	suite.Nil(items)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_CustomerMissing() {
	ctx := context.Background()
	customerID := uuid.NewString()

	req := dto.CreateSaleRequest{
		CustomerID:    &customerID,
		PaymentStatus: domain.Credit,
		Items: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimalPtr(decimal.NewFromInt(10))},
		},
	}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	sale, _, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_EmptyItems() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{PaymentStatus: domain.Paid, Items: []dto.SaleItemRequest{}}

	sale, _, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sale)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale")
}

func (suite *SaleServiceTestSuite) TestCreateSale_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PaymentStatus: domain.Paid,
		Items: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Quantity: 0, UnitPrice: decimalPtr(decimal.NewFromInt(10))},
		},
	}

	sale, _, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sale)
}

// TestCreateSale_InsufficientStockLeavesNothingBehind verifies that a
// shortage on any line fails the whole request and the caller gets no
// partial sale back.
func (suite *SaleServiceTestSuite) TestCreateSale_InsufficientStockLeavesNothingBehind() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PaymentStatus: domain.Paid,
		Items: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Quantity: 2, UnitPrice: decimalPtr(decimal.NewFromInt(20))},
			{ProductID: uuid.NewString(), Quantity: 500, UnitPrice: decimalPtr(decimal.NewFromInt(5))},
		},
	}

	// The unit of work rejects the second decrement and rolls everything back.
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem"), false).
		Return(apperrors.ErrInsufficientStock).Once()

	sale, items, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Nil(sale)
	suite.Nil(items)
}

func (suite *SaleServiceTestSuite) TestCreateSale_TotalMatchesLineSum() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		PaymentStatus: domain.Credit,
		Items: []dto.SaleItemRequest{
			{ProductID: uuid.NewString(), Quantity: 3, UnitPrice: decimalPtr(decimal.RequireFromString("12.50"))},
			{ProductID: uuid.NewString(), Quantity: 7, UnitPrice: decimalPtr(decimal.RequireFromString("0.75"))},
			{ProductID: uuid.NewString(), Quantity: 1, UnitPrice: decimalPtr(decimal.RequireFromString("99.99"))},
		},
	}

	var captured domain.Sale
	suite.mockSaleRepo.On("SaveSale", ctx, mock.AnythingOfType("domain.Sale"), mock.AnythingOfType("[]domain.SaleItem"), false).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Sale)
		}).Return(nil).Once()

	sale, items, err := suite.service.CreateSale(ctx, req, nil)

	suite.Require().NoError(err)
	want := domain.ComputeSaleTotal(items)
	suite.True(sale.TotalAmount.Equal(want))
	// 3*12.50 + 7*0.75 + 99.99 = 142.74
	suite.True(sale.TotalAmount.Equal(decimal.RequireFromString("142.74")), "total = %s", sale.TotalAmount)
	suite.True(captured.TotalAmount.Equal(sale.TotalAmount))
}

func (suite *SaleServiceTestSuite) TestGetSaleWithItems_NotFound() {
	ctx := context.Background()
	saleID := uuid.NewString()

	suite.mockSaleRepo.On("FindSaleByID", ctx, saleID).Return(nil, apperrors.ErrNotFound).Once()

	sale, items, err := suite.service.GetSaleWithItems(ctx, saleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(sale)
	suite.Nil(items)
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
