package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/core/services"
	"github.com/storekhata/storekhata_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  *services.CustomerService
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_StartsWithZeroBalances() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCustomerRequest{Name: "Rahim Uddin", Phone: "01711000000", Address: "Mirpur 10"}

	var saved domain.Customer
	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Customer)
		}).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerID)
	suite.True(saved.TotalBorrowed.IsZero())
	suite.True(saved.TotalRepaid.IsZero())
	suite.True(customer.AmountDue().IsZero())
	suite.Equal(creatorUserID, saved.CreatedBy)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicatePhone() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Rahim Uddin", Phone: "01711000000"}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(apperrors.ErrDuplicate).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(customer)
}

// TestUpdateCustomer_CannotTouchAccumulators pins down that a contact-info
// update leaves the credit accumulators exactly as they were read.
func (suite *CustomerServiceTestSuite) TestUpdateCustomer_CannotTouchAccumulators() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{
		CustomerID:    customerID,
		Name:          "Old Name",
		Phone:         "01711000000",
		TotalBorrowed: decimal.NewFromInt(900),
		TotalRepaid:   decimal.NewFromInt(200),
	}

	newName := "New Name"
	req := dto.UpdateCustomerRequest{Name: &newName}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()

	var updated domain.Customer
	suite.mockRepo.On("UpdateCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Customer)
		}).Return(nil).Once()

	customer, err := suite.service.UpdateCustomer(ctx, customerID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("New Name", customer.Name)
	suite.True(updated.TotalBorrowed.Equal(decimal.NewFromInt(900)))
	suite.True(updated.TotalRepaid.Equal(decimal.NewFromInt(200)))
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_EmptyNameRejected() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{CustomerID: customerID, Name: "Someone"}

	empty := ""
	req := dto.UpdateCustomerRequest{Name: &empty}

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()

	customer, err := suite.service.UpdateCustomer(ctx, customerID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(customer)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCustomer")
}

func (suite *CustomerServiceTestSuite) TestGetCustomerByID_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.GetCustomerByID(ctx, customerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(customer)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
