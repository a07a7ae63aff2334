package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/core/services"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type PriceListServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPriceListRepository
	service  *services.PriceListService
}

func (suite *PriceListServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPriceListRepository)
	suite.service = services.NewPriceListService(suite.mockRepo)
}

func validRequest() dto.PriceListRequest {
	return dto.PriceListRequest{
		Label:    "Insured patients",
		IsActive: true,
		Items: []dto.PriceListItemRequest{
			{InventoryUUID: inventoryABC, Adjustment: &dto.PriceAdjustmentRequest{Type: "PERCENTAGE", Value: decimal.NewFromInt(-10)}},
			{InventoryUUID: inventoryXYZ, Price: decimalPtr("15")},
		},
	}
}

// --- Test Cases ---

func (suite *PriceListServiceTestSuite) TestGetActivePriceList_NoneIsNotAnError() {
	ctx := context.Background()
	suite.mockRepo.On("FindActivePriceList", ctx, 1).Return(nil, apperrors.ErrNotFound).Once()

	list, err := suite.service.GetActivePriceList(ctx, 1)

	suite.Require().NoError(err)
	suite.Nil(list)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceListServiceTestSuite) TestGetActivePriceList_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindActivePriceList", ctx, 1).Return(nil, assert.AnError).Once()

	list, err := suite.service.GetActivePriceList(ctx, 1)

	suite.Nil(list)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *PriceListServiceTestSuite) TestCreatePriceList_Success() {
	ctx := context.Background()
	req := validRequest()

	suite.mockRepo.On("SavePriceList", ctx, mock.MatchedBy(func(l domain.PriceList) bool {
		if l.EnterpriseID != 1 || l.Label != req.Label || !l.IsActive || len(l.Items) != 2 || l.CreatedBy != 7 {
			return false
		}
		for _, item := range l.Items {
			if item.UUID == "" || item.PriceListUUID != l.UUID {
				return false
			}
		}
		return !l.ValidFrom.IsZero()
	})).Return(nil).Once()

	list, err := suite.service.CreatePriceList(ctx, 1, req, 7)

	suite.Require().NoError(err)
	suite.Require().NotNil(list)
	suite.NotEmpty(list.UUID)
	suite.Equal(2, list.ItemCount)
	suite.Equal(domain.AdjustmentPercentage, list.Items[0].Adjustment.Type)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceListServiceTestSuite) TestCreatePriceList_EmptyDraftAllowed() {
	ctx := context.Background()
	req := dto.PriceListRequest{Label: "Draft", Items: nil}
	suite.mockRepo.On("SavePriceList", ctx, mock.AnythingOfType("domain.PriceList")).Return(nil).Once()

	list, err := suite.service.CreatePriceList(ctx, 1, req, 7)

	suite.Require().NoError(err)
	suite.Empty(list.Items)
	suite.False(list.IsActive)
}

func (suite *PriceListServiceTestSuite) TestCreatePriceList_ValidationErrors() {
	ctx := context.Background()

	both := validRequest()
	both.Items[0].Price = decimalPtr("5")

	neither := validRequest()
	neither.Items[1].Price = nil

	duplicate := validRequest()
	duplicate.Items[1].InventoryUUID = inventoryABC

	tooLow := validRequest()
	tooLow.Items[0].Adjustment.Value = decimal.NewFromInt(-101)

	emptyActive := dto.PriceListRequest{Label: "Empty", IsActive: true}

	cases := map[string]dto.PriceListRequest{
		"both price and adjustment": both,
		"neither":                   neither,
		"duplicate inventory":       duplicate,
		"percentage below -100":     tooLow,
		"active without items":      emptyActive,
	}
	for name, req := range cases {
		suite.Run(name, func() {
			list, err := suite.service.CreatePriceList(ctx, 1, req, 7)
			suite.Nil(list)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePriceList", mock.Anything, mock.Anything)
}

func (suite *PriceListServiceTestSuite) TestUpdatePriceList_KeepsCreationAudit() {
	ctx := context.Background()
	listUUID := uuid.NewString()
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.PriceList{
		UUID:         listUUID,
		EnterpriseID: 1,
		Label:        "Old",
		ValidFrom:    created,
		AuditFields:  domain.AuditFields{CreatedAt: created, CreatedBy: 3},
	}
	suite.mockRepo.On("FindPriceListByUUID", ctx, listUUID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePriceList", ctx, mock.MatchedBy(func(l domain.PriceList) bool {
		return l.UUID == listUUID && l.CreatedBy == 3 && l.LastUpdatedBy == 7 && l.ValidFrom.Equal(created) && l.Label == "Insured patients"
	})).Return(nil).Once()

	list, err := suite.service.UpdatePriceList(ctx, 1, listUUID, validRequest(), 7)

	suite.Require().NoError(err)
	suite.Equal(created, list.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceListServiceTestSuite) TestUpdatePriceList_OtherEnterprise() {
	ctx := context.Background()
	listUUID := uuid.NewString()
	suite.mockRepo.On("FindPriceListByUUID", ctx, listUUID).Return(&domain.PriceList{UUID: listUUID, EnterpriseID: 2}, nil).Once()

	list, err := suite.service.UpdatePriceList(ctx, 1, listUUID, validRequest(), 7)

	suite.Nil(list)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePriceList", mock.Anything, mock.Anything)
}

func (suite *PriceListServiceTestSuite) TestDeletePriceList_ReferencedIsConflict() {
	ctx := context.Background()
	listUUID := uuid.NewString()
	suite.mockRepo.On("FindPriceListByUUID", ctx, listUUID).Return(&domain.PriceList{UUID: listUUID, EnterpriseID: 1}, nil).Once()
	suite.mockRepo.On("IsPriceListReferenced", ctx, listUUID).Return(true, nil).Once()

	err := suite.service.DeletePriceList(ctx, 1, listUUID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeletePriceList", mock.Anything, mock.Anything)
}

func (suite *PriceListServiceTestSuite) TestDeletePriceList_UnreferencedSucceeds() {
	ctx := context.Background()
	listUUID := uuid.NewString()
	suite.mockRepo.On("FindPriceListByUUID", ctx, listUUID).Return(&domain.PriceList{UUID: listUUID, EnterpriseID: 1}, nil).Once()
	suite.mockRepo.On("IsPriceListReferenced", ctx, listUUID).Return(false, nil).Once()
	suite.mockRepo.On("DeletePriceList", ctx, listUUID).Return(nil).Once()

	err := suite.service.DeletePriceList(ctx, 1, listUUID)

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PriceListServiceTestSuite) TestDeletePriceList_NotFound() {
	ctx := context.Background()
	listUUID := uuid.NewString()
	suite.mockRepo.On("FindPriceListByUUID", ctx, listUUID).Return(nil, apperrors.NewNotFoundError("price list "+listUUID)).Once()

	err := suite.service.DeletePriceList(ctx, 1, listUUID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PriceListServiceTestSuite) TestUpdatePriceList_SerializedPerList() {
	ctx := context.Background()
	listUUID := uuid.NewString()
	var inFlight, maxInFlight int32

	suite.mockRepo.On("FindPriceListByUUID", ctx, listUUID).Return(&domain.PriceList{UUID: listUUID, EnterpriseID: 1}, nil)
	suite.mockRepo.On("UpdatePriceList", ctx, mock.AnythingOfType("domain.PriceList")).Run(func(mock.Arguments) {
		n := atomic.AddInt32(&inFlight, 1)
		if n > atomic.LoadInt32(&maxInFlight) {
			atomic.StoreInt32(&maxInFlight, n)
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
	}).Return(nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.UpdatePriceList(ctx, 1, listUUID, validRequest(), 7)
			suite.NoError(err)
		}()
	}
	wg.Wait()

	suite.Equal(int32(1), atomic.LoadInt32(&maxInFlight))
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "UpdatePriceList", 5)
}

func (suite *PriceListServiceTestSuite) TestListPriceLists_EmptySlice() {
	ctx := context.Background()
	suite.mockRepo.On("ListPriceLists", ctx, 1, true).Return(nil, nil).Once()

	lists, err := suite.service.ListPriceLists(ctx, 1, true)

	suite.Require().NoError(err)
	suite.NotNil(lists)
	suite.Empty(lists)
}

func TestPriceListService(t *testing.T) {
	suite.Run(t, new(PriceListServiceTestSuite))
}
