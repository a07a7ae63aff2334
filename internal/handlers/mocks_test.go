package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/SscSPs/hospital_billing_app/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string, projectID int) (string, time.Time, error) {
	args := m.Called(ctx, username, password, projectID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockAuthService) Session(ctx context.Context, userID, projectID int) (*domain.SessionContext, error) {
	args := m.Called(ctx, userID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionContext), args.Error(1)
}

// --- Mock PriceListService ---
type MockPriceListService struct {
	mock.Mock
}

func (m *MockPriceListService) GetActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListService) GetPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error) {
	args := m.Called(ctx, priceListUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceListItem), args.Error(1)
}

func (m *MockPriceListService) GetPriceList(ctx context.Context, enterpriseID int, priceListUUID string) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, priceListUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListService) ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, detailed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceList), args.Error(1)
}

func (m *MockPriceListService) CreatePriceList(ctx context.Context, enterpriseID int, req dto.PriceListRequest, userID int) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListService) UpdatePriceList(ctx context.Context, enterpriseID int, priceListUUID string, req dto.PriceListRequest, userID int) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, priceListUUID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListService) DeletePriceList(ctx context.Context, enterpriseID int, priceListUUID string) error {
	args := m.Called(ctx, enterpriseID, priceListUUID)
	return args.Error(0)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ResolveExchangeRate(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, enterpriseID, currencyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	args := m.Called(ctx, enterpriseID, limit, nextToken)
	var rates []domain.ExchangeRate
	if args.Get(0) != nil {
		rates = args.Get(0).([]domain.ExchangeRate)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return rates, next, args.Error(2)
}

func (m *MockExchangeRateService) ConvertToEnterprise(ctx context.Context, session domain.SessionContext, currencyID int, amount decimal.Decimal, asOf time.Time) (decimal.Decimal, *domain.ExchangeRate, error) {
	args := m.Called(ctx, session, currencyID, amount, asOf)
	var rate *domain.ExchangeRate
	if args.Get(1) != nil {
		rate = args.Get(1).(*domain.ExchangeRate)
	}
	return args.Get(0).(decimal.Decimal), rate, args.Error(2)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, session domain.SessionContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID int) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetSale(ctx context.Context, enterpriseID int, saleUUID string) (*domain.Sale, error) {
	args := m.Called(ctx, enterpriseID, saleUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockInvoiceService) CreateSale(ctx context.Context, draft domain.SaleDraft, items []domain.SaleItemDraft, session domain.SessionContext) (*domain.Sale, error) {
	args := m.Called(ctx, draft, items, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) BuildCashReceipt(ctx context.Context, paymentUUID string, opts report.Options) (*report.Result, error) {
	args := m.Called(ctx, paymentUUID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Result), args.Error(1)
}

// Ensure mocks implement the interfaces
// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var (
	_ portssvc.AuthSvc               = (*MockAuthService)(nil)
	_ portssvc.PriceListSvcFacade    = (*MockPriceListService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
	_ portssvc.CurrencyReaderSvc     = (*MockCurrencyService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*MockInvoiceService)(nil)
	_ portssvc.ReceiptSvc            = (*MockReceiptService)(nil)
	_ portssvc.UserReaderSvc         = (*MockUserService)(nil)
)
