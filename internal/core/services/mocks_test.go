package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PriceListRepository ---
type MockPriceListRepository struct {
	mock.Mock
}

func (m *MockPriceListRepository) FindPriceListByUUID(ctx context.Context, priceListUUID string) (*domain.PriceList, error) {
	args := m.Called(ctx, priceListUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) FindActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) FindPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error) {
	args := m.Called(ctx, priceListUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceListItem), args.Error(1)
}

func (m *MockPriceListRepository) ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, detailed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) IsPriceListReferenced(ctx context.Context, priceListUUID string) (bool, error) {
	args := m.Called(ctx, priceListUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPriceListRepository) SavePriceList(ctx context.Context, list domain.PriceList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockPriceListRepository) UpdatePriceList(ctx context.Context, list domain.PriceList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockPriceListRepository) DeletePriceList(ctx context.Context, priceListUUID string) error {
	args := m.Called(ctx, priceListUUID)
	return args.Error(0)
}

// --- Mock PriceListReaderSvc ---
type MockPriceListReader struct {
	mock.Mock
}

func (m *MockPriceListReader) GetActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListReader) GetPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error) {
	args := m.Called(ctx, priceListUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceListItem), args.Error(1)
}

func (m *MockPriceListReader) GetPriceList(ctx context.Context, enterpriseID int, priceListUUID string) (*domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, priceListUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}

func (m *MockPriceListReader) ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error) {
	args := m.Called(ctx, enterpriseID, detailed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriceList), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateAsOf(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, enterpriseID, currencyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
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

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (int, error) {
	args := m.Called(ctx, rate)
	return args.Int(0), args.Error(1)
}

// --- Mock ExchangeRateReaderSvc ---
type MockExchangeRateReader struct {
	mock.Mock
}

func (m *MockExchangeRateReader) ResolveExchangeRate(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, enterpriseID, currencyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateReader) ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
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

func (m *MockExchangeRateReader) ConvertToEnterprise(ctx context.Context, session domain.SessionContext, currencyID int, amount decimal.Decimal, asOf time.Time) (decimal.Decimal, *domain.ExchangeRate, error) {
	args := m.Called(ctx, session, currencyID, amount, asOf)
	var rate *domain.ExchangeRate
	if args.Get(1) != nil {
		rate = args.Get(1).(*domain.ExchangeRate)
	}
	return args.Get(0).(decimal.Decimal), rate, args.Error(2)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByUUID(ctx context.Context, saleUUID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

// --- Mock lookups ---
type MockCashPaymentRepository struct {
	mock.Mock
}

func (m *MockCashPaymentRepository) FindCashPaymentByUUID(ctx context.Context, paymentUUID string) (*domain.CashPayment, error) {
	args := m.Called(ctx, paymentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashPayment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID int, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindPatientByDebtorUUID(ctx context.Context, debtorUUID string) (*domain.Patient, error) {
	args := m.Called(ctx, debtorUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Patient), args.Error(1)
}

type MockEnterpriseRepository struct {
	mock.Mock
}

func (m *MockEnterpriseRepository) FindEnterpriseByProjectID(ctx context.Context, projectID int) (*domain.Enterprise, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enterprise), args.Error(1)
}

func (m *MockEnterpriseRepository) FindProjectByID(ctx context.Context, projectID int) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
