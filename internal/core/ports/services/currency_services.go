package services

import (
	"context"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency.
	GetCurrencyByID(ctx context.Context, currencyID int) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ResolveExchangeRate returns the most recent rate dated on or before asOf.
	// A missing rate is reported as nil, nil.
	ResolveExchangeRate(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates returns one page of the rate history of an enterprise,
	// newest first, and the token of the next page.
	ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error)

	// ConvertToEnterprise converts amount from currencyID into the session
	// enterprise currency at the rate effective on asOf. The rate is nil when
	// currencyID already is the enterprise currency.
	ConvertToEnterprise(ctx context.Context, session domain.SessionContext, currencyID int, amount decimal.Decimal, asOf time.Time) (decimal.Decimal, *domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate appends a new rate for the session enterprise.
	CreateExchangeRate(ctx context.Context, session domain.SessionContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
