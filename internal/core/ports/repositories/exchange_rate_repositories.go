package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateAsOf retrieves the most recent rate dated on or before asOf.
	// It returns apperrors.ErrNotFound when no such record exists.
	FindExchangeRateAsOf(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves one page of an enterprise's rates, newest
	// first, and the token of the next page (nil on the last page).
	ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate appends a new exchange rate and returns its id.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (int, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
