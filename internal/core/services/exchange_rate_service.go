package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/SscSPs/hospital_billing_app/internal/utils"
	"github.com/SscSPs/hospital_billing_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	now          func() time.Time
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		now:          time.Now,
	}
}

// ResolveExchangeRate returns the rate with the greatest date on or before
// asOf. No rate is a normal outcome and yields nil, nil.
func (s *ExchangeRateService) ResolveExchangeRate(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateAsOf(ctx, enterpriseID, currencyID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No exchange rate on or before date",
				slog.Int("enterprise_id", enterpriseID),
				slog.Int("currency_id", currencyID),
				slog.Time("as_of", asOf))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates returns one page of the rate history of an enterprise.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	rates, next, err := s.rateRepo.ListExchangeRates(ctx, enterpriseID, pagination.ClampLimit(limit), nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, next, nil
}

// ConvertToEnterprise converts amount into the enterprise currency, rounded
// half-to-even at the enterprise currency precision.
func (s *ExchangeRateService) ConvertToEnterprise(ctx context.Context, session domain.SessionContext, currencyID int, amount decimal.Decimal, asOf time.Time) (decimal.Decimal, *domain.ExchangeRate, error) {
	enterpriseCurrency, err := s.currencyRepo.FindCurrencyByID(ctx, session.CurrencyID)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to load enterprise currency: %w", err)
	}
	if currencyID == session.CurrencyID {
		return utils.RoundToCurrency(amount, *enterpriseCurrency), nil, nil
	}

	rate, err := s.ResolveExchangeRate(ctx, session.EnterpriseID, currencyID, asOf)
	if err != nil {
		return decimal.Zero, nil, err
	}
	if rate == nil {
		return decimal.Zero, nil, fmt.Errorf("%w: no exchange rate for currency %d on or before %s",
			apperrors.ErrNotFound, currencyID, asOf.Format(time.DateOnly))
	}
	return utils.RoundToCurrency(rate.ToEnterprise(amount), *enterpriseCurrency), rate, nil
}

// CreateExchangeRate appends a rate for a foreign currency of the session enterprise.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, session domain.SessionContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	if req.CurrencyID == session.CurrencyID {
		return nil, fmt.Errorf("%w: the enterprise currency has no exchange rate", apperrors.ErrValidation)
	}
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, req.CurrencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %d not found", apperrors.ErrValidation, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to validate currency %d: %w", req.CurrencyID, err)
	}

	now := s.now()
	rate := domain.ExchangeRate{
		EnterpriseID: session.EnterpriseID,
		CurrencyID:   req.CurrencyID,
		Rate:         req.Rate,
		Date:         req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}

	id, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a rate for currency %d is already recorded at %s",
				apperrors.ErrConflict, req.CurrencyID, req.Date.Format(time.RFC3339))
		}
		s.LogError(ctx, err, "Failed to save exchange rate", slog.Int("currency_id", req.CurrencyID))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}
	rate.ID = id

	s.LogInfo(ctx, "Exchange rate recorded", slog.Int("exchange_rate_id", id), slog.Int("currency_id", rate.CurrencyID))
	return &rate, nil
}
