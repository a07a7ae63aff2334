package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
)

// CurrencyService provides read access to currencies.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyReader
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyReader) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %d: %w", currencyID, err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
