package mapping

import (
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/models"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:        m.ID,
		Name:      m.Name,
		Symbol:    m.Symbol,
		Code:      m.Code,
		Precision: m.Precision,
	}
}

// ToDomainCurrencySlice converts a slice of model Currency to a slice of domain Currency
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
