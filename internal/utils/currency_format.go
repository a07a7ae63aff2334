package utils

import (
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EffectivePrecision returns the minor-unit precision of a currency, falling
// back to domain.DefaultCurrencyPrecision for records without one.
func EffectivePrecision(currency domain.Currency) int {
	if currency.Precision < 0 {
		return domain.DefaultCurrencyPrecision
	}
	return currency.Precision
}

// RoundToCurrency rounds half-to-even at the currency precision.
// Example: 2.125 with CDF (precision 2) returns 2.12
// Example: 1234.5 with a precision 0 currency returns 1234
func RoundToCurrency(amount decimal.Decimal, currency domain.Currency) decimal.Decimal {
	return amount.RoundBank(int32(EffectivePrecision(currency)))
}
