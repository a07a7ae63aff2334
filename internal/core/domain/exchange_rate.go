package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a historical rate for one foreign currency of an enterprise.
// Rate is the number of foreign currency units bought by one unit of the
// enterprise currency. A record is valid from Date until a later record for the
// same (enterprise, currency) supersedes it.
type ExchangeRate struct {
	ID           int             `json:"id"`
	EnterpriseID int             `json:"enterpriseID"`
	CurrencyID   int             `json:"currencyID"`
	Rate         decimal.Decimal `json:"rate"`
	Date         time.Time       `json:"date"`
	AuditFields
}

// ToEnterprise converts an amount expressed in the foreign currency into the
// enterprise currency.
func (r ExchangeRate) ToEnterprise(foreign decimal.Decimal) decimal.Decimal {
	if r.Rate.IsZero() {
		return decimal.Zero
	}
	return foreign.Div(r.Rate)
}

// FromEnterprise converts an enterprise currency amount into the foreign currency.
func (r ExchangeRate) FromEnterprise(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(r.Rate)
}
