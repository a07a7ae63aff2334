package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the rate of one currency against the enterprise
// currency from a given date.
type ExchangeRate struct {
	ID           int             `json:"id"`
	EnterpriseID int             `json:"enterpriseID"`
	CurrencyID   int             `json:"currencyID"`
	Rate         decimal.Decimal `json:"rate"`
	Date         time.Time       `json:"date"`
	AuditFields
}
