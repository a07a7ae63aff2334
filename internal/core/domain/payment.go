package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashPayment is a payment received at a cash window. A caution payment is a
// deposit held against future care rather than the settlement of a sale.
type CashPayment struct {
	UUID        string          `json:"uuid"`
	Reference   string          `json:"reference"`
	DebtorUUID  string          `json:"debtorUUID"`
	ProjectID   int             `json:"projectID"`
	CurrencyID  int             `json:"currencyID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	IsCaution   bool            `json:"isCaution"`
	UserID      int             `json:"userID"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
