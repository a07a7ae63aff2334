package domain

import "github.com/shopspring/decimal"

// ReceiptPayload is everything a cash receipt template needs. It is assembled
// per request and never stored.
type ReceiptPayload struct {
	Payment    CashPayment      `json:"payment"`
	User       User             `json:"user"`
	Patient    Patient          `json:"patient"`
	Enterprise Enterprise       `json:"enterprise"`
	Currency   *Currency        `json:"currency,omitempty"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
	HasRate    bool             `json:"hasRate"`
}
