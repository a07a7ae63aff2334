package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleDraft is the header of a patient invoice as submitted by a client.
// ProjectID and CurrencyID are accepted but always replaced by the session.
type SaleDraft struct {
	DebtorUUID  string
	Date        time.Time
	Description string
	ProjectID   int
	CurrencyID  int
}

// SaleItemDraft is an invoice line as the client sends it. The last five
// fields only exist for the invoicing form and are never stored.
type SaleItemDraft struct {
	InventoryUUID string
	Quantity      int64
	UnitPrice     decimal.Decimal

	SourceInventoryItem map[string]any
	Description         string
	Confirmed           bool
	Code                string
	PriceListApplied    bool
}

// SaleItem is the persisted form of an invoice line.
type SaleItem struct {
	UUID             string          `json:"uuid"`
	SaleUUID         string          `json:"saleUUID"`
	InventoryUUID    string          `json:"inventoryUUID"`
	Quantity         int64           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`        // catalog price as submitted
	TransactionPrice decimal.Decimal `json:"transactionPrice"` // price after the active price list
	Total            decimal.Decimal `json:"total"`
}

// NewSaleItem copies the billing fields of a draft line. Form-only fields have
// no counterpart here and are dropped.
func NewSaleItem(draft SaleItemDraft) SaleItem {
	return SaleItem{
		InventoryUUID:    draft.InventoryUUID,
		Quantity:         draft.Quantity,
		UnitPrice:        draft.UnitPrice,
		TransactionPrice: draft.UnitPrice,
	}
}

// Sale is a patient invoice.
type Sale struct {
	UUID      string `json:"uuid"`
	ProjectID int    `json:"projectID"`
	// EnterpriseID is derived from the project and not stored on the row.
	EnterpriseID int             `json:"enterpriseID"`
	CurrencyID   int             `json:"currencyID"`
	DebtorUUID   string          `json:"debtorUUID"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Items        []SaleItem      `json:"items"`
	Cost         decimal.Decimal `json:"cost"`
	AuditFields
}
