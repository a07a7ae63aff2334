package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a row of the sale table.
type Sale struct {
	UUID         string          `json:"uuid"`
	ProjectID    int             `json:"projectID"`
	EnterpriseID int             `json:"enterpriseID"` // from project, read only
	CurrencyID   int             `json:"currencyID"`
	DebtorUUID   string          `json:"debtorUUID"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Cost         decimal.Decimal `json:"cost"`
	AuditFields
}

// SaleItem represents a row of the sale_item table.
type SaleItem struct {
	UUID             string          `json:"uuid"`
	SaleUUID         string          `json:"saleUUID"`
	InventoryUUID    string          `json:"inventoryUUID"`
	Quantity         int64           `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	TransactionPrice decimal.Decimal `json:"transactionPrice"`
	Total            decimal.Decimal `json:"total"`
}
