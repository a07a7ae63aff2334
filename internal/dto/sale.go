package dto

import (
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleDetails is the invoice header sent by the invoicing form. project_id
// and currency_id are optional and ignored in favour of the session.
type SaleDetails struct {
	DebtorUUID  string    `json:"debtor_uuid" binding:"required,uuid"`
	Date        time.Time `json:"date" binding:"required"`
	Description string    `json:"description" binding:"max=255"`
	ProjectID   int       `json:"project_id"`
	CurrencyID  int       `json:"currency_id"`
}

// SaleItemRequest is an invoice line. The camel-cased fields are populated by
// the invoicing form for display and never persisted.
type SaleItemRequest struct {
	InventoryUUID string          `json:"inventory_uuid" binding:"required,uuid"`
	Quantity      int64           `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unit_price"`

	SourceInventoryItem map[string]any `json:"sourceInventoryItem,omitempty"`
	Description         string         `json:"description,omitempty"`
	Confirmed           bool           `json:"confirmed,omitempty"`
	Code                string         `json:"code,omitempty"`
	PriceListApplied    bool           `json:"priceListApplied,omitempty"`
}

// CreateSaleRequest is the body of POST /sales.
type CreateSaleRequest struct {
	Sale      SaleDetails       `json:"sale" binding:"required"`
	SaleItems []SaleItemRequest `json:"saleItems" binding:"dive"`
}

// ToDraft splits the request into the domain draft types.
func (r CreateSaleRequest) ToDraft() (domain.SaleDraft, []domain.SaleItemDraft) {
	draft := domain.SaleDraft{
		DebtorUUID:  r.Sale.DebtorUUID,
		Date:        r.Sale.Date,
		Description: r.Sale.Description,
		ProjectID:   r.Sale.ProjectID,
		CurrencyID:  r.Sale.CurrencyID,
	}
	items := make([]domain.SaleItemDraft, 0, len(r.SaleItems))
	for _, in := range r.SaleItems {
		items = append(items, domain.SaleItemDraft{
			InventoryUUID:       in.InventoryUUID,
			Quantity:            in.Quantity,
			UnitPrice:           in.UnitPrice,
			SourceInventoryItem: in.SourceInventoryItem,
			Description:         in.Description,
			Confirmed:           in.Confirmed,
			Code:                in.Code,
			PriceListApplied:    in.PriceListApplied,
		})
	}
	return draft, items
}
