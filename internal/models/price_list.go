package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceList represents a row of the price_list table.
type PriceList struct {
	UUID         string     `json:"uuid"`
	EnterpriseID int        `json:"enterpriseID"`
	Label        string     `json:"label"`
	Description  string     `json:"description"`
	IsActive     bool       `json:"isActive"`
	ValidFrom    time.Time  `json:"validFrom"`
	ValidUntil   *time.Time `json:"validUntil"`
	ItemCount    int        `json:"itemCount"`
	AuditFields
}

// PriceListItem represents a row of the price_list_item table. Either Price
// or the adjustment pair is set; a CHECK constraint enforces it.
type PriceListItem struct {
	UUID            string              `json:"uuid"`
	PriceListUUID   string              `json:"priceListUUID"`
	InventoryUUID   string              `json:"inventoryUUID"`
	Label           string              `json:"label"`
	Price           decimal.NullDecimal `json:"price"`
	AdjustmentType  *string             `json:"adjustmentType"`
	AdjustmentValue decimal.NullDecimal `json:"adjustmentValue"`
	CreatedAt       time.Time           `json:"createdAt"`
}
