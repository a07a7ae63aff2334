package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentType tells how a PriceAdjustment modifies a catalog price.
type AdjustmentType string

const (
	AdjustmentPercentage AdjustmentType = "PERCENTAGE"
	AdjustmentFlat       AdjustmentType = "FLAT"
)

// PriceAdjustment is a relative change applied to the catalog price. A
// percentage of -10 lowers the price by ten percent; a flat value is a signed
// delta in the enterprise currency.
type PriceAdjustment struct {
	Type  AdjustmentType  `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// PriceListItem overrides the price of one inventory item. Exactly one of
// Price and Adjustment is set.
type PriceListItem struct {
	UUID          string           `json:"uuid"`
	PriceListUUID string           `json:"priceListUUID"`
	InventoryUUID string           `json:"inventoryUUID"`
	Label         string           `json:"label"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Adjustment    *PriceAdjustment `json:"adjustment,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Validate checks the single-rule invariant of an item.
func (i PriceListItem) Validate() error {
	if i.InventoryUUID == "" {
		return fmt.Errorf("price list item %q has no inventory reference", i.Label)
	}
	switch {
	case i.Price != nil && i.Adjustment != nil:
		return fmt.Errorf("price list item for inventory %s sets both an absolute price and an adjustment", i.InventoryUUID)
	case i.Price == nil && i.Adjustment == nil:
		return fmt.Errorf("price list item for inventory %s sets neither an absolute price nor an adjustment", i.InventoryUUID)
	case i.Price != nil:
		if i.Price.IsNegative() {
			return fmt.Errorf("price list item for inventory %s has a negative price", i.InventoryUUID)
		}
	default:
		switch i.Adjustment.Type {
		case AdjustmentPercentage:
			if i.Adjustment.Value.LessThan(decimal.NewFromInt(-100)) {
				return fmt.Errorf("price list item for inventory %s lowers the price by more than 100%%", i.InventoryUUID)
			}
		case AdjustmentFlat:
		default:
			return fmt.Errorf("price list item for inventory %s has unknown adjustment type %q", i.InventoryUUID, i.Adjustment.Type)
		}
	}
	return nil
}

// PriceList is an enterprise-scoped set of per-item overrides. A list with no
// items may exist as a draft but is never applied to a sale.
type PriceList struct {
	UUID         string          `json:"uuid"`
	EnterpriseID int             `json:"enterpriseID"`
	Label        string          `json:"label"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"isActive"`
	ValidFrom    time.Time       `json:"validFrom"`
	ValidUntil   *time.Time      `json:"validUntil,omitempty"`
	Items        []PriceListItem `json:"items,omitempty"`
	ItemCount    int             `json:"itemCount"`
	AuditFields
}

// Validate checks the list and every item on it.
func (p PriceList) Validate() error {
	if p.Label == "" {
		return fmt.Errorf("price list label is required")
	}
	if p.ValidUntil != nil && !p.ValidUntil.After(p.ValidFrom) {
		return fmt.Errorf("price list validity must end after it starts")
	}
	if p.IsActive && len(p.Items) == 0 {
		return fmt.Errorf("price list %q has no items and cannot be made active", p.Label)
	}
	seen := make(map[string]struct{}, len(p.Items))
	for _, item := range p.Items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.InventoryUUID]; dup {
			return fmt.Errorf("inventory %s appears more than once in price list %q", item.InventoryUUID, p.Label)
		}
		seen[item.InventoryUUID] = struct{}{}
	}
	return nil
}

// AppliesOn reports whether the list may price a sale dated at.
func (p PriceList) AppliesOn(at time.Time) bool {
	if len(p.Items) == 0 {
		return false
	}
	if at.Before(p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && !at.Before(*p.ValidUntil) {
		return false
	}
	return true
}

// FindItem returns the item overriding inventoryUUID, if any.
func (p PriceList) FindItem(inventoryUUID string) (PriceListItem, bool) {
	for _, item := range p.Items {
		if item.InventoryUUID == inventoryUUID {
			return item, true
		}
	}
	return PriceListItem{}, false
}
