package services

import (
	"fmt"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectivePrice returns the unit price of inventoryUUID once list is applied
// to the catalog price. Without a list, or without a matching item, the catalog
// price is returned unchanged. An absolute override is returned as stored.
// Adjusted prices are rounded half-to-even at precision, once.
func EffectivePrice(catalog decimal.Decimal, inventoryUUID string, list *domain.PriceList, precision int32) (decimal.Decimal, error) {
	if list == nil || len(list.Items) == 0 {
		return catalog, nil
	}

	item, ok := list.FindItem(inventoryUUID)
	if !ok {
		return catalog, nil
	}
	if err := item.Validate(); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if item.Price != nil {
		return *item.Price, nil
	}

	var price decimal.Decimal
	switch item.Adjustment.Type {
	case domain.AdjustmentPercentage:
		price = catalog.Mul(hundred.Add(item.Adjustment.Value)).Div(hundred)
	case domain.AdjustmentFlat:
		price = catalog.Add(item.Adjustment.Value)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price list %q brings the price of inventory %s below zero",
			apperrors.ErrValidation, list.Label, inventoryUUID)
	}
	return price.RoundBank(precision), nil
}
