package mapping_test

import (
	"testing"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceListItemColumns(t *testing.T) {
	price := decimal.RequireFromString("12.50")

	absolute := mapping.ToModelPriceListItem(domain.PriceListItem{InventoryUUID: "a", Price: &price})
	assert.True(t, absolute.Price.Valid)
	assert.Nil(t, absolute.AdjustmentType)
	assert.False(t, absolute.AdjustmentValue.Valid)

	adjusted := mapping.ToModelPriceListItem(domain.PriceListItem{
		InventoryUUID: "b",
		Adjustment:    &domain.PriceAdjustment{Type: domain.AdjustmentPercentage, Value: decimal.NewFromInt(-10)},
	})
	assert.False(t, adjusted.Price.Valid)
	require.NotNil(t, adjusted.AdjustmentType)
	assert.Equal(t, "PERCENTAGE", *adjusted.AdjustmentType)

	back := mapping.ToDomainPriceListItem(adjusted)
	assert.Nil(t, back.Price)
	require.NotNil(t, back.Adjustment)
	assert.True(t, back.Adjustment.Value.Equal(decimal.NewFromInt(-10)))

	back = mapping.ToDomainPriceListItem(absolute)
	require.NotNil(t, back.Price)
	assert.True(t, back.Price.Equal(price))
	assert.Nil(t, back.Adjustment)
}
