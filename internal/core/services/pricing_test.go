package services_test

import (
	"testing"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	inventoryABC = "3f0a6b1e-6b0e-4f7e-9d6a-2b8c1d0e0abc"
	inventoryXYZ = "9c2d7e4f-1a3b-4c5d-8e9f-0a1b2c3d4xyz"
)

func percentItem(inventory, value string) domain.PriceListItem {
	return domain.PriceListItem{
		InventoryUUID: inventory,
		Adjustment:    &domain.PriceAdjustment{Type: domain.AdjustmentPercentage, Value: decimal.RequireFromString(value)},
	}
}

func TestEffectivePrice(t *testing.T) {
	catalog := decimal.RequireFromString("1000")

	tests := []struct {
		name      string
		catalog   decimal.Decimal
		inventory string
		list      *domain.PriceList
		want      string
	}{
		{
			name:      "no list keeps catalog price",
			catalog:   decimal.RequireFromString("12.345"),
			inventory: inventoryABC,
			list:      nil,
			want:      "12.345",
		},
		{
			name:      "empty list keeps catalog price",
			catalog:   catalog,
			inventory: inventoryABC,
			list:      &domain.PriceList{Label: "draft"},
			want:      "1000",
		},
		{
			name:      "percentage discount",
			catalog:   catalog,
			inventory: inventoryABC,
			list:      &domain.PriceList{Items: []domain.PriceListItem{percentItem(inventoryABC, "-10")}},
			want:      "900",
		},
		{
			name:      "percentage surcharge rounds half to even",
			catalog:   decimal.RequireFromString("2.5"),
			inventory: inventoryABC,
			list:      &domain.PriceList{Items: []domain.PriceListItem{percentItem(inventoryABC, "-15")}},
			want:      "2.12", // 2.125
		},
		{
			name:      "absolute override ignores catalog",
			catalog:   catalog,
			inventory: inventoryABC,
			list: &domain.PriceList{Items: []domain.PriceListItem{
				{InventoryUUID: inventoryABC, Price: decimalPtr("12.3456")},
			}},
			want: "12.3456",
		},
		{
			name:      "flat adjustment adds a signed delta",
			catalog:   catalog,
			inventory: inventoryABC,
			list: &domain.PriceList{Items: []domain.PriceListItem{
				{InventoryUUID: inventoryABC, Adjustment: &domain.PriceAdjustment{Type: domain.AdjustmentFlat, Value: decimal.RequireFromString("-250.5")}},
			}},
			want: "749.5",
		},
		{
			name:      "unlisted item keeps catalog price",
			catalog:   catalog,
			inventory: inventoryXYZ,
			list:      &domain.PriceList{Items: []domain.PriceListItem{percentItem(inventoryABC, "-10")}},
			want:      "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.EffectivePrice(tt.catalog, tt.inventory, tt.list, 2)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEffectivePrice_OverrideIndependentOfCatalog(t *testing.T) {
	list := &domain.PriceList{Items: []domain.PriceListItem{{InventoryUUID: inventoryABC, Price: decimalPtr("42")}}}

	for _, catalog := range []string{"0", "1", "999999.99"} {
		got, err := services.EffectivePrice(decimal.RequireFromString(catalog), inventoryABC, list, 2)
		require.NoError(t, err)
		assert.Equal(t, "42", got.String())
	}
}

func TestEffectivePrice_PercentageMatchesFormula(t *testing.T) {
	catalogs := []string{"0.01", "3.33", "19.99", "1000", "12345.67"}
	percents := []string{"-100", "-33.3", "-10", "0", "7.5", "150"}

	for _, c := range catalogs {
		for _, p := range percents {
			catalog := decimal.RequireFromString(c)
			pct := decimal.RequireFromString(p)
			list := &domain.PriceList{Items: []domain.PriceListItem{percentItem(inventoryABC, p)}}

			got, err := services.EffectivePrice(catalog, inventoryABC, list, 2)
			require.NoError(t, err)

			want := catalog.Mul(decimal.NewFromInt(1).Add(pct.Div(decimal.NewFromInt(100)))).RoundBank(2)
			assert.True(t, want.Equal(got), "catalog %s pct %s: got %s want %s", c, p, got, want)
		}
	}
}

func TestEffectivePrice_AmbiguousItem(t *testing.T) {
	list := &domain.PriceList{Items: []domain.PriceListItem{{
		InventoryUUID: inventoryABC,
		Price:         decimalPtr("10"),
		Adjustment:    &domain.PriceAdjustment{Type: domain.AdjustmentFlat, Value: decimal.NewFromInt(1)},
	}}}

	_, err := services.EffectivePrice(decimal.NewFromInt(100), inventoryABC, list, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEffectivePrice_FlatBelowZero(t *testing.T) {
	list := &domain.PriceList{Label: "staff", Items: []domain.PriceListItem{{
		InventoryUUID: inventoryABC,
		Adjustment:    &domain.PriceAdjustment{Type: domain.AdjustmentFlat, Value: decimal.NewFromInt(-200)},
	}}}

	_, err := services.EffectivePrice(decimal.NewFromInt(100), inventoryABC, list, 2)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
