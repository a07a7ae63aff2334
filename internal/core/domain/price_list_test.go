package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceListItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.PriceListItem
		wantErr bool
		errMsg  string
	}{
		{
			name: "absolute price",
			item: domain.PriceListItem{InventoryUUID: "inv-1", Price: decimalPtr(decimal.NewFromInt(500))},
		},
		{
			name: "percentage adjustment",
			item: domain.PriceListItem{InventoryUUID: "inv-1", Adjustment: &domain.PriceAdjustment{Type: domain.AdjustmentPercentage, Value: decimal.NewFromInt(-10)}},
		},
		{
			name: "negative flat adjustment is allowed",
			item: domain.PriceListItem{InventoryUUID: "inv-1", Adjustment: &domain.PriceAdjustment{Type: domain.AdjustmentFlat, Value: decimal.NewFromInt(-250)}},
		},
		{
			name: "both set",
			item: domain.PriceListItem{
				InventoryUUID: "inv-1",
				Price:         decimalPtr(decimal.NewFromInt(500)),
				Adjustment:    &domain.PriceAdjustment{Type: domain.AdjustmentFlat, Value: decimal.NewFromInt(5)},
			},
			wantErr: true,
			errMsg:  "sets both",
		},
		{
			name:    "neither set",
			item:    domain.PriceListItem{InventoryUUID: "inv-1"},
			wantErr: true,
			errMsg:  "sets neither",
		},
		{
			name:    "missing inventory",
			item:    domain.PriceListItem{Price: decimalPtr(decimal.NewFromInt(1))},
			wantErr: true,
			errMsg:  "no inventory reference",
		},
		{
			name:    "negative absolute price",
			item:    domain.PriceListItem{InventoryUUID: "inv-1", Price: decimalPtr(decimal.NewFromInt(-1))},
			wantErr: true,
			errMsg:  "negative price",
		},
		{
			name:    "percentage below -100",
			item:    domain.PriceListItem{InventoryUUID: "inv-1", Adjustment: &domain.PriceAdjustment{Type: domain.AdjustmentPercentage, Value: decimal.NewFromInt(-101)}},
			wantErr: true,
			errMsg:  "more than 100%",
		},
		{
			name:    "unknown adjustment type",
			item:    domain.PriceListItem{InventoryUUID: "inv-1", Adjustment: &domain.PriceAdjustment{Type: "DOUBLE", Value: decimal.NewFromInt(2)}},
			wantErr: true,
			errMsg:  "unknown adjustment type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriceList_Validate(t *testing.T) {
	item := domain.PriceListItem{InventoryUUID: "inv-1", Price: decimalPtr(decimal.NewFromInt(10))}

	t.Run("empty draft is valid", func(t *testing.T) {
		assert.NoError(t, domain.PriceList{Label: "Draft"}.Validate())
	})

	t.Run("empty list cannot be active", func(t *testing.T) {
		err := domain.PriceList{Label: "Draft", IsActive: true}.Validate()
		assert.ErrorContains(t, err, "cannot be made active")
	})

	t.Run("duplicate inventory", func(t *testing.T) {
		err := domain.PriceList{Label: "Staff", Items: []domain.PriceListItem{item, item}}.Validate()
		assert.ErrorContains(t, err, "more than once")
	})

	t.Run("label required", func(t *testing.T) {
		assert.ErrorContains(t, domain.PriceList{}.Validate(), "label is required")
	})

	t.Run("validity window", func(t *testing.T) {
		from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		until := from
		err := domain.PriceList{Label: "Staff", ValidFrom: from, ValidUntil: &until}.Validate()
		assert.ErrorContains(t, err, "must end after it starts")
	})
}

func TestPriceList_AppliesOn(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	items := []domain.PriceListItem{{InventoryUUID: "inv-1", Price: decimalPtr(decimal.NewFromInt(10))}}

	list := domain.PriceList{Label: "2023", ValidFrom: from, ValidUntil: &until, Items: items}

	assert.True(t, list.AppliesOn(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, list.AppliesOn(from))
	assert.False(t, list.AppliesOn(until))
	assert.False(t, list.AppliesOn(from.Add(-time.Second)))

	list.Items = nil
	assert.False(t, list.AppliesOn(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)), "an empty list never applies")
}

// Helper functions
func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
