package mapping

import (
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelPriceList converts a domain PriceList header to a model PriceList.
func ToModelPriceList(d domain.PriceList) models.PriceList {
	return models.PriceList{
		UUID:         d.UUID,
		EnterpriseID: d.EnterpriseID,
		Label:        d.Label,
		Description:  d.Description,
		IsActive:     d.IsActive,
		ValidFrom:    d.ValidFrom,
		ValidUntil:   d.ValidUntil,
		ItemCount:    len(d.Items),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPriceList converts a model PriceList to a domain PriceList without items.
func ToDomainPriceList(m models.PriceList) domain.PriceList {
	return domain.PriceList{
		UUID:         m.UUID,
		EnterpriseID: m.EnterpriseID,
		Label:        m.Label,
		Description:  m.Description,
		IsActive:     m.IsActive,
		ValidFrom:    m.ValidFrom,
		ValidUntil:   m.ValidUntil,
		ItemCount:    m.ItemCount,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPriceListItem converts a domain item to its row form.
func ToModelPriceListItem(d domain.PriceListItem) models.PriceListItem {
	m := models.PriceListItem{
		UUID:          d.UUID,
		PriceListUUID: d.PriceListUUID,
		InventoryUUID: d.InventoryUUID,
		Label:         d.Label,
		CreatedAt:     d.CreatedAt,
	}
	if d.Price != nil {
		m.Price = decimal.NewNullDecimal(*d.Price)
	}
	if d.Adjustment != nil {
		adjustmentType := string(d.Adjustment.Type)
		m.AdjustmentType = &adjustmentType
		m.AdjustmentValue = decimal.NewNullDecimal(d.Adjustment.Value)
	}
	return m
}

// ToDomainPriceListItem converts a row back to a domain item.
func ToDomainPriceListItem(m models.PriceListItem) domain.PriceListItem {
	d := domain.PriceListItem{
		UUID:          m.UUID,
		PriceListUUID: m.PriceListUUID,
		InventoryUUID: m.InventoryUUID,
		Label:         m.Label,
		CreatedAt:     m.CreatedAt,
	}
	if m.Price.Valid {
		price := m.Price.Decimal
		d.Price = &price
	}
	if m.AdjustmentType != nil && m.AdjustmentValue.Valid {
		d.Adjustment = &domain.PriceAdjustment{
			Type:  domain.AdjustmentType(*m.AdjustmentType),
			Value: m.AdjustmentValue.Decimal,
		}
	}
	return d
}

// ToDomainPriceListItemSlice converts a slice of rows.
func ToDomainPriceListItemSlice(ms []models.PriceListItem) []domain.PriceListItem {
	ds := make([]domain.PriceListItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPriceListItem(m)
	}
	return ds
}
