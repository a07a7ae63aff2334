package mapping

import (
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/models"
)

// ToModelSale converts a domain Sale header to a model Sale.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		UUID:        d.UUID,
		ProjectID:   d.ProjectID,
		CurrencyID:  d.CurrencyID,
		DebtorUUID:  d.DebtorUUID,
		Date:        d.Date,
		Description: d.Description,
		Cost:        d.Cost,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem.
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		UUID:             d.UUID,
		SaleUUID:         d.SaleUUID,
		InventoryUUID:    d.InventoryUUID,
		Quantity:         d.Quantity,
		UnitPrice:        d.UnitPrice,
		TransactionPrice: d.TransactionPrice,
		Total:            d.Total,
	}
}

// ToDomainSale converts a model Sale and its items to a domain Sale.
func ToDomainSale(m models.Sale, items []models.SaleItem) domain.Sale {
	d := domain.Sale{
		UUID:         m.UUID,
		ProjectID:    m.ProjectID,
		EnterpriseID: m.EnterpriseID,
		CurrencyID:   m.CurrencyID,
		DebtorUUID:   m.DebtorUUID,
		Date:         m.Date,
		Description:  m.Description,
		Cost:         m.Cost,
		Items:        make([]domain.SaleItem, len(items)),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	for i, it := range items {
		d.Items[i] = domain.SaleItem{
			UUID:             it.UUID,
			SaleUUID:         it.SaleUUID,
			InventoryUUID:    it.InventoryUUID,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			TransactionPrice: it.TransactionPrice,
			Total:            it.Total,
		}
	}
	return d
}
