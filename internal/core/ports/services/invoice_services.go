package services

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// InvoiceReaderSvc defines read operations for sales
type InvoiceReaderSvc interface {
	// GetSale returns a sale of the enterprise; other enterprises' sales are not found.
	GetSale(ctx context.Context, enterpriseID int, saleUUID string) (*domain.Sale, error)
}

// InvoiceWriterSvc defines write operations for sales
type InvoiceWriterSvc interface {
	// CreateSale assembles a sale under the session and persists it.
	CreateSale(ctx context.Context, draft domain.SaleDraft, items []domain.SaleItemDraft, session domain.SessionContext) (*domain.Sale, error)
}

// InvoiceSvcFacade combines all invoice service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
