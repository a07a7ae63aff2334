package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
)

// InvoiceService assembles and stores patient invoices.
type InvoiceService struct {
	BaseService
	assembler *InvoiceAssembler
	saleRepo  portsrepo.SaleRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(assembler *InvoiceAssembler, saleRepo portsrepo.SaleRepositoryFacade) *InvoiceService {
	return &InvoiceService{assembler: assembler, saleRepo: saleRepo}
}

// CreateSale builds the sale under the session and stores it with its items.
func (s *InvoiceService) CreateSale(ctx context.Context, draft domain.SaleDraft, items []domain.SaleItemDraft, session domain.SessionContext) (*domain.Sale, error) {
	sale, err := s.assembler.Build(ctx, draft, items, session)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.SaveSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_uuid", sale.UUID))
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	s.LogInfo(ctx, "Sale created",
		slog.String("sale_uuid", sale.UUID),
		slog.Int("items", len(sale.Items)),
		slog.String("cost", sale.Cost.String()))
	return sale, nil
}

// GetSale returns a stored sale with its items. Sales of other enterprises
// are reported as not found.
func (s *InvoiceService) GetSale(ctx context.Context, enterpriseID int, saleUUID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByUUID(ctx, saleUUID)
	if err != nil {
		return nil, err
	}
	if sale.EnterpriseID != enterpriseID {
		return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleUUID)
	}
	return sale, nil
}
