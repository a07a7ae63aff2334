package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceAssembler turns a client draft into a sale ready to be stored. It
// performs no writes.
type InvoiceAssembler struct {
	priceLists   portssvc.PriceListReaderSvc
	currencyRepo portsrepo.CurrencyReader
	now          func() time.Time
}

// NewInvoiceAssembler creates a new InvoiceAssembler.
func NewInvoiceAssembler(priceLists portssvc.PriceListReaderSvc, currencyRepo portsrepo.CurrencyReader) *InvoiceAssembler {
	return &InvoiceAssembler{
		priceLists:   priceLists,
		currencyRepo: currencyRepo,
		now:          time.Now,
	}
}

// Build stamps the session project and currency on the draft, keeps only the
// billing fields of each item and prices every item against the active price
// list of the session enterprise.
func (a *InvoiceAssembler) Build(ctx context.Context, draft domain.SaleDraft, items []domain.SaleItemDraft, session domain.SessionContext) (*domain.Sale, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: a sale needs at least one item", apperrors.ErrValidation)
	}
	if draft.DebtorUUID == "" {
		return nil, fmt.Errorf("%w: a sale needs a debtor", apperrors.ErrValidation)
	}

	now := a.now()
	sale := &domain.Sale{
		UUID:         uuid.NewString(),
		ProjectID:    session.ProjectID,
		EnterpriseID: session.EnterpriseID,
		CurrencyID:   session.CurrencyID,
		DebtorUUID:   draft.DebtorUUID,
		Date:         draft.Date,
		Description:  draft.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.UserID,
		},
	}
	if sale.Date.IsZero() {
		sale.Date = now
	}

	currency, err := a.currencyRepo.FindCurrencyByID(ctx, session.CurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enterprise currency %d: %w", session.CurrencyID, err)
	}
	precision := int32(utils.EffectivePrecision(*currency))

	list, err := a.priceLists.GetActivePriceList(ctx, session.EnterpriseID)
	if err != nil {
		return nil, err
	}
	if list != nil && !list.AppliesOn(sale.Date) {
		list = nil
	}

	cost := decimal.Zero
	sale.Items = make([]domain.SaleItem, 0, len(items))
	for i, in := range items {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d has a non-positive quantity", apperrors.ErrValidation, i+1)
		}
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %d has a negative unit price", apperrors.ErrValidation, i+1)
		}

		item := domain.NewSaleItem(in)
		item.UUID = uuid.NewString()
		item.SaleUUID = sale.UUID

		price, err := EffectivePrice(item.UnitPrice, item.InventoryUUID, list, precision)
		if err != nil {
			return nil, err
		}
		item.TransactionPrice = price

		lineTotal := price.Mul(decimal.NewFromInt(item.Quantity))
		item.Total = lineTotal.RoundBank(precision)
		cost = cost.Add(lineTotal)

		sale.Items = append(sale.Items, item)
	}
	sale.Cost = cost.RoundBank(precision)

	return sale, nil
}
