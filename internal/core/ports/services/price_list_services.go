package services

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
)

// PriceListReaderSvc defines read operations for price lists
type PriceListReaderSvc interface {
	// GetActivePriceList returns the active list of an enterprise with its
	// items, or nil when the enterprise has none.
	GetActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error)

	// GetPriceListItems returns the items of a list in insertion order.
	GetPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error)

	// GetPriceList returns one list of the enterprise with its items.
	GetPriceList(ctx context.Context, enterpriseID int, priceListUUID string) (*domain.PriceList, error)

	// ListPriceLists returns the lists of an enterprise. Items are loaded only when detailed is set.
	ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error)
}

// PriceListWriterSvc defines write operations for price lists. Writes to the
// same list are serialized.
type PriceListWriterSvc interface {
	CreatePriceList(ctx context.Context, enterpriseID int, req dto.PriceListRequest, userID int) (*domain.PriceList, error)
	UpdatePriceList(ctx context.Context, enterpriseID int, priceListUUID string, req dto.PriceListRequest, userID int) (*domain.PriceList, error)

	// DeletePriceList fails with apperrors.ErrConflict while a debtor group uses the list.
	DeletePriceList(ctx context.Context, enterpriseID int, priceListUUID string) error
}

// PriceListSvcFacade combines all price list service interfaces
type PriceListSvcFacade interface {
	PriceListReaderSvc
	PriceListWriterSvc
}
