package repositories

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// PriceListReader defines read operations for price lists
type PriceListReader interface {
	// FindPriceListByUUID retrieves a price list and its items.
	FindPriceListByUUID(ctx context.Context, priceListUUID string) (*domain.PriceList, error)

	// FindActivePriceList retrieves the active list of an enterprise with its items.
	// It returns apperrors.ErrNotFound when the enterprise has no active list.
	FindActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error)

	// FindPriceListItems retrieves the items of a list in insertion order.
	FindPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error)

	// ListPriceLists retrieves the lists of an enterprise, with items when detailed is true.
	ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error)

	// IsPriceListReferenced reports whether a debtor group uses the list.
	IsPriceListReferenced(ctx context.Context, priceListUUID string) (bool, error)
}

// PriceListWriter defines write operations for price lists
type PriceListWriter interface {
	// SavePriceList inserts a list and its items.
	SavePriceList(ctx context.Context, list domain.PriceList) error

	// UpdatePriceList replaces the header and items of an existing list.
	UpdatePriceList(ctx context.Context, list domain.PriceList) error

	// DeletePriceList removes a list and its items.
	DeletePriceList(ctx context.Context, priceListUUID string) error
}

// PriceListRepositoryFacade combines all price list repository interfaces
type PriceListRepositoryFacade interface {
	PriceListReader
	PriceListWriter
}
