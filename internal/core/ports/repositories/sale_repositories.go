package repositories

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	FindSaleByUUID(ctx context.Context, saleUUID string) (*domain.Sale, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// SaveSale persists a sale and all its items atomically.
	SaveSale(ctx context.Context, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
