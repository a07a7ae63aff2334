package dto

import (
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceAdjustmentRequest is a relative change to a catalog price.
type PriceAdjustmentRequest struct {
	Type  string          `json:"type" binding:"required,oneof=PERCENTAGE FLAT"`
	Value decimal.Decimal `json:"value"`
}

// PriceListItemRequest is one line of a price list. The exactly-one-of rule on
// Price and Adjustment is registered as a struct-level validation.
type PriceListItemRequest struct {
	InventoryUUID string                  `json:"inventoryUUID" binding:"required,uuid"`
	Label         string                  `json:"label" binding:"max=100"`
	Price         *decimal.Decimal        `json:"price,omitempty"`
	Adjustment    *PriceAdjustmentRequest `json:"adjustment,omitempty"`
}

// PriceListRequest defines the body of create and update price list requests.
// A null items array is accepted and stored as an empty draft.
type PriceListRequest struct {
	Label       string                 `json:"label" binding:"required,max=100"`
	Description string                 `json:"description"`
	IsActive    bool                   `json:"isActive"`
	ValidFrom   *time.Time             `json:"validFrom"`
	ValidUntil  *time.Time             `json:"validUntil"`
	Items       []PriceListItemRequest `json:"items" binding:"dive"`
}

// ListPriceListsParams are the query parameters of the price list index.
type ListPriceListsParams struct {
	Detailed bool `form:"detailed"`
}

// ToDomainItems converts the request lines to domain items.
func (r PriceListRequest) ToDomainItems() []domain.PriceListItem {
	items := make([]domain.PriceListItem, 0, len(r.Items))
	for _, in := range r.Items {
		item := domain.PriceListItem{
			InventoryUUID: in.InventoryUUID,
			Label:         in.Label,
			Price:         in.Price,
		}
		if in.Adjustment != nil {
			item.Adjustment = &domain.PriceAdjustment{
				Type:  domain.AdjustmentType(in.Adjustment.Type),
				Value: in.Adjustment.Value,
			}
		}
		items = append(items, item)
	}
	return items
}

// PriceListResponse is the API shape of a price list. Items are only present
// on detailed reads.
type PriceListResponse struct {
	UUID          string                 `json:"uuid"`
	Label         string                 `json:"label"`
	Description   string                 `json:"description"`
	IsActive      bool                   `json:"isActive"`
	ValidFrom     time.Time              `json:"validFrom"`
	ValidUntil    *time.Time             `json:"validUntil,omitempty"`
	ItemCount     int                    `json:"itemCount"`
	Items         []domain.PriceListItem `json:"items,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     int                    `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy int                    `json:"lastUpdatedBy"`
}

// ToPriceListResponse converts a domain.PriceList to its response DTO.
func ToPriceListResponse(list *domain.PriceList) PriceListResponse {
	count := list.ItemCount
	if len(list.Items) > count {
		count = len(list.Items)
	}
	return PriceListResponse{
		UUID:          list.UUID,
		Label:         list.Label,
		Description:   list.Description,
		IsActive:      list.IsActive,
		ValidFrom:     list.ValidFrom,
		ValidUntil:    list.ValidUntil,
		ItemCount:     count,
		Items:         list.Items,
		CreatedAt:     list.CreatedAt,
		CreatedBy:     list.CreatedBy,
		LastUpdatedAt: list.LastUpdatedAt,
		LastUpdatedBy: list.LastUpdatedBy,
	}
}

// ToListPriceListResponse converts a slice of price lists.
func ToListPriceListResponse(lists []domain.PriceList) []PriceListResponse {
	responses := make([]PriceListResponse, len(lists))
	for i := range lists {
		responses[i] = ToPriceListResponse(&lists[i])
	}
	return responses
}
