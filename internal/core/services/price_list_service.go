package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/google/uuid"
)

// PriceListService provides business logic for price lists.
type PriceListService struct {
	BaseService
	priceListRepo portsrepo.PriceListRepositoryFacade
	locks         *keyedMutex
	now           func() time.Time
}

// NewPriceListService creates a new PriceListService.
func NewPriceListService(priceListRepo portsrepo.PriceListRepositoryFacade) *PriceListService {
	return &PriceListService{
		priceListRepo: priceListRepo,
		locks:         newKeyedMutex(),
		now:           time.Now,
	}
}

// GetActivePriceList returns the active list of an enterprise, or nil when
// there is none.
func (s *PriceListService) GetActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error) {
	list, err := s.priceListRepo.FindActivePriceList(ctx, enterpriseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load active price list", slog.Int("enterprise_id", enterpriseID))
		return nil, fmt.Errorf("failed to get active price list: %w", err)
	}
	return list, nil
}

// GetPriceListItems returns the items of a list in insertion order.
func (s *PriceListService) GetPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error) {
	items, err := s.priceListRepo.FindPriceListItems(ctx, priceListUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get price list items: %w", err)
	}
	if items == nil {
		return []domain.PriceListItem{}, nil
	}
	return items, nil
}

// GetPriceList returns one list of the enterprise. Lists of other enterprises
// are reported as not found.
func (s *PriceListService) GetPriceList(ctx context.Context, enterpriseID int, priceListUUID string) (*domain.PriceList, error) {
	list, err := s.priceListRepo.FindPriceListByUUID(ctx, priceListUUID)
	if err != nil {
		return nil, err
	}
	if list.EnterpriseID != enterpriseID {
		return nil, fmt.Errorf("%w: price list %s", apperrors.ErrNotFound, priceListUUID)
	}
	return list, nil
}

// ListPriceLists returns the lists of an enterprise.
func (s *PriceListService) ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error) {
	lists, err := s.priceListRepo.ListPriceLists(ctx, enterpriseID, detailed)
	if err != nil {
		return nil, fmt.Errorf("failed to list price lists: %w", err)
	}
	if lists == nil {
		return []domain.PriceList{}, nil
	}
	return lists, nil
}

// CreatePriceList validates and stores a new list.
func (s *PriceListService) CreatePriceList(ctx context.Context, enterpriseID int, req dto.PriceListRequest, userID int) (*domain.PriceList, error) {
	now := s.now()
	list := domain.PriceList{
		UUID:         uuid.NewString(),
		EnterpriseID: enterpriseID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	s.applyRequest(&list, req, now)
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.priceListRepo.SavePriceList(ctx, list); err != nil {
		s.LogError(ctx, err, "Failed to save price list", slog.String("price_list_uuid", list.UUID))
		return nil, fmt.Errorf("failed to create price list: %w", err)
	}

	s.LogInfo(ctx, "Price list created", slog.String("price_list_uuid", list.UUID), slog.Int("items", len(list.Items)))
	return &list, nil
}

// UpdatePriceList replaces the header and items of a list.
func (s *PriceListService) UpdatePriceList(ctx context.Context, enterpriseID int, priceListUUID string, req dto.PriceListRequest, userID int) (*domain.PriceList, error) {
	unlock := s.locks.Lock(priceListUUID)
	defer unlock()

	existing, err := s.GetPriceList(ctx, enterpriseID, priceListUUID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	list := domain.PriceList{
		UUID:         existing.UUID,
		EnterpriseID: existing.EnterpriseID,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	s.applyRequest(&list, req, existing.ValidFrom)
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.priceListRepo.UpdatePriceList(ctx, list); err != nil {
		s.LogError(ctx, err, "Failed to update price list", slog.String("price_list_uuid", list.UUID))
		return nil, fmt.Errorf("failed to update price list: %w", err)
	}

	s.LogInfo(ctx, "Price list updated", slog.String("price_list_uuid", list.UUID), slog.Int("items", len(list.Items)))
	return &list, nil
}

// DeletePriceList removes a list no debtor group uses.
func (s *PriceListService) DeletePriceList(ctx context.Context, enterpriseID int, priceListUUID string) error {
	unlock := s.locks.Lock(priceListUUID)
	defer unlock()

	if _, err := s.GetPriceList(ctx, enterpriseID, priceListUUID); err != nil {
		return err
	}

	referenced, err := s.priceListRepo.IsPriceListReferenced(ctx, priceListUUID)
	if err != nil {
		return fmt.Errorf("failed to check price list references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: price list %s is used by a debtor group", apperrors.ErrConflict, priceListUUID)
	}

	if err := s.priceListRepo.DeletePriceList(ctx, priceListUUID); err != nil {
		s.LogError(ctx, err, "Failed to delete price list", slog.String("price_list_uuid", priceListUUID))
		return fmt.Errorf("failed to delete price list: %w", err)
	}

	s.LogInfo(ctx, "Price list deleted", slog.String("price_list_uuid", priceListUUID))
	return nil
}

// applyRequest copies the client-editable fields onto list. validFrom is used
// when the request leaves it empty.
func (s *PriceListService) applyRequest(list *domain.PriceList, req dto.PriceListRequest, validFrom time.Time) {
	list.Label = req.Label
	list.Description = req.Description
	list.IsActive = req.IsActive
	list.ValidFrom = validFrom
	if req.ValidFrom != nil {
		list.ValidFrom = *req.ValidFrom
	}
	list.ValidUntil = req.ValidUntil

	list.Items = req.ToDomainItems()
	for i := range list.Items {
		list.Items[i].UUID = uuid.NewString()
		list.Items[i].PriceListUUID = list.UUID
		list.Items[i].CreatedAt = list.LastUpdatedAt
	}
	list.ItemCount = len(list.Items)
}
