package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/models"
	"github.com/SscSPs/hospital_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const priceListColumns = `pl.uuid, pl.enterprise_id, pl.label, pl.description, pl.is_active,
	pl.valid_from, pl.valid_until,
	(SELECT COUNT(*) FROM price_list_item pli WHERE pli.price_list_uuid = pl.uuid),
	pl.created_at, pl.created_by, pl.last_updated_at, pl.last_updated_by`

const priceListItemColumns = `uuid, price_list_uuid, inventory_uuid, label,
	price, adjustment_type, adjustment_value, created_at`

// PgxPriceListRepository implements portsrepo.PriceListRepositoryFacade using pgxpool.
type PgxPriceListRepository struct {
	BaseRepository
}

func newPgxPriceListRepository(db *pgxpool.Pool) *PgxPriceListRepository {
	return &PgxPriceListRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PriceListRepositoryFacade = (*PgxPriceListRepository)(nil)

func scanPriceList(row pgx.Row) (models.PriceList, error) {
	var m models.PriceList
	err := row.Scan(
		&m.UUID, &m.EnterpriseID, &m.Label, &m.Description, &m.IsActive,
		&m.ValidFrom, &m.ValidUntil, &m.ItemCount,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindPriceListByUUID retrieves a price list and its items.
func (r *PgxPriceListRepository) FindPriceListByUUID(ctx context.Context, priceListUUID string) (*domain.PriceList, error) {
	m, err := scanPriceList(r.Pool.QueryRow(ctx, `SELECT `+priceListColumns+` FROM price_list pl WHERE pl.uuid = $1`, priceListUUID))
	if err != nil {
		return nil, mapReadError(err, "price list "+priceListUUID)
	}
	return r.withItems(ctx, m)
}

// FindActivePriceList retrieves the active list of an enterprise with its items.
func (r *PgxPriceListRepository) FindActivePriceList(ctx context.Context, enterpriseID int) (*domain.PriceList, error) {
	m, err := scanPriceList(r.Pool.QueryRow(ctx, `
		SELECT `+priceListColumns+`
		FROM price_list pl
		WHERE pl.enterprise_id = $1 AND pl.is_active
		ORDER BY pl.last_updated_at DESC
		LIMIT 1`, enterpriseID))
	if err != nil {
		return nil, mapReadError(err, "active price list")
	}
	return r.withItems(ctx, m)
}

func (r *PgxPriceListRepository) withItems(ctx context.Context, m models.PriceList) (*domain.PriceList, error) {
	items, err := r.FindPriceListItems(ctx, m.UUID)
	if err != nil {
		return nil, err
	}
	list := mapping.ToDomainPriceList(m)
	list.Items = items
	return &list, nil
}

// FindPriceListItems retrieves the items of a list in insertion order.
func (r *PgxPriceListRepository) FindPriceListItems(ctx context.Context, priceListUUID string) ([]domain.PriceListItem, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+priceListItemColumns+`
		FROM price_list_item
		WHERE price_list_uuid = $1
		ORDER BY position`, priceListUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price list items: %w", err)
	}
	defer rows.Close()

	items := []models.PriceListItem{}
	for rows.Next() {
		var it models.PriceListItem
		if err := rows.Scan(
			&it.UUID, &it.PriceListUUID, &it.InventoryUUID, &it.Label,
			&it.Price, &it.AdjustmentType, &it.AdjustmentValue, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan price list item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price list item rows: %w", err)
	}
	return mapping.ToDomainPriceListItemSlice(items), nil
}

// ListPriceLists retrieves the lists of an enterprise ordered by label.
func (r *PgxPriceListRepository) ListPriceLists(ctx context.Context, enterpriseID int, detailed bool) ([]domain.PriceList, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+priceListColumns+`
		FROM price_list pl
		WHERE pl.enterprise_id = $1
		ORDER BY pl.label`, enterpriseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price lists: %w", err)
	}
	defer rows.Close()

	headers := []models.PriceList{}
	for rows.Next() {
		m, err := scanPriceList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price list row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price list rows: %w", err)
	}

	lists := make([]domain.PriceList, len(headers))
	for i, m := range headers {
		lists[i] = mapping.ToDomainPriceList(m)
		if detailed {
			items, err := r.FindPriceListItems(ctx, m.UUID)
			if err != nil {
				return nil, err
			}
			lists[i].Items = items
		}
	}
	return lists, nil
}

// IsPriceListReferenced reports whether a debtor group uses the list.
func (r *PgxPriceListRepository) IsPriceListReferenced(ctx context.Context, priceListUUID string) (bool, error) {
	var referenced bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM debtor_group WHERE price_list_uuid = $1)`, priceListUUID,
	).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("failed to check price list references: %w", err)
	}
	return referenced, nil
}

// SavePriceList inserts a list and its items. Activating it deactivates the
// other lists of the enterprise.
func (r *PgxPriceListRepository) SavePriceList(ctx context.Context, list domain.PriceList) error {
	m := mapping.ToModelPriceList(list)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if m.IsActive {
			if err := deactivateOthers(ctx, tx, m.EnterpriseID, m.UUID); err != nil {
				return err
			}
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO price_list (
				uuid, enterprise_id, label, description, is_active, valid_from, valid_until,
				created_at, created_by, last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			m.UUID, m.EnterpriseID, m.Label, m.Description, m.IsActive, m.ValidFrom, m.ValidUntil,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "price list")
		}
		return insertItems(ctx, tx, list.Items)
	})
}

// UpdatePriceList replaces the header and items of an existing list.
func (r *PgxPriceListRepository) UpdatePriceList(ctx context.Context, list domain.PriceList) error {
	m := mapping.ToModelPriceList(list)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var locked string
		err := tx.QueryRow(ctx, `SELECT uuid FROM price_list WHERE uuid = $1 FOR UPDATE`, m.UUID).Scan(&locked)
		if err != nil {
			return mapReadError(err, "price list "+m.UUID)
		}
		if m.IsActive {
			if err := deactivateOthers(ctx, tx, m.EnterpriseID, m.UUID); err != nil {
				return err
			}
		}
		_, err = tx.Exec(ctx, `
			UPDATE price_list
			SET label = $1, description = $2, is_active = $3, valid_from = $4, valid_until = $5,
				last_updated_at = $6, last_updated_by = $7
			WHERE uuid = $8`,
			m.Label, m.Description, m.IsActive, m.ValidFrom, m.ValidUntil,
			m.LastUpdatedAt, m.LastUpdatedBy, m.UUID,
		)
		if err != nil {
			return mapWriteError(err, "price list")
		}
		if _, err := tx.Exec(ctx, `DELETE FROM price_list_item WHERE price_list_uuid = $1`, m.UUID); err != nil {
			return mapWriteError(err, "price list items")
		}
		return insertItems(ctx, tx, list.Items)
	})
}

// DeletePriceList removes a list and its items.
func (r *PgxPriceListRepository) DeletePriceList(ctx context.Context, priceListUUID string) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM price_list_item WHERE price_list_uuid = $1`, priceListUUID); err != nil {
			return mapWriteError(err, "price list items")
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM price_list WHERE uuid = $1`, priceListUUID)
		if err != nil {
			return mapWriteError(err, "price list")
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("price list " + priceListUUID + " not found")
		}
		return nil
	})
}

func deactivateOthers(ctx context.Context, tx pgx.Tx, enterpriseID int, keepUUID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE price_list SET is_active = FALSE
		WHERE enterprise_id = $1 AND is_active AND uuid <> $2`, enterpriseID, keepUUID)
	if err != nil {
		return mapWriteError(err, "price list")
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, items []domain.PriceListItem) error {
	batch := &pgx.Batch{}
	for i, item := range items {
		it := mapping.ToModelPriceListItem(item)
		batch.Queue(`
			INSERT INTO price_list_item (
				uuid, price_list_uuid, inventory_uuid, label, price,
				adjustment_type, adjustment_value, position, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			it.UUID, it.PriceListUUID, it.InventoryUUID, it.Label, it.Price,
			it.AdjustmentType, it.AdjustmentValue, i, it.CreatedAt,
		)
	}
	return execBatch(ctx, tx, batch, "price list item")
}
