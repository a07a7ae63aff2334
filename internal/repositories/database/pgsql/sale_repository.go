package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/models"
	"github.com/SscSPs/hospital_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSaleRepository implements portsrepo.SaleRepositoryFacade using pgxpool.
type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(db *pgxpool.Pool) *PgxSaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale inserts the sale and its items in one transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO sale (
				uuid, project_id, currency_id, debtor_uuid, date, description, cost,
				created_at, created_by, last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			m.UUID, m.ProjectID, m.CurrencyID, m.DebtorUUID, m.Date, m.Description, m.Cost,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "sale")
		}

		batch := &pgx.Batch{}
		for i, item := range sale.Items {
			it := mapping.ToModelSaleItem(item)
			batch.Queue(`
				INSERT INTO sale_item (
					uuid, sale_uuid, inventory_uuid, quantity, unit_price, transaction_price, total, position
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				it.UUID, it.SaleUUID, it.InventoryUUID, it.Quantity, it.UnitPrice, it.TransactionPrice, it.Total, i,
			)
		}
		return execBatch(ctx, tx, batch, "sale item")
	})
}

// FindSaleByUUID retrieves a sale with its items.
func (r *PgxSaleRepository) FindSaleByUUID(ctx context.Context, saleUUID string) (*domain.Sale, error) {
	var m models.Sale
	err := r.Pool.QueryRow(ctx, `
		SELECT s.uuid, s.project_id, p.enterprise_id, s.currency_id, s.debtor_uuid, s.date, s.description, s.cost,
			s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM sale s
		JOIN project p ON p.id = s.project_id
		WHERE s.uuid = $1`, saleUUID,
	).Scan(
		&m.UUID, &m.ProjectID, &m.EnterpriseID, &m.CurrencyID, &m.DebtorUUID, &m.Date, &m.Description, &m.Cost,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapReadError(err, "sale "+saleUUID)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT uuid, sale_uuid, inventory_uuid, quantity, unit_price, transaction_price, total
		FROM sale_item
		WHERE sale_uuid = $1
		ORDER BY position`, saleUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sale items: %w", err)
	}
	defer rows.Close()

	items := []models.SaleItem{}
	for rows.Next() {
		var it models.SaleItem
		if err := rows.Scan(&it.UUID, &it.SaleUUID, &it.InventoryUUID, &it.Quantity, &it.UnitPrice, &it.TransactionPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", err)
	}

	sale := mapping.ToDomainSale(m, items)
	return &sale, nil
}

// execBatch sends batch on tx and checks every queued statement.
func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch, what string) error {
	if batch.Len() == 0 {
		return nil
	}
	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return mapWriteError(err, what)
		}
	}
	return results.Close()
}
