package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/models"
	"github.com/SscSPs/hospital_billing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyReader = (*PgxCurrencyRepository)(nil)

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int) (*domain.Currency, error) {
	var m models.Currency
	err := r.Pool.QueryRow(ctx, `
		SELECT id, name, symbol, code, precision
		FROM currency
		WHERE id = $1`, currencyID,
	).Scan(&m.ID, &m.Name, &m.Symbol, &m.Code, &m.Precision)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("currency %d", currencyID))
	}
	currency := mapping.ToDomainCurrency(m)
	return &currency, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name, symbol, code, precision FROM currency ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies := []models.Currency{}
	for rows.Next() {
		var m models.Currency
		if err := rows.Scan(&m.ID, &m.Name, &m.Symbol, &m.Code, &m.Precision); err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", err)
		}
		currencies = append(currencies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rows: %w", err)
	}
	return mapping.ToDomainCurrencySlice(currencies), nil
}
