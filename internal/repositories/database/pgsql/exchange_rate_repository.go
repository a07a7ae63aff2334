package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/hospital_billing_app/internal/models"
	"github.com/SscSPs/hospital_billing_app/internal/utils/mapping"
	"github.com/SscSPs/hospital_billing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateColumns = `id, enterprise_id, currency_id, rate, date,
	created_at, created_by, last_updated_at, last_updated_by`

// Ties on date go to the record inserted last.
const findExchangeRateAsOfQuery = `
	SELECT ` + exchangeRateColumns + `
	FROM exchange_rate
	WHERE enterprise_id = $1 AND currency_id = $2 AND date <= $3
	ORDER BY date DESC, id DESC
	LIMIT 1`

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ID, &m.EnterpriseID, &m.CurrencyID, &m.Rate, &m.Date,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindExchangeRateAsOf retrieves the most recent rate dated on or before asOf.
func (r *PgxExchangeRateRepository) FindExchangeRateAsOf(ctx context.Context, enterpriseID, currencyID int, asOf time.Time) (*domain.ExchangeRate, error) {
	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, findExchangeRateAsOfQuery, enterpriseID, currencyID, asOf))
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("exchange rate for currency %d", currencyID))
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListExchangeRates retrieves one page of an enterprise's rates, newest first.
// The next token points at the last row of the page; nil means no more rows.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, enterpriseID int, limit int, nextToken *string) ([]domain.ExchangeRate, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	// One extra row tells whether another page exists.
	fetchLimit := limit + 1

	args := []any{enterpriseID}
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rate WHERE enterprise_id = $1`
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (date, id) < ($2, $3)`
		args = append(args, lastDate, lastID)
	}
	query += ` ORDER BY date DESC, id DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates := make([]models.ExchangeRate, 0, fetchLimit)
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating exchange rate rows: %w", err)
	}

	var next *string
	if len(rates) > limit {
		last := rates[limit-1]
		token := pagination.EncodeToken(last.Date, last.ID)
		next = &token
		rates = rates[:limit]
	}
	return mapping.ToDomainExchangeRateSlice(rates), next, nil
}

// SaveExchangeRate appends a rate. A second rate for the same currency and
// date is rejected by the unique index.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (int, error) {
	m := mapping.ToModelExchangeRate(rate)
	var id int
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO exchange_rate (
			enterprise_id, currency_id, rate, date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		m.EnterpriseID, m.CurrencyID, m.Rate, m.Date,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, mapWriteError(err, "exchange rate")
	}
	return id, nil
}
