package pgsql

import (
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	lookups := newPgxLookupRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PriceListRepo:    newPgxPriceListRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		SaleRepo:         newPgxSaleRepository(dbPool),
		CashPaymentRepo:  lookups,
		UserRepo:         newPgxUserRepository(dbPool),
		PatientRepo:      lookups,
		EnterpriseRepo:   lookups,
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
	}
}
