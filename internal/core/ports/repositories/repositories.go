package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PriceListRepo    PriceListRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	SaleRepo         SaleRepositoryFacade
	CashPaymentRepo  CashPaymentReader
	UserRepo         UserRepositoryFacade
	PatientRepo      PatientReader
	EnterpriseRepo   EnterpriseReader
	CurrencyRepo     CurrencyReader
}
