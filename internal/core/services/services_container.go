package services

import (
	portsrepo "github.com/SscSPs/hospital_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/platform/config"
	"github.com/SscSPs/hospital_billing_app/internal/report"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// receiptObserver may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, receiptObserver func(renderer string, hasRate bool)) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	priceLists := NewPriceListService(repos.PriceListRepo)
	container.PriceList = priceLists

	exchangeRates := NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo)
	container.ExchangeRate = exchangeRates
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	// Invoices are priced through the price list service, never the repository.
	assembler := NewInvoiceAssembler(priceLists, repos.CurrencyRepo)
	container.Invoice = NewInvoiceService(assembler, repos.SaleRepo)

	container.Receipt = NewReceiptService(
		ReceiptLookups{
			Payments:    repos.CashPaymentRepo,
			Users:       repos.UserRepo,
			Patients:    repos.PatientRepo,
			Enterprises: repos.EnterpriseRepo,
			Currencies:  repos.CurrencyRepo,
		},
		exchangeRates,
		report.NewManager(cfg.DefaultLocale),
		WithLookupTimeout(cfg.ReceiptLookupTimeout),
		WithReceiptObserver(receiptObserver),
	)

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.EnterpriseRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PriceListSvcFacade    = (*PriceListService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.CurrencyReaderSvc     = (*CurrencyService)(nil)
	_ portssvc.InvoiceSvcFacade      = (*InvoiceService)(nil)
	_ portssvc.ReceiptSvc            = (*ReceiptService)(nil)
	_ portssvc.AuthSvc               = (*AuthService)(nil)
	_ portssvc.UserReaderSvc         = (*UserService)(nil)
)
