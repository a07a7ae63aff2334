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
	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/report"
	"golang.org/x/sync/errgroup"
)

// DefaultReceiptLookupTimeout bounds the concurrent lookups of a receipt.
const DefaultReceiptLookupTimeout = 5 * time.Second

// ReceiptLookups are the collaborators a receipt is assembled from.
type ReceiptLookups struct {
	Payments    portsrepo.CashPaymentReader
	Users       portsrepo.UserReader
	Patients    portsrepo.PatientReader
	Enterprises portsrepo.EnterpriseReader
	Currencies  portsrepo.CurrencyReader
}

// ReceiptService assembles receipt payloads and renders them.
type ReceiptService struct {
	BaseService
	lookups       ReceiptLookups
	rates         portssvc.ExchangeRateReaderSvc
	reports       *report.Manager
	lookupTimeout time.Duration
	observe       func(renderer string, hasRate bool)
}

// ReceiptServiceOption configures a ReceiptService.
type ReceiptServiceOption func(*ReceiptService)

// WithLookupTimeout overrides DefaultReceiptLookupTimeout.
func WithLookupTimeout(d time.Duration) ReceiptServiceOption {
	return func(s *ReceiptService) {
		if d > 0 {
			s.lookupTimeout = d
		}
	}
}

// WithReceiptObserver registers a callback run after each successful render.
func WithReceiptObserver(fn func(renderer string, hasRate bool)) ReceiptServiceOption {
	return func(s *ReceiptService) {
		s.observe = fn
	}
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(lookups ReceiptLookups, rates portssvc.ExchangeRateReaderSvc, reports *report.Manager, opts ...ReceiptServiceOption) *ReceiptService {
	s := &ReceiptService{
		lookups:       lookups,
		rates:         rates,
		reports:       reports,
		lookupTimeout: DefaultReceiptLookupTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildCashReceipt renders the receipt of a cash payment. The renderer is
// chosen before any lookup; a receipt is only rendered once every lookup
// succeeded.
func (s *ReceiptService) BuildCashReceipt(ctx context.Context, paymentUUID string, opts report.Options) (*report.Result, error) {
	renderer, err := s.reports.RendererFor(report.CashReceipt, opts)
	if err != nil {
		return nil, err
	}

	payment, err := s.lookups.Payments.FindCashPaymentByUUID(ctx, paymentUUID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: cash payment %s", apperrors.ErrNotFound, paymentUUID)
		}
		return nil, fmt.Errorf("failed to load cash payment %s: %w", paymentUUID, err)
	}

	payload, err := s.collect(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Receipt lookups failed", slog.String("payment_uuid", paymentUUID))
		return nil, err
	}

	rate, err := s.rates.ResolveExchangeRate(ctx, payload.Enterprise.ID, payment.CurrencyID, payment.Date)
	if err != nil {
		return nil, apperrors.NewDependencyError("exchange rate lookup failed", err)
	}
	payload.HasRate = rate != nil && !payment.IsCaution
	if payload.HasRate {
		value := rate.Rate
		payload.Rate = &value
	}

	result, err := renderer.Render(ctx, payload)
	if err != nil {
		return nil, err
	}

	if s.observe != nil {
		s.observe(opts.Renderer, payload.HasRate)
	}
	s.LogDebug(ctx, "Cash receipt rendered",
		slog.String("payment_uuid", paymentUUID),
		slog.Bool("has_rate", payload.HasRate))
	return result, nil
}

// collect runs the lookups that only depend on the payment concurrently.
func (s *ReceiptService) collect(ctx context.Context, payment *domain.CashPayment) (*domain.ReceiptPayload, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	var (
		user       *domain.User
		patient    *domain.Patient
		enterprise *domain.Enterprise
		currency   *domain.Currency
	)

	g, gctx := errgroup.WithContext(lookupCtx)
	g.Go(func() error {
		u, err := s.lookups.Users.FindUserByID(gctx, payment.UserID)
		if err != nil {
			return fmt.Errorf("user %d: %w", payment.UserID, err)
		}
		user = u
		return nil
	})
	g.Go(func() error {
		p, err := s.lookups.Patients.FindPatientByDebtorUUID(gctx, payment.DebtorUUID)
		if err != nil {
			return fmt.Errorf("patient of debtor %s: %w", payment.DebtorUUID, err)
		}
		patient = p
		return nil
	})
	g.Go(func() error {
		e, err := s.lookups.Enterprises.FindEnterpriseByProjectID(gctx, payment.ProjectID)
		if err != nil {
			return fmt.Errorf("enterprise of project %d: %w", payment.ProjectID, err)
		}
		enterprise = e
		return nil
	})
	g.Go(func() error {
		c, err := s.lookups.Currencies.FindCurrencyByID(gctx, payment.CurrencyID)
		if err != nil {
			return fmt.Errorf("currency %d: %w", payment.CurrencyID, err)
		}
		currency = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.NewDependencyError("receipt lookup failed", err)
	}
	// A lookup that ignores cancellation must not let a late receipt through.
	if err := lookupCtx.Err(); err != nil {
		return nil, apperrors.NewDependencyError("receipt lookup did not finish in time", err)
	}

	return &domain.ReceiptPayload{
		Payment:    *payment,
		User:       *user,
		Patient:    *patient,
		Enterprise: *enterprise,
		Currency:   currency,
	}, nil
}
