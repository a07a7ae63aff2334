package repositories

import (
	"context"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
)

// The readers below front records owned by other parts of the hospital
// system. Each returns apperrors.ErrNotFound when the record is absent.

// CashPaymentReader looks up cash payments.
type CashPaymentReader interface {
	FindCashPaymentByUUID(ctx context.Context, paymentUUID string) (*domain.CashPayment, error)
}

// PatientReader looks up patients.
type PatientReader interface {
	FindPatientByDebtorUUID(ctx context.Context, debtorUUID string) (*domain.Patient, error)
}

// EnterpriseReader looks up enterprises and projects.
type EnterpriseReader interface {
	FindEnterpriseByProjectID(ctx context.Context, projectID int) (*domain.Enterprise, error)
	FindProjectByID(ctx context.Context, projectID int) (*domain.Project, error)
}
