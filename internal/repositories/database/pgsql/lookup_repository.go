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

// PgxLookupRepository reads the cash, patient, enterprise and project
// records that receipts and sessions are built from.
type PgxLookupRepository struct {
	BaseRepository
}

func newPgxLookupRepository(db *pgxpool.Pool) *PgxLookupRepository {
	return &PgxLookupRepository{BaseRepository: BaseRepository{Pool: db}}
}

var (
	_ portsrepo.CashPaymentReader = (*PgxLookupRepository)(nil)
	_ portsrepo.PatientReader     = (*PgxLookupRepository)(nil)
	_ portsrepo.EnterpriseReader  = (*PgxLookupRepository)(nil)
)

// FindCashPaymentByUUID retrieves a cash payment.
func (r *PgxLookupRepository) FindCashPaymentByUUID(ctx context.Context, paymentUUID string) (*domain.CashPayment, error) {
	var m models.CashPayment
	err := r.Pool.QueryRow(ctx, `
		SELECT uuid, reference, debtor_uuid, project_id, currency_id, amount, date,
			is_caution, user_id, description, created_at
		FROM cash
		WHERE uuid = $1`, paymentUUID,
	).Scan(
		&m.UUID, &m.Reference, &m.DebtorUUID, &m.ProjectID, &m.CurrencyID, &m.Amount, &m.Date,
		&m.IsCaution, &m.UserID, &m.Description, &m.CreatedAt,
	)
	if err != nil {
		return nil, mapReadError(err, "cash payment "+paymentUUID)
	}
	payment := mapping.ToDomainCashPayment(m)
	return &payment, nil
}

// FindPatientByDebtorUUID retrieves the patient attached to a debtor.
func (r *PgxLookupRepository) FindPatientByDebtorUUID(ctx context.Context, debtorUUID string) (*domain.Patient, error) {
	var m models.Patient
	err := r.Pool.QueryRow(ctx, `
		SELECT uuid, debtor_uuid, reference, display_name, sex, dob, phone
		FROM patient
		WHERE debtor_uuid = $1`, debtorUUID,
	).Scan(&m.UUID, &m.DebtorUUID, &m.Reference, &m.DisplayName, &m.Sex, &m.DOB, &m.Phone)
	if err != nil {
		return nil, mapReadError(err, "patient of debtor "+debtorUUID)
	}
	patient := mapping.ToDomainPatient(m)
	return &patient, nil
}

// FindEnterpriseByProjectID retrieves the enterprise owning a project.
func (r *PgxLookupRepository) FindEnterpriseByProjectID(ctx context.Context, projectID int) (*domain.Enterprise, error) {
	var m models.Enterprise
	err := r.Pool.QueryRow(ctx, `
		SELECT e.id, e.name, e.abbr, e.phone, e.email, e.address, e.currency_id
		FROM enterprise e
		JOIN project p ON p.enterprise_id = e.id
		WHERE p.id = $1`, projectID,
	).Scan(&m.ID, &m.Name, &m.Abbr, &m.Phone, &m.Email, &m.Address, &m.CurrencyID)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("enterprise of project %d", projectID))
	}
	enterprise := mapping.ToDomainEnterprise(m)
	return &enterprise, nil
}

// FindProjectByID retrieves a project.
func (r *PgxLookupRepository) FindProjectByID(ctx context.Context, projectID int) (*domain.Project, error) {
	var m models.Project
	err := r.Pool.QueryRow(ctx, `
		SELECT id, name, abbr, enterprise_id
		FROM project
		WHERE id = $1`, projectID,
	).Scan(&m.ID, &m.Name, &m.Abbr, &m.EnterpriseID)
	if err != nil {
		return nil, mapReadError(err, fmt.Sprintf("project %d", projectID))
	}
	project := mapping.ToDomainProject(m)
	return &project, nil
}
