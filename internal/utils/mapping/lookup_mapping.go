package mapping

import (
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/models"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToDomainCashPayment converts a model CashPayment to a domain CashPayment
func ToDomainCashPayment(m models.CashPayment) domain.CashPayment {
	return domain.CashPayment{
		UUID:        m.UUID,
		Reference:   m.Reference,
		DebtorUUID:  m.DebtorUUID,
		ProjectID:   m.ProjectID,
		CurrencyID:  m.CurrencyID,
		Amount:      m.Amount,
		Date:        m.Date,
		IsCaution:   m.IsCaution,
		UserID:      m.UserID,
		Description: deref(m.Description),
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainPatient converts a model Patient to a domain Patient
func ToDomainPatient(m models.Patient) domain.Patient {
	return domain.Patient{
		UUID:        m.UUID,
		DebtorUUID:  m.DebtorUUID,
		Reference:   m.Reference,
		DisplayName: m.DisplayName,
		Sex:         m.Sex,
		DOB:         m.DOB,
		Phone:       deref(m.Phone),
	}
}

// ToDomainEnterprise converts a model Enterprise to a domain Enterprise
func ToDomainEnterprise(m models.Enterprise) domain.Enterprise {
	return domain.Enterprise{
		ID:         m.ID,
		Name:       m.Name,
		Abbr:       m.Abbr,
		Phone:      deref(m.Phone),
		Email:      deref(m.Email),
		Address:    deref(m.Address),
		CurrencyID: m.CurrencyID,
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ID:           m.ID,
		Name:         m.Name,
		Abbr:         m.Abbr,
		EnterpriseID: m.EnterpriseID,
	}
}
