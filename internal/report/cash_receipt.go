package report

import (
	"fmt"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/utils"
)

// CashReceipt lays out a *domain.ReceiptPayload.
var CashReceipt = Template{
	Name:  "cash-receipt",
	Build: buildCashReceipt,
}

func buildCashReceipt(data any, loc *Locale) (*Document, error) {
	payload, ok := data.(*domain.ReceiptPayload)
	if !ok {
		return nil, fmt.Errorf("cash receipt expects *domain.ReceiptPayload, got %T", data)
	}

	precision := domain.DefaultCurrencyPrecision
	symbol := ""
	if payload.Currency != nil {
		precision = utils.EffectivePrecision(*payload.Currency)
		symbol = payload.Currency.Symbol
	}

	doc := &Document{
		Title: payload.Enterprise.Name + " - " + loc.T("CASH_RECEIPT"),
		Header: []Line{
			{Label: loc.T("REFERENCE"), Value: payload.Payment.Reference},
			{Label: loc.T("DATE"), Value: loc.Date(payload.Payment.Date)},
		},
		Footer: loc.T("THANK_YOU"),
	}
	if payload.Payment.IsCaution {
		doc.Subtitle = loc.T("CAUTION")
	}

	doc.Sections = append(doc.Sections, Section{
		Heading: loc.T("PATIENT"),
		Lines: []Line{
			{Label: loc.T("PATIENT"), Value: payload.Patient.DisplayName},
			{Label: loc.T("PATIENT_REF"), Value: payload.Patient.Reference},
		},
	})

	payment := Section{
		Heading: loc.T("PAYMENT"),
		Lines: []Line{
			{Label: loc.T("DESCRIPTION"), Value: payload.Payment.Description},
			{Label: loc.T("RECORDED_BY"), Value: payload.User.DisplayName},
		},
	}
	if payload.HasRate && payload.Rate != nil {
		payment.Lines = append(payment.Lines, Line{Label: loc.T("RATE"), Value: loc.Number(*payload.Rate, 4)})
	}
	payment.Lines = append(payment.Lines, Line{
		Label:    loc.T("AMOUNT"),
		Value:    loc.Money(payload.Payment.Amount, precision, symbol),
		Emphasis: true,
	})
	doc.Sections = append(doc.Sections, payment)

	return doc, nil
}
