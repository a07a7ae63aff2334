package report_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/SscSPs/hospital_billing_app/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload(caution bool, hasRate bool) *domain.ReceiptPayload {
	rate := decimal.RequireFromString("1.1")
	payload := &domain.ReceiptPayload{
		Payment: domain.CashPayment{
			UUID:        "2b1d1d0e-8a0e-4a8e-9a11-0c2f3c4d5e6f",
			Reference:   "CP.TPA.12",
			Amount:      decimal.RequireFromString("1234.5"),
			Date:        time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC),
			IsCaution:   caution,
			Description: "Consultation",
		},
		User:       domain.User{ID: 1, DisplayName: "Cashier One"},
		Patient:    domain.Patient{DisplayName: "Jane Doe", Reference: "PA.TPA.7"},
		Enterprise: domain.Enterprise{ID: 1, Name: "Hopital Vanga"},
		Currency:   &domain.Currency{ID: 2, Symbol: "$", Precision: 2},
		HasRate:    hasRate,
	}
	if hasRate {
		payload.Rate = &rate
	}
	return payload
}

func TestManager_RendererFor_UnknownRenderer(t *testing.T) {
	m := report.NewManager("en")

	r, err := m.RendererFor(report.CashReceipt, report.Options{Renderer: "docx"})

	assert.Nil(t, r)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestManager_RendererFor_UnknownLanguage(t *testing.T) {
	m := report.NewManager("en")

	_, err := m.RendererFor(report.CashReceipt, report.Options{Renderer: "html", Lang: "tlh"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestJSONRenderer(t *testing.T) {
	r, err := report.NewManager("en").RendererFor(report.CashReceipt, report.Options{})
	require.NoError(t, err)

	result, err := r.Render(context.Background(), samplePayload(false, true))
	require.NoError(t, err)

	assert.Equal(t, "application/json; charset=utf-8", result.Headers["Content-Type"])
	var body map[string]any
	require.NoError(t, json.Unmarshal(result.Report, &body))
	assert.Equal(t, true, body["hasRate"])
}

func TestHTMLRenderer_ShowsRateOnlyWhenAllowed(t *testing.T) {
	r, err := report.NewManager("en").RendererFor(report.CashReceipt, report.Options{Renderer: "HTML"})
	require.NoError(t, err)

	withRate, err := r.Render(context.Background(), samplePayload(false, true))
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", withRate.Headers["Content-Type"])
	assert.Contains(t, string(withRate.Report), "Exchange Rate")
	assert.Contains(t, string(withRate.Report), "1,234.50 $")

	caution, err := r.Render(context.Background(), samplePayload(true, false))
	require.NoError(t, err)
	assert.NotContains(t, string(caution.Report), "Exchange Rate")
	assert.Contains(t, string(caution.Report), "Caution Payment")
}

func TestHTMLRenderer_French(t *testing.T) {
	r, err := report.NewManager("en").RendererFor(report.CashReceipt, report.Options{Renderer: "html", Lang: "fr"})
	require.NoError(t, err)

	result, err := r.Render(context.Background(), samplePayload(false, false))
	require.NoError(t, err)

	html := string(result.Report)
	assert.Contains(t, html, `lang="fr"`)
	assert.Contains(t, html, "15/06/2023")
	assert.Contains(t, html, "Montant")
}

func TestPDFRenderer(t *testing.T) {
	r, err := report.NewManager("fr").RendererFor(report.CashReceipt, report.Options{Renderer: "pdf"})
	require.NoError(t, err)

	result, err := r.Render(context.Background(), samplePayload(false, true))
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", result.Headers["Content-Type"])
	assert.Contains(t, result.Headers["Content-Disposition"], "cash-receipt.pdf")
	assert.True(t, strings.HasPrefix(string(result.Report), "%PDF-"))
}

func TestCashReceipt_RejectsOtherData(t *testing.T) {
	r, err := report.NewManager("en").RendererFor(report.CashReceipt, report.Options{Renderer: "html"})
	require.NoError(t, err)

	_, err = r.Render(context.Background(), map[string]string{"payment": "x"})
	assert.ErrorContains(t, err, "expects *domain.ReceiptPayload")
}

func TestLocale_NumberRoundsHalfToEven(t *testing.T) {
	loc, err := report.NewLocale("en")
	require.NoError(t, err)

	assert.Equal(t, "2.12", loc.Number(decimal.RequireFromString("2.125"), 2))
	assert.Equal(t, "2.14", loc.Number(decimal.RequireFromString("2.135"), 2))
	assert.Equal(t, "1,000", loc.Number(decimal.NewFromInt(1000), 0))
}

func TestLocale_NumberKeepsEveryDigit(t *testing.T) {
	en, err := report.NewLocale("en")
	require.NoError(t, err)
	fr, err := report.NewLocale("fr")
	require.NoError(t, err)

	large := decimal.RequireFromString("90071992547409.93")
	assert.Equal(t, "90,071,992,547,409.93", en.Number(large, 2))
	assert.Equal(t, "-1,234,567.88", en.Number(decimal.RequireFromString("-1234567.885"), 2))
	assert.Equal(t, "0.50", en.Number(decimal.RequireFromString("0.5"), 2))
	assert.Equal(t, "999", en.Number(decimal.NewFromInt(999), 0))

	frLarge := fr.Number(large, 2)
	assert.True(t, strings.HasSuffix(frLarge, ",93"), frLarge)
	assert.Equal(t, "90071992547409,93", strings.Map(func(r rune) rune {
		if r == ' ' || r == '\u00a0' || r == '\u202f' {
			return -1
		}
		return r
	}, frLarge))
}
