package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var labels = map[string]map[string]string{
	"en": {
		"CASH_RECEIPT":  "Cash Receipt",
		"CAUTION":       "Caution Payment",
		"REFERENCE":     "Reference",
		"DATE":          "Date",
		"PATIENT":       "Patient",
		"PATIENT_REF":   "Patient Reference",
		"AMOUNT":        "Amount",
		"CURRENCY":      "Currency",
		"RATE":          "Exchange Rate",
		"DESCRIPTION":   "Description",
		"RECORDED_BY":   "Recorded By",
		"PAYMENT":       "Payment",
		"ENTERPRISE":    "Enterprise",
		"THANK_YOU":     "Thank you for your payment.",
		"NOT_AVAILABLE": "-",
	},
	"fr": {
		"CASH_RECEIPT":  "Reçu de caisse",
		"CAUTION":       "Paiement de caution",
		"REFERENCE":     "Référence",
		"DATE":          "Date",
		"PATIENT":       "Patient",
		"PATIENT_REF":   "Référence patient",
		"AMOUNT":        "Montant",
		"CURRENCY":      "Devise",
		"RATE":          "Taux de change",
		"DESCRIPTION":   "Description",
		"RECORDED_BY":   "Enregistré par",
		"PAYMENT":       "Paiement",
		"ENTERPRISE":    "Entreprise",
		"THANK_YOU":     "Merci pour votre paiement.",
		"NOT_AVAILABLE": "-",
	},
}

var dateLayouts = map[string]string{
	"en": "2006-01-02",
	"fr": "02/01/2006",
}

// Locale formats labels, numbers and dates for one language key.
type Locale struct {
	Key     string
	group   string
	decimal string
}

// NewLocale returns the locale for key ("en" or "fr").
func NewLocale(key string) (*Locale, error) {
	if _, ok := labels[key]; !ok {
		return nil, fmt.Errorf("%w: unsupported language %q", apperrors.ErrValidation, key)
	}
	group, dec := separators(language.Make(key))
	return &Locale{Key: key, group: group, decimal: dec}, nil
}

// separators reads the grouping and decimal symbols of tag off a formatted
// sample, 1234.5.
func separators(tag language.Tag) (group, dec string) {
	sample := []rune(message.NewPrinter(tag).Sprint(number.Decimal(1234.5, number.Scale(1))))
	var b strings.Builder
	i := 0
	for ; i < len(sample) && sample[i] != '2'; i++ {
		if sample[i] != '1' {
			b.WriteRune(sample[i])
		}
	}
	group = b.String()
	b.Reset()
	for ; i < len(sample) && sample[i] != '5'; i++ {
		if sample[i] < '0' || sample[i] > '9' {
			b.WriteRune(sample[i])
		}
	}
	dec = b.String()
	if dec == "" {
		dec = "."
	}
	return group, dec
}

// T translates a label key, falling back to the key itself.
func (l *Locale) T(key string) string {
	if v, ok := labels[l.Key][key]; ok {
		return v
	}
	return key
}

// Number formats a value with precision fraction digits and the locale's
// grouping. Rounding is half-to-even and happens on the decimal itself.
func (l *Locale) Number(v decimal.Decimal, precision int) string {
	digits := v.RoundBank(int32(precision)).StringFixed(int32(precision))
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	whole, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(l.group)
		}
		b.WriteRune(d)
	}
	if frac != "" {
		b.WriteString(l.decimal)
		b.WriteString(frac)
	}
	return b.String()
}

// Money formats an amount followed by the currency symbol.
func (l *Locale) Money(v decimal.Decimal, precision int, symbol string) string {
	if symbol == "" {
		return l.Number(v, precision)
	}
	return l.Number(v, precision) + " " + symbol
}

// Date formats a date for display.
func (l *Locale) Date(t time.Time) string {
	if t.IsZero() {
		return l.T("NOT_AVAILABLE")
	}
	return t.Format(dateLayouts[l.Key])
}
