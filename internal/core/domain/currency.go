package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`      // e.g., "Congolese Franc"
	Symbol    string `json:"symbol"`    // e.g., "Fc"
	Code      string `json:"code"`      // ISO 4217, e.g., "CDF"
	Precision int    `json:"precision"` // Number of minor-unit digits, e.g. 2 for USD, 0 for JPY
}

// DefaultCurrencyPrecision is used when a currency record carries no precision.
const DefaultCurrencyPrecision = 2
