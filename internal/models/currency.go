package models

// Currency represents a row of the currency table.
type Currency struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Code      string `json:"code"`
	Precision int    `json:"precision"`
}
