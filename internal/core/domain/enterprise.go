package domain

// Enterprise is the billing organisation. Its currency is the currency every
// sale is recorded in.
type Enterprise struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Abbr       string `json:"abbr"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	CurrencyID int    `json:"currencyID"`
}

// Project is a billing site belonging to an enterprise.
type Project struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbr         string `json:"abbr"`
	EnterpriseID int    `json:"enterpriseID"`
}
