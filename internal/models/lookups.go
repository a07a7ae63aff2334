package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashPayment represents a row of the cash table.
type CashPayment struct {
	UUID        string          `json:"uuid"`
	Reference   string          `json:"reference"`
	DebtorUUID  string          `json:"debtorUUID"`
	ProjectID   int             `json:"projectID"`
	CurrencyID  int             `json:"currencyID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	IsCaution   bool            `json:"isCaution"`
	UserID      int             `json:"userID"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Patient represents a row of the patient table.
type Patient struct {
	UUID        string     `json:"uuid"`
	DebtorUUID  string     `json:"debtorUUID"`
	Reference   string     `json:"reference"`
	DisplayName string     `json:"displayName"`
	Sex         string     `json:"sex"`
	DOB         *time.Time `json:"dob"`
	Phone       *string    `json:"phone"`
}

// Enterprise represents a row of the enterprise table.
type Enterprise struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Abbr       string  `json:"abbr"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	CurrencyID int     `json:"currencyID"`
}

// Project represents a row of the project table.
type Project struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbr         string `json:"abbr"`
	EnterpriseID int    `json:"enterpriseID"`
}
