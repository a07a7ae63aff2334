package domain

import "time"

// Patient is the person attached to a debtor account.
type Patient struct {
	UUID        string     `json:"uuid"`
	DebtorUUID  string     `json:"debtorUUID"`
	Reference   string     `json:"reference"` // e.g. "PA.HEV.42"
	DisplayName string     `json:"displayName"`
	Sex         string     `json:"sex"`
	DOB         *time.Time `json:"dob,omitempty"`
	Phone       string     `json:"phone,omitempty"`
}
