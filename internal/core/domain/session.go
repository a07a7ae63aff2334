package domain

// SessionContext carries the identity under which a request runs. Values here
// always win over anything a client puts in a request body.
type SessionContext struct {
	UserID       int
	ProjectID    int
	EnterpriseID int
	CurrencyID   int // enterprise currency
}
