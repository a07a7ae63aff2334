package dto

import (
	"time"

	"github.com/SscSPs/hospital_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for recording a new exchange rate.
// Rate is the number of units of the currency bought by one enterprise currency unit.
type CreateExchangeRateRequest struct {
	CurrencyID int             `json:"currencyID" binding:"required,gt=0"`
	Rate       decimal.Decimal `json:"rate" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
}

// ListExchangeRatesParams are the query parameters of the list endpoint.
type ListExchangeRatesParams struct {
	Limit     int     `form:"limit" binding:"omitempty,gte=0"`
	NextToken *string `form:"nextToken"`
}

// ListExchangeRatesResponse is one page of rate history.
type ListExchangeRatesResponse struct {
	Rates     []ExchangeRateResponse `json:"rates"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ResolveExchangeRateParams are the query parameters of the resolve endpoint.
// Date is a UTC calendar day and defaults to now.
type ResolveExchangeRateParams struct {
	CurrencyID int        `form:"currency_id" binding:"required,gt=0"`
	Date       *time.Time `form:"date" time_format:"2006-01-02" time_utc:"1"`
}

// ConvertParams are the query parameters of the convert endpoint.
type ConvertParams struct {
	CurrencyID int        `form:"currency_id" binding:"required,gt=0"`
	Amount     string     `form:"amount" binding:"required,numeric"`
	Date       *time.Time `form:"date" time_format:"2006-01-02" time_utc:"1"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID            int             `json:"id"`
	EnterpriseID  int             `json:"enterpriseID"`
	CurrencyID    int             `json:"currencyID"`
	Rate          decimal.Decimal `json:"rate"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     int             `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy int             `json:"lastUpdatedBy"`
}

// ResolvedRateResponse is returned by the resolve endpoint. A missing rate is
// reported with HasRate=false rather than as an error.
type ResolvedRateResponse struct {
	HasRate bool                  `json:"hasRate"`
	Rate    *ExchangeRateResponse `json:"rate,omitempty"`
}

// ConversionResponse is the result of converting an amount into the enterprise
// currency. Rate is absent when the amount already was in that currency.
type ConversionResponse struct {
	CurrencyID int              `json:"currencyID"`
	Amount     decimal.Decimal  `json:"amount"`
	Converted  decimal.Decimal  `json:"converted"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
	RateDate   *time.Time       `json:"rateDate,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:            rate.ID,
		EnterpriseID:  rate.EnterpriseID,
		CurrencyID:    rate.CurrencyID,
		Rate:          rate.Rate,
		Date:          rate.Date,
		CreatedAt:     rate.CreatedAt,
		CreatedBy:     rate.CreatedBy,
		LastUpdatedAt: rate.LastUpdatedAt,
		LastUpdatedBy: rate.LastUpdatedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToListExchangeRatesResponse wraps a page of rates and its next token.
func ToListExchangeRatesResponse(rates []domain.ExchangeRate, nextToken *string) ListExchangeRatesResponse {
	return ListExchangeRatesResponse{Rates: ToListExchangeRateResponse(rates), NextToken: nextToken}
}

// ToResolvedRateResponse wraps a possibly missing rate.
func ToResolvedRateResponse(rate *domain.ExchangeRate) ResolvedRateResponse {
	if rate == nil {
		return ResolvedRateResponse{}
	}
	resp := ToExchangeRateResponse(rate)
	return ResolvedRateResponse{HasRate: true, Rate: &resp}
}

// ToConversionResponse builds the convert endpoint response.
func ToConversionResponse(currencyID int, amount, converted decimal.Decimal, rate *domain.ExchangeRate) ConversionResponse {
	resp := ConversionResponse{CurrencyID: currencyID, Amount: amount, Converted: converted}
	if rate != nil {
		value, date := rate.Rate, rate.Date
		resp.Rate, resp.RateDate = &value, &date
	}
	return resp
}
