package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/SscSPs/hospital_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	now                 func() time.Time
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		now:                 time.Now,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/resolve", h.resolveExchangeRate)
		exchangeRates.GET("/convert", h.convert)
	}
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Records the rate of a foreign currency against the enterprise currency, effective from its date.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "A rate already exists for this date"
// @Failure 500 {object} ErrorResponse "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create exchange rate",
		slog.Int("currency_id", req.CurrencyID),
		slog.String("rate", req.Rate.String()),
		slog.Time("date", req.Date),
	)

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.Int("exchange_rate_id", rate.ID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists the rate history of the session enterprise, newest first, one page at a time.
// @Tags exchange rates
// @Produce  json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	rates, next, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), session.EnterpriseID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRatesResponse(rates, next))
}

// resolveExchangeRate godoc
// @Summary Resolve the rate effective on a date
// @Description Returns the latest rate dated on or before date. A missing rate is reported with hasRate=false.
// @Tags exchange rates
// @Produce  json
// @Param   currency_id query int true "Currency ID"
// @Param   date query string false "Effective date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ResolvedRateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/resolve [get]
func (h *exchangeRateHandler) resolveExchangeRate(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.ResolveExchangeRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	rate, err := h.exchangeRateService.ResolveExchangeRate(c.Request.Context(), session.EnterpriseID, params.CurrencyID, h.asOf(params.Date))
	if err != nil {
		respondError(c, err, "Failed to resolve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToResolvedRateResponse(rate))
}

// convert godoc
// @Summary Convert an amount into the enterprise currency
// @Tags exchange rates
// @Produce  json
// @Param   currency_id query int true "Currency of the amount"
// @Param   amount query string true "Amount to convert"
// @Param   date query string false "Effective date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate effective on date"
// @Security BearerAuth
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		respondBindError(c, err)
		return
	}

	converted, rate, err := h.exchangeRateService.ConvertToEnterprise(c.Request.Context(), session, params.CurrencyID, amount, h.asOf(params.Date))
	if err != nil {
		respondError(c, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(params.CurrencyID, amount, converted, rate))
}

// asOf turns an optional calendar day into the instant rates are resolved at.
// Every rate recorded during that day counts, so it is the last microsecond of
// the day (the resolution of timestamptz).
func (h *exchangeRateHandler) asOf(date *time.Time) time.Time {
	if date == nil {
		return h.now()
	}
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC).Add(-time.Microsecond)
}
