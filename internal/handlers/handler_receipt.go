package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/report"
	"github.com/gin-gonic/gin"
)

type receiptHandler struct {
	receiptService portssvc.ReceiptSvc
}

func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvc) {
	h := &receiptHandler{receiptService: receiptService}
	rg.GET("/reports/cash/:uuid", h.getCashReceipt)
}

// getCashReceipt godoc
// @Summary Render a cash payment receipt
// @Description Renders the receipt of a cash payment as json, html or pdf. The exchange rate line is omitted for caution payments.
// @Tags reports
// @Produce  json,html,application/pdf
// @Param   uuid path string true "Cash payment UUID"
// @Param   renderer query string false "json, html or pdf" default(json)
// @Param   lang query string false "en or fr"
// @Success 200 {object} domain.ReceiptPayload
// @Failure 400 {object} ErrorResponse "Unknown renderer or language"
// @Failure 404 {object} ErrorResponse
// @Failure 424 {object} ErrorResponse "A lookup failed"
// @Security BearerAuth
// @Router /reports/cash/{uuid} [get]
func (h *receiptHandler) getCashReceipt(c *gin.Context) {
	var opts report.Options
	if err := c.ShouldBindQuery(&opts); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.receiptService.BuildCashReceipt(c.Request.Context(), c.Param("uuid"), opts)
	if err != nil {
		respondError(c, err, "Failed to render receipt")
		return
	}

	contentType := result.Headers["Content-Type"]
	for key, value := range result.Headers {
		if key != "Content-Type" {
			c.Header(key, value)
		}
	}
	c.Data(http.StatusOK, contentType, result.Report)
}
