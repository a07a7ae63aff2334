package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/SscSPs/hospital_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to patient invoices.
type saleHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func registerSaleRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := &saleHandler{invoiceService: invoiceService}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("/:uuid", h.getSale)
	}
}

// createSale godoc
// @Summary Create a patient invoice
// @Description Records a sale. Project and currency come from the session and the active price list is applied to each line.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale and its items"
// @Success 201 {object} domain.Sale
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	draft, items := req.ToDraft()
	sale, err := h.invoiceService.CreateSale(c.Request.Context(), draft, items, session)
	if err != nil {
		respondError(c, err, "Failed to create sale")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Sale created",
		slog.String("sale_uuid", sale.UUID),
		slog.String("cost", sale.Cost.String()))
	c.JSON(http.StatusCreated, sale)
}

// getSale godoc
// @Summary Get a patient invoice
// @Tags sales
// @Produce  json
// @Param   uuid path string true "Sale UUID"
// @Success 200 {object} domain.Sale
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{uuid} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	sale, err := h.invoiceService.GetSale(c.Request.Context(), session.EnterpriseID, c.Param("uuid"))
	if err != nil {
		respondError(c, err, "Failed to load sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}
