package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hospital_billing_app/internal/core/ports/services"
	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/SscSPs/hospital_billing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// priceListHandler handles HTTP requests related to price lists.
type priceListHandler struct {
	priceListService portssvc.PriceListSvcFacade
}

func newPriceListHandler(pls portssvc.PriceListSvcFacade) *priceListHandler {
	return &priceListHandler{priceListService: pls}
}

// registerPriceListRoutes registers routes related to price lists.
func registerPriceListRoutes(rg *gin.RouterGroup, priceListService portssvc.PriceListSvcFacade) {
	h := newPriceListHandler(priceListService)

	priceLists := rg.Group("/prices")
	{
		priceLists.GET("", h.listPriceLists)
		priceLists.GET("/active", h.getActivePriceList)
		priceLists.POST("", h.createPriceList)
		priceLists.GET("/:uuid", h.getPriceList)
		priceLists.PUT("/:uuid", h.updatePriceList)
		priceLists.DELETE("/:uuid", h.deletePriceList)
	}
}

// listPriceLists godoc
// @Summary List price lists
// @Description Lists the price lists of the session enterprise. Items are included when detailed is set.
// @Tags prices
// @Produce  json
// @Param   detailed query bool false "Include items"
// @Success 200 {array} dto.PriceListResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices [get]
func (h *priceListHandler) listPriceLists(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListPriceListsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	lists, err := h.priceListService.ListPriceLists(c.Request.Context(), session.EnterpriseID, params.Detailed)
	if err != nil {
		respondError(c, err, "Failed to list price lists")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceListResponse(lists))
}

// getActivePriceList godoc
// @Summary Get the active price list
// @Description Returns the price list currently applied to new sales, or 404 when none is active.
// @Tags prices
// @Produce  json
// @Success 200 {object} dto.PriceListResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices/active [get]
func (h *priceListHandler) getActivePriceList(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	list, err := h.priceListService.GetActivePriceList(c.Request.Context(), session.EnterpriseID)
	if err != nil {
		respondError(c, err, "Failed to load active price list")
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "NotFoundError", Message: "No active price list"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// getPriceList godoc
// @Summary Get a price list
// @Tags prices
// @Produce  json
// @Param   uuid path string true "Price list UUID"
// @Success 200 {object} dto.PriceListResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices/{uuid} [get]
func (h *priceListHandler) getPriceList(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	list, err := h.priceListService.GetPriceList(c.Request.Context(), session.EnterpriseID, c.Param("uuid"))
	if err != nil {
		respondError(c, err, "Failed to load price list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// createPriceList godoc
// @Summary Create a price list
// @Description Creates a price list. Each item sets exactly one of price or adjustment.
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   list body dto.PriceListRequest true "Price list"
// @Success 201 {object} dto.PriceListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices [post]
func (h *priceListHandler) createPriceList(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.PriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create price list", slog.String("label", req.Label), slog.Int("items", len(req.Items)))

	list, err := h.priceListService.CreatePriceList(c.Request.Context(), session.EnterpriseID, req, session.UserID)
	if err != nil {
		respondError(c, err, "Failed to create price list")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPriceListResponse(list))
}

// updatePriceList godoc
// @Summary Replace a price list
// @Description Replaces the label, validity and items of a price list.
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   uuid path string true "Price list UUID"
// @Param   list body dto.PriceListRequest true "Price list"
// @Success 200 {object} dto.PriceListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /prices/{uuid} [put]
func (h *priceListHandler) updatePriceList(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.PriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.priceListService.UpdatePriceList(c.Request.Context(), session.EnterpriseID, c.Param("uuid"), req, session.UserID)
	if err != nil {
		respondError(c, err, "Failed to update price list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// deletePriceList godoc
// @Summary Delete a price list
// @Description Deletes a price list that no debtor group references.
// @Tags prices
// @Param   uuid path string true "Price list UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Price list is in use"
// @Security BearerAuth
// @Router /prices/{uuid} [delete]
func (h *priceListHandler) deletePriceList(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	if err := h.priceListService.DeletePriceList(c.Request.Context(), session.EnterpriseID, c.Param("uuid")); err != nil {
		respondError(c, err, "Failed to delete price list")
		return
	}
	c.Status(http.StatusNoContent)
}
