package handlers

import (
	"log"
	"net/http"

	request "autopaint_quotation/internal/adapter/http/dto/request"
	response "autopaint_quotation/internal/adapter/http/dto/response"
	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReferenceDataHandler serves the catalogue the wizard screens are built from.

type ReferenceDataHandler struct {
	usecase usecase.IReferenceDataUseCase
}

func NewReferenceDataHandler(uc usecase.IReferenceDataUseCase) *ReferenceDataHandler {
	return &ReferenceDataHandler{usecase: uc}
}

// ListServiceTypes returns the four service types with availability.
// @Summary List service types
// @Tags Reference data
// @Produce json
// @Success 200 {array} response.ServiceTypeResponse
// @Router /service-types [get]
func (h *ReferenceDataHandler) ListServiceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceTypes(entities.ServiceTypes()))
}

// GetReferenceData returns segments, parts with their removable parts, the
// optional services and the color-change extras.
// @Summary Get reference data
// @Tags Reference data
// @Produce json
// @Success 200 {object} response.ReferenceDataResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /reference-data [get]
func (h *ReferenceDataHandler) GetReferenceData(c *gin.Context) {
	catalog, err := h.usecase.Catalog(c.Request.Context())
	if err != nil {
		log.Printf("[reference][handler] load failed err=%v", err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

// ResolvePrice looks up one configured price. A missing price answers 0.
// @Summary Resolve a price
// @Tags Pricing
// @Produce json
// @Param segment_id query string true "Car segment id"
// @Param item_type query string true "car_part | service | removable_part | panel_painting"
// @Param item_id query string false "Item id (ignored for panel_painting)"
// @Success 200 {object} response.PriceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /pricing/resolve [get]
func (h *ReferenceDataHandler) ResolvePrice(c *gin.Context) {
	var q request.PriceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	price, err := h.usecase.ResolvePrice(c.Request.Context(), q.SegmentID, q.ResolveItemType(), q.ItemID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PriceResponse{
		SegmentID: q.SegmentID,
		ItemType:  q.ItemType,
		ItemID:    q.ItemID,
		Price:     price,
	})
}

// PricingOverview groups the price table per segment for review.
// @Summary Pricing overview
// @Tags Pricing
// @Produce json
// @Success 200 {object} pricing.Overview
// @Failure 503 {object} pkg.HTTPError
// @Router /pricing/overview [get]
func (h *ReferenceDataHandler) PricingOverview(c *gin.Context) {
	overview, err := h.usecase.PricingOverview(c.Request.Context())
	if err != nil {
		log.Printf("[reference][handler] overview failed err=%v", err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, overview)
}

// RefreshReferenceData drops the cached catalogue and loads it again.
// @Summary Reload reference data
// @Tags Reference data
// @Produce json
// @Success 200 {object} response.ReferenceDataResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /reference-data/refresh [post]
func (h *ReferenceDataHandler) RefreshReferenceData(c *gin.Context) {
	h.usecase.Invalidate()
	log.Printf("[reference][handler] cache invalidated")
	h.GetReferenceData(c)
}
