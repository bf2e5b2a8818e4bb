package handlers

import (
	"log"
	"net/http"

	request "autopaint_quotation/internal/adapter/http/dto/request"
	response "autopaint_quotation/internal/adapter/http/dto/response"
	"autopaint_quotation/internal/infrastructure/document"
	"autopaint_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuotationHandler serves saved quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
	refData usecase.IReferenceDataUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase, refData usecase.IReferenceDataUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc, refData: refData}
}

// ListQuotations returns saved quotations, newest first.
// @Summary List quotations
// @Tags Quotations
// @Produce json
// @Param search query string false "Customer name, phone, car name or license plate"
// @Param status query string false "draft | sent | approved | rejected"
// @Param service_type query string false "Service type"
// @Success 200 {array} response.QuotationResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /quotations [get]
func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	var q request.QuotationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	records, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		log.Printf("[quotation][handler] list failed err=%v", err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationRecords(records))
}

// GetQuotation returns one quotation joined with its customer.
// @Summary Get a quotation
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation id"
// @Success 200 {object} response.QuotationResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotationRecord(rec))
}

// DownloadDocument renders the printable quotation as xlsx.
// @Summary Download the printable quotation
// @Tags Quotations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quotation id"
// @Success 200 {file} file
// @Failure 404 {object} pkg.HTTPError
// @Router /quotations/{id}/document [get]
func (h *QuotationHandler) DownloadDocument(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Without a catalogue the document prints raw ids.
	var names document.Names
	if catalog, err := h.refData.Catalog(c.Request.Context()); err == nil && catalog != nil {
		names = catalog
	} else {
		log.Printf("[quotation][handler] document without names quotation_id=%s err=%v", rec.ID, err)
	}

	f, err := document.RenderQuotation(rec, names)
	if err != nil {
		log.Printf("[quotation][handler] render failed quotation_id=%s err=%v", rec.ID, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	c.Header("Content-Type", document.ContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+document.Filename(rec)+"\"")
	c.Header("Content-Transfer-Encoding", "binary")
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[quotation][handler] write document failed quotation_id=%s err=%v", rec.ID, err)
	}
}

// DeleteQuotation removes a quotation. Unknown ids succeed.
// @Summary Delete a quotation
// @Tags Quotations
// @Param id path string true "Quotation id"
// @Success 204
// @Failure 502 {object} pkg.HTTPError
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) DeleteQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[quotation][handler] delete failed quotation_id=%s err=%v", id, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quotation][handler] deleted quotation_id=%s", id)
	c.Status(http.StatusNoContent)
}
