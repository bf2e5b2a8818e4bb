package handlers

import (
	"context"
	"log"
	"net/http"

	request "autopaint_quotation/internal/adapter/http/dto/request"
	response "autopaint_quotation/internal/adapter/http/dto/response"
	"autopaint_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WizardHandler drives quotation wizard sessions over HTTP.
//
// Every state-changing endpoint answers with the full session so a client
// never has to reconstruct the wizard state itself.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// StartSession opens a wizard session at the customer step.
// @Summary Start a wizard session
// @Tags Wizard
// @Produce json
// @Success 201 {object} response.SessionResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /wizard/sessions [post]
func (h *WizardHandler) StartSession(c *gin.Context) {
	view, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// GetSession returns the session with the live preview in mode_detail.
// @Summary Get a wizard session
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.SessionResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /wizard/sessions/{id} [get]
func (h *WizardHandler) GetSession(c *gin.Context) {
	h.respond(c, h.usecase.Get)
}

// SubmitCustomer validates the intake form and moves to service selection.
// @Summary Submit customer information
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request.CustomerRequest true "Customer and vehicle"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/customer [post]
func (h *WizardHandler) SubmitCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respond(c, func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.SubmitCustomer(ctx, id, payload.ToEntity())
	})
}

// SelectService picks the service type and opens its builder.
// @Summary Select a service type
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request.ServiceSelectionRequest true "Service type"
// @Success 200 {object} response.SessionResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/service [post]
func (h *WizardHandler) SelectService(c *gin.Context) {
	var payload request.ServiceSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respond(c, func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.SelectService(ctx, id, payload.ResolveServiceType())
	})
}

// ApplyCommand applies one builder action (toggle, override, extra).
// @Summary Apply a builder command
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body request.CommandRequest true "Command"
// @Success 200 {object} response.SessionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 501 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/commands [post]
func (h *WizardHandler) ApplyCommand(c *gin.Context) {
	var payload request.CommandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respond(c, func(ctx context.Context, id string) (usecase.SessionView, error) {
		return h.usecase.ApplyCommand(ctx, id, payload.ToCommand())
	})
}

// Complete freezes the builder output and moves to review.
// @Summary Complete the builder
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.SessionResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 501 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/complete [post]
func (h *WizardHandler) Complete(c *gin.Context) {
	h.respond(c, h.usecase.Complete)
}

// Back returns to the previous step.
// @Summary Go back one step
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.SessionResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.respond(c, h.usecase.Back)
}

// Reset clears the session back to the customer step.
// @Summary Reset the session
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} response.SessionResponse
// @Router /wizard/sessions/{id}/reset [post]
func (h *WizardHandler) Reset(c *gin.Context) {
	h.respond(c, h.usecase.Reset)
}

// Save persists the reviewed quotation and closes the session.
// @Summary Save the quotation
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 201 {object} response.SaveResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /wizard/sessions/{id}/save [post]
func (h *WizardHandler) Save(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[wizard][handler] save start session_id=%s", id)

	res, err := h.usecase.Save(c.Request.Context(), id)
	if err != nil {
		log.Printf("[wizard][handler] save failed session_id=%s err=%v", id, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[wizard][handler] save success session_id=%s quotation_id=%s", id, res.Quotation.ID)

	c.JSON(http.StatusCreated, response.FromSaveResult(res))
}

// Discard drops a session without saving.
// @Summary Discard the session
// @Tags Wizard
// @Param id path string true "Session id"
// @Success 204
// @Router /wizard/sessions/{id} [delete]
func (h *WizardHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) respond(c *gin.Context, call func(ctx context.Context, id string) (usecase.SessionView, error)) {
	view, err := call(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}
