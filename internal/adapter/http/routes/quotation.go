package routes

import (
	"autopaint_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceTypes   = "/service-types"
	PathReferenceData  = "/reference-data"
	PathPricing        = "/pricing"
	PathWizardSessions = "/wizard/sessions"
	PathQuotations     = "/quotations"
)

func addReferenceDataRoutes(rg *gin.RouterGroup, h *handlers.ReferenceDataHandler) {
	rg.GET(PathServiceTypes, h.ListServiceTypes)

	ref := rg.Group(PathReferenceData)
	{
		ref.GET("", h.GetReferenceData)
		ref.POST("/refresh", h.RefreshReferenceData)
	}

	prices := rg.Group(PathPricing)
	{
		prices.GET("/resolve", h.ResolvePrice)
		prices.GET("/overview", h.PricingOverview)
	}
}

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	sessions := rg.Group(PathWizardSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.Discard)
		sessions.POST("/:id/customer", h.SubmitCustomer)
		sessions.POST("/:id/service", h.SelectService)
		sessions.POST("/:id/commands", h.ApplyCommand)
		sessions.POST("/:id/complete", h.Complete)
		sessions.POST("/:id/back", h.Back)
		sessions.POST("/:id/reset", h.Reset)
		sessions.POST("/:id/save", h.Save)
	}
}

func addQuotationRoutes(rg *gin.RouterGroup, h *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("", h.ListQuotations)
		quotations.GET("/:id", h.GetQuotation)
		quotations.GET("/:id/document", h.DownloadDocument)
		quotations.DELETE("/:id", h.DeleteQuotation)
	}
}
