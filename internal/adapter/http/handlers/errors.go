package handlers

import (
	"errors"
	"net/http"

	"autopaint_quotation/internal/domain/quote"
	"autopaint_quotation/internal/domain/wizard"
	"autopaint_quotation/internal/usecase"
	"autopaint_quotation/pkg"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapQuotationError translates use-case and domain errors into the HTTP
// error envelope. Every handler in this package goes through it.
func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidSegmentID),
		errors.Is(err, usecase.ErrInvalidItemType),
		errors.Is(err, usecase.ErrInvalidStatus):
		return errInvalidRequest
	case errors.Is(err, wizard.ErrInvalidCustomer):
		return pkg.NewDomainError("INVALID_CUSTOMER", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, wizard.ErrUnknownSegment):
		return pkg.NewDomainErrorSimple("UNKNOWN_CAR_SEGMENT", "Unknown car segment", http.StatusBadRequest)
	case errors.Is(err, wizard.ErrInvalidService), errors.Is(err, quote.ErrUnknownServiceType):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_TYPE", "Invalid service type", http.StatusBadRequest)
	case errors.Is(err, quote.ErrServiceUnavailable):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service type not available yet", http.StatusNotImplemented)
	case isCommandError(err):
		return pkg.NewDomainError("INVALID_COMMAND", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrInvalidStep), errors.Is(err, wizard.ErrNoPreviousStep):
		return pkg.NewDomainError("INVALID_STEP", err.Error(), err, http.StatusConflict)
	case errors.Is(err, wizard.ErrNothingToQuote):
		return pkg.NewDomainErrorSimple("NOTHING_TO_QUOTE", "Select at least one item before completing", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSegmentNotFound):
		return pkg.NewDomainErrorSimple("CAR_SEGMENT_NOT_FOUND", "Car segment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPersistenceFailed):
		return pkg.NewDomainError("PERSISTENCE_FAILED", "Could not save, please retry", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrReferenceDataUnavailable):
		return pkg.NewDomainError("REFERENCE_DATA_UNAVAILABLE", "Reference data unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSessionStore):
		return pkg.NewDomainError("SESSION_STORE_UNAVAILABLE", "Wizard session store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isCommandError(err error) bool {
	for _, target := range []error{
		quote.ErrUnsupportedCommand,
		quote.ErrUnknownCarPart,
		quote.ErrCarPartNotOffered,
		quote.ErrCarPartNotSelected,
		quote.ErrUnknownService,
		quote.ErrUnknownRemovablePart,
		quote.ErrUnknownExtraService,
		quote.ErrInvalidPrice,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
