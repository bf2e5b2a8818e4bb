package interfaces

import (
	"context"

	"autopaint_quotation/internal/domain/entities"
)

// IQuotationRepository abstracts persistence for quotations.
//
// The quotation service must be able to:
//   - insert a draft quotation after its customer was inserted
//   - list quotations joined with customer fields, newest first
//   - load one quotation for display/printing
//   - delete a quotation (deleting a missing id is not an error)
//
// GetByID returns a zero record (empty ID) when nothing matches.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.QuotationRecord, error)
	List(ctx context.Context) ([]entities.QuotationRecord, error)
	Delete(ctx context.Context, id string) error
}
