package interfaces

import (
	"context"

	"autopaint_quotation/internal/domain/entities"
)

// IReferenceDataRepository abstracts the read-only reference tables.
//
// Lists are ordered by display name, except pricing which is unordered.

type IReferenceDataRepository interface {
	ListCarSegments(ctx context.Context) ([]entities.CarSegment, error)
	ListCarParts(ctx context.Context) ([]entities.CarPart, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListRemovableParts(ctx context.Context) ([]entities.RemovablePart, error)
	ListPricing(ctx context.Context) ([]entities.PriceEntry, error)
}
