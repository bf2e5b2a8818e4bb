package repository

import (
	"context"
	"fmt"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ReferenceDataPostgresRepository reads the reference tables through gorm.
type ReferenceDataPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IReferenceDataRepository = (*ReferenceDataPostgresRepository)(nil)

func NewReferenceDataPostgresRepository(db *gorm.DB) *ReferenceDataPostgresRepository {
	return &ReferenceDataPostgresRepository{db: db}
}

func (r *ReferenceDataPostgresRepository) ListCarSegments(ctx context.Context) ([]entities.CarSegment, error) {
	var rows []carSegmentModel
	if err := r.db.WithContext(ctx).Order("display_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list car segments: %w", err)
	}
	out := make([]entities.CarSegment, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.CarSegment{ID: m.ID, Name: m.Name, DisplayName: m.DisplayName, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *ReferenceDataPostgresRepository) ListCarParts(ctx context.Context) ([]entities.CarPart, error) {
	var rows []carPartModel
	if err := r.db.WithContext(ctx).Order("display_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list car parts: %w", err)
	}
	out := make([]entities.CarPart, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.CarPart{ID: m.ID, Name: m.Name, DisplayName: m.DisplayName, Category: m.Category, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

func (r *ReferenceDataPostgresRepository) ListServices(ctx context.Context) ([]entities.Service, error) {
	var rows []serviceModel
	if err := r.db.WithContext(ctx).Order("display_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	out := make([]entities.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.Service{
			ID:          m.ID,
			Name:        m.Name,
			DisplayName: m.DisplayName,
			Type:        entities.ServiceKind(m.Type),
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

func (r *ReferenceDataPostgresRepository) ListRemovableParts(ctx context.Context) ([]entities.RemovablePart, error) {
	var rows []removablePartModel
	if err := r.db.WithContext(ctx).Order("display_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list removable parts: %w", err)
	}
	out := make([]entities.RemovablePart, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.RemovablePart{
			ID:          m.ID,
			CarPartID:   m.CarPartID,
			Name:        m.Name,
			DisplayName: m.DisplayName,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

func (r *ReferenceDataPostgresRepository) ListPricing(ctx context.Context) ([]entities.PriceEntry, error) {
	var rows []pricingModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pricing: %w", err)
	}
	out := make([]entities.PriceEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, entities.PriceEntry{
			ID:           m.ID,
			CarSegmentID: m.CarSegmentID,
			ItemType:     entities.ItemType(m.ItemType),
			ItemID:       deref(m.ItemID),
			Price:        m.Price,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}
