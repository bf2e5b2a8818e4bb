package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const quotationRowSelect = "q.*, c.full_name AS customer_full_name, c.phone AS customer_phone, " +
	"c.car_name AS customer_car_name, c.car_year AS customer_car_year, c.license_plate AS customer_license_plate"

// QuotationPostgresRepository persists quotations with quotation_data as jsonb.
type QuotationPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotationRepository = (*QuotationPostgresRepository)(nil)

func NewQuotationPostgresRepository(db *gorm.DB) *QuotationPostgresRepository {
	return &QuotationPostgresRepository{db: db}
}

func (r *QuotationPostgresRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	data, err := json.Marshal(q.QuotationData)
	if err != nil {
		return entities.Quotation{}, err
	}
	m := quotationModel{
		ID:            q.ID,
		CustomerID:    q.CustomerID,
		ServiceType:   string(q.ServiceType),
		TotalAmount:   q.TotalAmount,
		QuotationData: datatypes.JSON(data),
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Quotation{}, fmt.Errorf("failed to insert quotation: %w", err)
	}
	q.ID = m.ID
	q.CreatedAt = m.CreatedAt
	return q, nil
}

func (r *QuotationPostgresRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("quotations AS q").
		Select(quotationRowSelect).
		Joins("LEFT JOIN customers AS c ON c.id = q.customer_id")
}

func (r *QuotationPostgresRepository) GetByID(ctx context.Context, id string) (entities.QuotationRecord, error) {
	var row quotationRow
	err := r.joined(ctx).Where("q.id = ?", id).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.QuotationRecord{}, nil
		}
		return entities.QuotationRecord{}, fmt.Errorf("failed to find quotation %s: %w", id, err)
	}
	return fromQuotationRow(row)
}

func (r *QuotationPostgresRepository) List(ctx context.Context) ([]entities.QuotationRecord, error) {
	var rows []quotationRow
	if err := r.joined(ctx).Order("q.created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}
	out := make([]entities.QuotationRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := fromQuotationRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *QuotationPostgresRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&quotationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete quotation %s: %w", id, err)
	}
	return nil
}

func fromQuotationRow(row quotationRow) (entities.QuotationRecord, error) {
	var data entities.QuotationData
	if len(row.QuotationData) > 0 {
		if err := json.Unmarshal(row.QuotationData, &data); err != nil {
			return entities.QuotationRecord{}, fmt.Errorf("invalid quotation_data for %s: %w", row.ID, err)
		}
	}
	rec := entities.QuotationRecord{
		Quotation: entities.Quotation{
			ID:            row.ID,
			CustomerID:    row.CustomerID,
			ServiceType:   entities.ServiceType(row.ServiceType),
			TotalAmount:   row.TotalAmount,
			QuotationData: data,
			Status:        entities.QuotationStatus(row.Status),
			CreatedAt:     row.CreatedAt,
		},
		Customer: entities.CustomerSummary{
			FullName:     deref(row.CustomerFullName),
			Phone:        deref(row.CustomerPhone),
			CarName:      deref(row.CustomerCarName),
			CarYear:      deref(row.CustomerCarYear),
			LicensePlate: deref(row.CustomerLicensePlate),
		},
	}
	if row.CustomerFullName == nil {
		rec.Customer = data.Customer.Summary()
	}
	return rec, nil
}
