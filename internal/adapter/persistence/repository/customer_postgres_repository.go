package repository

import (
	"context"
	"fmt"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CustomerPostgresRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerPostgresRepository)(nil)

func NewCustomerPostgresRepository(db *gorm.DB) *CustomerPostgresRepository {
	return &CustomerPostgresRepository{db: db}
}

func (r *CustomerPostgresRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	m := customerModel{
		ID:             c.ID,
		FullName:       c.FullName,
		Phone:          c.Phone,
		CarName:        c.CarName,
		CarYear:        c.CarYear,
		CarSegmentID:   c.CarSegmentID,
		LicensePlate:   optional(c.LicensePlate),
		CustomerSource: optional(c.CustomerSource),
		CreatedAt:      c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return c, nil
}
