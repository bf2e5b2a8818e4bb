package interfaces

import (
	"context"

	"autopaint_quotation/internal/domain/entities"
)

// ICustomerRepository persists customers captured by the wizard.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
