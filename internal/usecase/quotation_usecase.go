package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
	"autopaint_quotation/internal/domain/wizard"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPersistenceFailed  = errors.New("failed to persist quotation")
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrInvalidQuotationID = errors.New("invalid quotation id")
	ErrInvalidStatus      = errors.New("invalid quotation status")
)

// QuotationFilter narrows the quotation list. Zero values match everything.
type QuotationFilter struct {
	Search      string
	Status      entities.QuotationStatus
	ServiceType entities.ServiceType
}

// IQuotationUseCase persists reviewed drafts and serves the quotation list.
//
// Save writes the customer first and then the quotation. There is no
// transaction: if the second write fails the customer row is left behind.

type IQuotationUseCase interface {
	Save(ctx context.Context, draft wizard.Draft) (entities.Quotation, error)
	List(ctx context.Context, filter QuotationFilter) ([]entities.QuotationRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuotationRecord, error)
	Delete(ctx context.Context, id string) error
}

type QuotationUseCase struct {
	customers  interfaces.ICustomerRepository
	quotations interfaces.IQuotationRepository
	metrics    interfaces.IQuotationMetrics
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(customers interfaces.ICustomerRepository, quotations interfaces.IQuotationRepository, metrics interfaces.IQuotationMetrics) *QuotationUseCase {
	if metrics == nil {
		metrics = noopQuotationMetrics{}
	}
	return &QuotationUseCase{customers: customers, quotations: quotations, metrics: metrics}
}

func (u *QuotationUseCase) Save(ctx context.Context, draft wizard.Draft) (entities.Quotation, error) {
	if err := wizard.ValidateCustomer(draft.Customer); err != nil {
		return entities.Quotation{}, err
	}
	if !draft.ServiceType.Valid() {
		return entities.Quotation{}, wizard.ErrInvalidService
	}

	now := time.Now().UTC()
	c := draft.Customer
	c.ID = uuid.NewString()
	c.CreatedAt = now

	created, err := u.customers.Create(ctx, c)
	if err != nil {
		log.Printf("[quotation][usecase] insert customer failed phone=%s err=%v", c.Phone, err)
		u.metrics.QuotationSaveFailed("customer")
		return entities.Quotation{}, fmt.Errorf("%w: insert customer: %w", ErrPersistenceFailed, err)
	}

	items := append([]entities.QuotationItem(nil), draft.Items...)
	total := pricing.Total(items)
	q := entities.Quotation{
		ID:          uuid.NewString(),
		CustomerID:  created.ID,
		ServiceType: draft.ServiceType,
		TotalAmount: total,
		QuotationData: entities.QuotationData{
			Items:       items,
			Customer:    created,
			ServiceType: draft.ServiceType,
			CreatedAt:   now,
		},
		Status:    entities.QuotationStatusDraft,
		CreatedAt: now,
	}

	saved, err := u.quotations.Create(ctx, q)
	if err != nil {
		// The customer row stays; the operator retries from the review step.
		log.Printf("[quotation][usecase] insert quotation failed customer_id=%s err=%v", created.ID, err)
		u.metrics.QuotationSaveFailed("quotation")
		return entities.Quotation{}, fmt.Errorf("%w: insert quotation: %w", ErrPersistenceFailed, err)
	}

	log.Printf("[quotation][usecase] saved quotation_id=%s customer_id=%s service_type=%s total=%d",
		saved.ID, saved.CustomerID, saved.ServiceType, saved.TotalAmount)
	u.metrics.QuotationSaved(string(saved.ServiceType), saved.TotalAmount)
	return saved, nil
}

func (u *QuotationUseCase) List(ctx context.Context, filter QuotationFilter) ([]entities.QuotationRecord, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if filter.ServiceType != "" && !filter.ServiceType.Valid() {
		return nil, wizard.ErrInvalidService
	}

	all, err := u.quotations.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]entities.QuotationRecord, 0, len(all))
	for _, r := range all {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.ServiceType != "" && r.ServiceType != filter.ServiceType {
			continue
		}
		if search != "" && !matchesSearch(r.Customer, search) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func matchesSearch(c entities.CustomerSummary, search string) bool {
	for _, field := range []string{c.FullName, c.Phone, c.CarName, c.LicensePlate} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.QuotationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotationRecord{}, ErrInvalidQuotationID
	}

	r, err := u.quotations.GetByID(ctx, id)
	if err != nil {
		return entities.QuotationRecord{}, err
	}
	if r.ID == "" {
		return entities.QuotationRecord{}, ErrQuotationNotFound
	}
	return r, nil
}

// Delete removes a quotation. Deleting an unknown id succeeds.
func (u *QuotationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuotationID
	}
	if err := u.quotations.Delete(ctx, id); err != nil {
		log.Printf("[quotation][usecase] delete failed quotation_id=%s err=%v", id, err)
		return fmt.Errorf("%w: delete quotation: %w", ErrPersistenceFailed, err)
	}
	return nil
}

type noopQuotationMetrics struct{}

func (noopQuotationMetrics) QuotationSaved(string, int64) {}

func (noopQuotationMetrics) QuotationSaveFailed(string) {}
