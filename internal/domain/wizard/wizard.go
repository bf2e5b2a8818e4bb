package wizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
	"autopaint_quotation/internal/domain/quote"

	"github.com/go-playground/validator/v10"
)

// Step is a wizard state.
type Step string

const (
	StepCustomer         Step = "customer"
	StepServiceSelection Step = "service_selection"
	StepModeDetail       Step = "mode_detail"
	StepQuotationReview  Step = "quotation_review"
)

var (
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrUnknownSegment  = errors.New("unknown car segment")
	ErrInvalidStep     = errors.New("operation not allowed in current step")
	ErrNoPreviousStep  = errors.New("no previous step")
	ErrInvalidService  = errors.New("invalid service type")
	ErrNothingToQuote  = errors.New("no quotation items selected")
)

var validate = validator.New()

// Draft is what the review step hands to persistence.
type Draft struct {
	Customer    entities.Customer        `json:"customer"`
	ServiceType entities.ServiceType     `json:"service_type"`
	Items       []entities.QuotationItem `json:"items"`
	Total       int64                    `json:"total"`
}

// Wizard is one quotation session. It is driven by a single operator; callers
// serialise access.
type Wizard struct {
	ID          string
	step        Step
	customer    *entities.Customer
	serviceType entities.ServiceType
	mode        quote.Mode
	items       []entities.QuotationItem
	total       int64
	UpdatedAt   time.Time
}

func New(id string) *Wizard {
	return &Wizard{ID: id, step: StepCustomer, UpdatedAt: time.Now().UTC()}
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) ServiceType() entities.ServiceType { return w.serviceType }

func (w *Wizard) Mode() quote.Mode { return w.mode }

func (w *Wizard) Total() int64 { return w.total }

func (w *Wizard) Customer() (entities.Customer, bool) {
	if w.customer == nil {
		return entities.Customer{}, false
	}
	return *w.customer, true
}

func (w *Wizard) Items() []entities.QuotationItem {
	return append([]entities.QuotationItem(nil), w.items...)
}

// ValidateCustomer checks the required intake fields.
func ValidateCustomer(c entities.Customer) error {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.CarName = strings.TrimSpace(c.CarName)
	c.CarYear = strings.TrimSpace(c.CarYear)
	c.CarSegmentID = strings.TrimSpace(c.CarSegmentID)
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return fmt.Errorf("%w: missing %s", ErrInvalidCustomer, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidCustomer, err)
	}
	return nil
}

// SubmitCustomer moves customer -> service_selection. A nil catalog skips the
// segment existence check.
func (w *Wizard) SubmitCustomer(c entities.Customer, catalog *quote.Catalog) error {
	if w.step != StepCustomer {
		return fmt.Errorf("%w: submit customer in %s", ErrInvalidStep, w.step)
	}
	if err := ValidateCustomer(c); err != nil {
		return err
	}
	c.FullName = strings.TrimSpace(c.FullName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.CarName = strings.TrimSpace(c.CarName)
	c.CarYear = strings.TrimSpace(c.CarYear)
	c.CarSegmentID = strings.TrimSpace(c.CarSegmentID)
	c.LicensePlate = strings.TrimSpace(c.LicensePlate)
	c.CustomerSource = strings.TrimSpace(c.CustomerSource)
	if catalog != nil && !catalog.HasSegment(c.CarSegmentID) {
		return fmt.Errorf("%w: %q", ErrUnknownSegment, c.CarSegmentID)
	}
	w.customer = &c
	w.step = StepServiceSelection
	w.touch()
	return nil
}

// SelectService moves service_selection -> mode_detail with a fresh builder.
func (w *Wizard) SelectService(t entities.ServiceType) error {
	if w.step != StepServiceSelection {
		return fmt.Errorf("%w: select service in %s", ErrInvalidStep, w.step)
	}
	m, err := quote.NewMode(t)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidService, err)
	}
	w.serviceType = t
	w.mode = m
	w.step = StepModeDetail
	w.touch()
	return nil
}

// Apply runs a builder command in mode_detail. On error the state is unchanged.
func (w *Wizard) Apply(catalog *quote.Catalog, cmd quote.Command) error {
	if w.step != StepModeDetail {
		return fmt.Errorf("%w: apply command in %s", ErrInvalidStep, w.step)
	}
	next, err := w.mode.Apply(catalog, cmd)
	if err != nil {
		return err
	}
	w.mode = next
	w.touch()
	return nil
}

// Preview computes the current items and total without leaving mode_detail.
func (w *Wizard) Preview(catalog *quote.Catalog) ([]entities.QuotationItem, int64, error) {
	if w.step != StepModeDetail {
		return nil, 0, fmt.Errorf("%w: preview in %s", ErrInvalidStep, w.step)
	}
	items, err := quote.Bind(w.mode, catalog, w.customer.CarSegmentID).ComputeItems()
	if err != nil {
		return nil, 0, err
	}
	return items, pricing.Total(items), nil
}

// Complete moves mode_detail -> quotation_review carrying the builder output.
// The builder state does not survive leaving mode_detail.
func (w *Wizard) Complete(catalog *quote.Catalog) error {
	items, total, err := w.Preview(catalog)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrNothingToQuote
	}
	w.items = items
	w.total = total
	w.mode = nil
	w.step = StepQuotationReview
	w.touch()
	return nil
}

// Back returns to the preceding step. Customer and service type are kept;
// builder state is dropped.
func (w *Wizard) Back() error {
	switch w.step {
	case StepServiceSelection:
		w.mode = nil
		w.step = StepCustomer
	case StepModeDetail:
		w.mode = nil
		w.step = StepServiceSelection
	case StepQuotationReview:
		m, err := quote.NewMode(w.serviceType)
		if err != nil {
			return err
		}
		w.mode = m
		w.items = nil
		w.total = 0
		w.step = StepModeDetail
	default:
		return ErrNoPreviousStep
	}
	w.touch()
	return nil
}

// Reset clears everything and returns to the customer step.
func (w *Wizard) Reset() {
	w.step = StepCustomer
	w.customer = nil
	w.serviceType = ""
	w.mode = nil
	w.items = nil
	w.total = 0
	w.touch()
}

// Draft returns the reviewed quotation. Only valid in quotation_review.
func (w *Wizard) Draft() (Draft, error) {
	if w.step != StepQuotationReview || w.customer == nil {
		return Draft{}, fmt.Errorf("%w: draft in %s", ErrInvalidStep, w.step)
	}
	return Draft{
		Customer:    *w.customer,
		ServiceType: w.serviceType,
		Items:       w.Items(),
		Total:       w.total,
	}, nil
}

func (w *Wizard) touch() {
	w.UpdatedAt = time.Now().UTC()
}

type snapshot struct {
	ID          string                   `json:"id"`
	Step        Step                     `json:"step"`
	Customer    *entities.Customer       `json:"customer,omitempty"`
	ServiceType entities.ServiceType     `json:"service_type,omitempty"`
	Mode        json.RawMessage          `json:"mode,omitempty"`
	Items       []entities.QuotationItem `json:"items,omitempty"`
	Total       int64                    `json:"total"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func (w *Wizard) MarshalJSON() ([]byte, error) {
	s := snapshot{
		ID:          w.ID,
		Step:        w.step,
		Customer:    w.customer,
		ServiceType: w.serviceType,
		Items:       w.items,
		Total:       w.total,
		UpdatedAt:   w.UpdatedAt,
	}
	if w.mode != nil {
		raw, err := quote.MarshalMode(w.mode)
		if err != nil {
			return nil, err
		}
		s.Mode = raw
	}
	return json.Marshal(s)
}

func (w *Wizard) UnmarshalJSON(b []byte) error {
	var s snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*w = Wizard{
		ID:          s.ID,
		step:        s.Step,
		customer:    s.Customer,
		serviceType: s.ServiceType,
		items:       s.Items,
		total:       s.Total,
		UpdatedAt:   s.UpdatedAt,
	}
	if w.step == "" {
		w.step = StepCustomer
	}
	if len(s.Mode) > 0 && string(s.Mode) != "null" {
		m, err := quote.UnmarshalMode(s.Mode)
		if err != nil {
			return err
		}
		w.mode = m
	}
	if w.step == StepModeDetail && w.mode == nil {
		return fmt.Errorf("%w: mode_detail without builder state", ErrInvalidStep)
	}
	return nil
}
