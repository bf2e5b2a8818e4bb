package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/quote"
	"autopaint_quotation/internal/domain/wizard"
	"autopaint_quotation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionStore     = errors.New("wizard session store failure")
)

// NextViewQuotationList is where the operator lands after a successful save.
const NextViewQuotationList = "quotation_list"

// SessionView is the externally visible state of a wizard session. In
// mode_detail Items and Total hold the live preview of the builder.
type SessionView struct {
	ID               string
	Step             wizard.Step
	Customer         *entities.Customer
	ServiceType      entities.ServiceType
	ServiceAvailable bool
	Mode             quote.Mode
	Items            []entities.QuotationItem
	Total            int64
	UpdatedAt        time.Time
}

type SaveResult struct {
	Quotation entities.Quotation
	NextView  string
}

// IWizardUseCase drives quotation wizard sessions.
//
// Each call loads the session, applies one transition and stores it back.
// A failed transition leaves the stored session untouched.

type IWizardUseCase interface {
	Start(ctx context.Context) (SessionView, error)
	Get(ctx context.Context, id string) (SessionView, error)
	SubmitCustomer(ctx context.Context, id string, c entities.Customer) (SessionView, error)
	SelectService(ctx context.Context, id string, t entities.ServiceType) (SessionView, error)
	ApplyCommand(ctx context.Context, id string, cmd quote.Command) (SessionView, error)
	Complete(ctx context.Context, id string) (SessionView, error)
	Back(ctx context.Context, id string) (SessionView, error)
	Reset(ctx context.Context, id string) (SessionView, error)
	Save(ctx context.Context, id string) (SaveResult, error)
	Discard(ctx context.Context, id string) error
}

type WizardUseCase struct {
	store      interfaces.IWizardSessionStore
	refData    IReferenceDataUseCase
	quotations IQuotationUseCase
	locks      *sessionLocks
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store interfaces.IWizardSessionStore, refData IReferenceDataUseCase, quotations IQuotationUseCase) *WizardUseCase {
	return &WizardUseCase{
		store:      store,
		refData:    refData,
		quotations: quotations,
		locks:      newSessionLocks(),
	}
}

func (u *WizardUseCase) Start(ctx context.Context) (SessionView, error) {
	w := wizard.New(uuid.NewString())
	if err := u.store.Save(ctx, w); err != nil {
		log.Printf("[wizard][usecase] save session failed session_id=%s err=%v", w.ID, err)
		return SessionView{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	log.Printf("[wizard][usecase] session started session_id=%s", w.ID)
	return u.view(ctx, w, nil)
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (SessionView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SessionView{}, ErrInvalidSessionID
	}
	unlock := u.locks.lock(id)
	defer unlock()

	w, err := u.load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}
	return u.view(ctx, w, nil)
}

func (u *WizardUseCase) SubmitCustomer(ctx context.Context, id string, c entities.Customer) (SessionView, error) {
	return u.mutate(ctx, id, true, func(w *wizard.Wizard, catalog *quote.Catalog) error {
		return w.SubmitCustomer(c, catalog)
	})
}

func (u *WizardUseCase) SelectService(ctx context.Context, id string, t entities.ServiceType) (SessionView, error) {
	return u.mutate(ctx, id, false, func(w *wizard.Wizard, _ *quote.Catalog) error {
		return w.SelectService(t)
	})
}

func (u *WizardUseCase) ApplyCommand(ctx context.Context, id string, cmd quote.Command) (SessionView, error) {
	return u.mutate(ctx, id, true, func(w *wizard.Wizard, catalog *quote.Catalog) error {
		return w.Apply(catalog, cmd)
	})
}

func (u *WizardUseCase) Complete(ctx context.Context, id string) (SessionView, error) {
	return u.mutate(ctx, id, true, func(w *wizard.Wizard, catalog *quote.Catalog) error {
		return w.Complete(catalog)
	})
}

func (u *WizardUseCase) Back(ctx context.Context, id string) (SessionView, error) {
	return u.mutate(ctx, id, false, func(w *wizard.Wizard, _ *quote.Catalog) error {
		return w.Back()
	})
}

func (u *WizardUseCase) Reset(ctx context.Context, id string) (SessionView, error) {
	return u.mutate(ctx, id, false, func(w *wizard.Wizard, _ *quote.Catalog) error {
		w.Reset()
		return nil
	})
}

// Save persists the reviewed draft and closes the session. On failure the
// session stays in quotation_review with its items so the operator can retry.
func (u *WizardUseCase) Save(ctx context.Context, id string) (SaveResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SaveResult{}, ErrInvalidSessionID
	}
	unlock := u.locks.lock(id)
	defer unlock()

	w, err := u.load(ctx, id)
	if err != nil {
		return SaveResult{}, err
	}
	draft, err := w.Draft()
	if err != nil {
		return SaveResult{}, err
	}

	q, err := u.quotations.Save(ctx, draft)
	if err != nil {
		return SaveResult{}, err
	}

	if err := u.store.Delete(ctx, id); err != nil {
		log.Printf("[wizard][usecase] close session failed session_id=%s err=%v", id, err)
	}
	log.Printf("[wizard][usecase] session saved session_id=%s quotation_id=%s", id, q.ID)
	return SaveResult{Quotation: q, NextView: NextViewQuotationList}, nil
}

func (u *WizardUseCase) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	unlock := u.locks.lock(id)
	defer unlock()

	if err := u.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return nil
}

func (u *WizardUseCase) mutate(ctx context.Context, id string, needsCatalog bool, fn func(*wizard.Wizard, *quote.Catalog) error) (SessionView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return SessionView{}, ErrInvalidSessionID
	}
	unlock := u.locks.lock(id)
	defer unlock()

	w, err := u.load(ctx, id)
	if err != nil {
		return SessionView{}, err
	}

	var catalog *quote.Catalog
	if needsCatalog {
		if catalog, err = u.refData.Catalog(ctx); err != nil {
			return SessionView{}, err
		}
	}

	if err := fn(w, catalog); err != nil {
		return SessionView{}, err
	}

	if err := u.store.Save(ctx, w); err != nil {
		log.Printf("[wizard][usecase] save session failed session_id=%s err=%v", id, err)
		return SessionView{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return u.view(ctx, w, catalog)
}

func (u *WizardUseCase) load(ctx context.Context, id string) (*wizard.Wizard, error) {
	w, err := u.store.Get(ctx, id)
	if err != nil {
		log.Printf("[wizard][usecase] load session failed session_id=%s err=%v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	if w == nil {
		return nil, ErrSessionNotFound
	}
	return w, nil
}

func (u *WizardUseCase) view(ctx context.Context, w *wizard.Wizard, catalog *quote.Catalog) (SessionView, error) {
	v := SessionView{
		ID:               w.ID,
		Step:             w.Step(),
		ServiceType:      w.ServiceType(),
		ServiceAvailable: w.ServiceType() != entities.ServiceTypeTouchUp,
		Mode:             w.Mode(),
		Items:            w.Items(),
		Total:            w.Total(),
		UpdatedAt:        w.UpdatedAt,
	}
	if c, ok := w.Customer(); ok {
		v.Customer = &c
	}

	if w.Step() != wizard.StepModeDetail {
		return v, nil
	}

	if catalog == nil {
		var err error
		if catalog, err = u.refData.Catalog(ctx); err != nil {
			return SessionView{}, err
		}
	}
	items, total, err := w.Preview(catalog)
	switch {
	case errors.Is(err, quote.ErrServiceUnavailable):
		v.ServiceAvailable = false
	case err != nil:
		return SessionView{}, err
	default:
		v.Items = items
		v.Total = total
	}
	return v, nil
}
