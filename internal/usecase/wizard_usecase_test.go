package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/quote"
	"autopaint_quotation/internal/domain/wizard"
	mock_interfaces "autopaint_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// sessionMap backs a mock session store with JSON snapshots.
type sessionMap struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newSessionStore(ctrl *gomock.Controller) (*mock_interfaces.MockIWizardSessionStore, *sessionMap) {
	m := &sessionMap{data: map[string][]byte{}}
	store := mock_interfaces.NewMockIWizardSessionStore(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*wizard.Wizard, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		b, ok := m.data[id]
		if !ok {
			return nil, nil
		}
		var w wizard.Wizard
		if err := json.Unmarshal(b, &w); err != nil {
			return nil, err
		}
		return &w, nil
	}).AnyTimes()
	store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *wizard.Wizard) error {
		b, err := json.Marshal(w)
		if err != nil {
			return err
		}
		m.mu.Lock()
		m.data[w.ID] = b
		m.mu.Unlock()
		return nil
	}).AnyTimes()
	store.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		m.mu.Lock()
		delete(m.data, id)
		m.mu.Unlock()
		return nil
	}).AnyTimes()
	return store, m
}

func (m *sessionMap) has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[id]
	return ok
}

type wizardDeps struct {
	uc         *WizardUseCase
	sessions   *sessionMap
	customers  *mock_interfaces.MockICustomerRepository
	quotations *mock_interfaces.MockIQuotationRepository
}

func newWizardDeps(t *testing.T) wizardDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIReferenceDataRepository(ctrl)
	data := referenceFixture()
	repo.EXPECT().ListCarSegments(gomock.Any()).Return(data.CarSegments, nil).AnyTimes()
	repo.EXPECT().ListCarParts(gomock.Any()).Return(data.CarParts, nil).AnyTimes()
	repo.EXPECT().ListServices(gomock.Any()).Return(data.Services, nil).AnyTimes()
	repo.EXPECT().ListRemovableParts(gomock.Any()).Return(data.RemovableParts, nil).AnyTimes()
	repo.EXPECT().ListPricing(gomock.Any()).Return(data.Pricing, nil).AnyTimes()

	store, sessions := newSessionStore(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)

	refData := NewReferenceDataUseCase(repo, nil, time.Minute)
	quoteUC := NewQuotationUseCase(customers, quotations, nil)
	return wizardDeps{
		uc:         NewWizardUseCase(store, refData, quoteUC),
		sessions:   sessions,
		customers:  customers,
		quotations: quotations,
	}
}

func driveToReview(t *testing.T, uc *WizardUseCase) string {
	t.Helper()
	ctx := context.Background()
	v, err := uc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.SubmitCustomer(ctx, v.ID, testDraft().Customer); err != nil {
		t.Fatalf("submit customer: %v", err)
	}
	if _, err := uc.SelectService(ctx, v.ID, entities.ServiceTypeSpotPainting); err != nil {
		t.Fatalf("select service: %v", err)
	}
	for _, cmd := range []quote.Command{
		{Type: quote.CommandTogglePart, PartID: "hood"},
		{Type: quote.CommandToggleService, PartID: "hood", ServiceID: "extra-polish"},
	} {
		if _, err := uc.ApplyCommand(ctx, v.ID, cmd); err != nil {
			t.Fatalf("apply %s: %v", cmd.Type, err)
		}
	}
	if _, err := uc.Complete(ctx, v.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return v.ID
}

func TestWizardUseCase_FullFlow(t *testing.T) {
	deps := newWizardDeps(t)
	ctx := context.Background()

	v, err := deps.uc.Start(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID == "" || v.Step != wizard.StepCustomer {
		t.Fatalf("unexpected view: %+v", v)
	}

	v, err = deps.uc.SubmitCustomer(ctx, v.ID, testDraft().Customer)
	if err != nil || v.Step != wizard.StepServiceSelection || v.Customer == nil {
		t.Fatalf("unexpected submit result: %+v %v", v, err)
	}

	v, err = deps.uc.SelectService(ctx, v.ID, entities.ServiceTypeSpotPainting)
	if err != nil || v.Step != wizard.StepModeDetail {
		t.Fatalf("unexpected select result: %+v %v", v, err)
	}

	v, err = deps.uc.ApplyCommand(ctx, v.ID, quote.Command{Type: quote.CommandTogglePart, PartID: "hood"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Total != 500000 || len(v.Items) != 1 {
		t.Fatalf("expected live preview of 500000, got %+v", v)
	}

	v, err = deps.uc.ApplyCommand(ctx, v.ID, quote.Command{Type: quote.CommandToggleService, PartID: "hood", ServiceID: "extra-polish"})
	if err != nil || v.Total != 600000 {
		t.Fatalf("expected 600000 preview, got %+v %v", v, err)
	}

	v, err = deps.uc.Complete(ctx, v.ID)
	if err != nil || v.Step != wizard.StepQuotationReview || v.Total != 600000 {
		t.Fatalf("unexpected complete result: %+v %v", v, err)
	}

	deps.customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
	)
	deps.quotations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil },
	)

	res, err := deps.uc.Save(ctx, v.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextView != NextViewQuotationList || res.Quotation.TotalAmount != 600000 {
		t.Fatalf("unexpected save result: %+v", res)
	}
	if deps.sessions.has(v.ID) {
		t.Fatalf("expected session to be closed")
	}
	if _, err := deps.uc.Get(ctx, v.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestWizardUseCase_SaveFailureKeepsReview(t *testing.T) {
	deps := newWizardDeps(t)
	ctx := context.Background()
	id := driveToReview(t, deps.uc)

	deps.customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
	)
	deps.quotations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("db"))

	if _, err := deps.uc.Save(ctx, id); !errors.Is(err, ErrPersistenceFailed) {
		t.Fatalf("expected ErrPersistenceFailed, got %v", err)
	}

	v, err := deps.uc.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Step != wizard.StepQuotationReview || len(v.Items) != 1 || v.Total != 600000 {
		t.Fatalf("expected review with items intact, got %+v", v)
	}
}

func TestWizardUseCase_FailedTransitionIsNotStored(t *testing.T) {
	deps := newWizardDeps(t)
	ctx := context.Background()

	v, err := deps.uc.Start(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := testDraft().Customer
	bad.CarSegmentID = "truck"
	if _, err := deps.uc.SubmitCustomer(ctx, v.ID, bad); !errors.Is(err, wizard.ErrUnknownSegment) {
		t.Fatalf("expected ErrUnknownSegment, got %v", err)
	}
	if _, err := deps.uc.Complete(ctx, v.ID); !errors.Is(err, wizard.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}

	got, err := deps.uc.Get(ctx, v.ID)
	if err != nil || got.Step != wizard.StepCustomer || got.Customer != nil {
		t.Fatalf("expected untouched session, got %+v %v", got, err)
	}
}

func TestWizardUseCase_TouchUp(t *testing.T) {
	deps := newWizardDeps(t)
	ctx := context.Background()

	v, _ := deps.uc.Start(ctx)
	if _, err := deps.uc.SubmitCustomer(ctx, v.ID, testDraft().Customer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := deps.uc.SelectService(ctx, v.ID, entities.ServiceTypeTouchUp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ServiceAvailable {
		t.Fatalf("expected touch-up to be unavailable")
	}
	if _, err := deps.uc.Complete(ctx, v.ID); !errors.Is(err, quote.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

func TestWizardUseCase_BackResetDiscard(t *testing.T) {
	deps := newWizardDeps(t)
	ctx := context.Background()
	id := driveToReview(t, deps.uc)

	v, err := deps.uc.Back(ctx, id)
	if err != nil || v.Step != wizard.StepModeDetail || v.Total != 0 {
		t.Fatalf("expected fresh mode_detail, got %+v %v", v, err)
	}

	v, err = deps.uc.Reset(ctx, id)
	if err != nil || v.Step != wizard.StepCustomer || v.Customer != nil || v.ServiceType != "" {
		t.Fatalf("expected cleared session, got %+v %v", v, err)
	}

	if _, err := deps.uc.Back(ctx, id); !errors.Is(err, wizard.ErrNoPreviousStep) {
		t.Fatalf("expected ErrNoPreviousStep, got %v", err)
	}

	if err := deps.uc.Discard(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps.sessions.has(id) {
		t.Fatalf("expected session to be removed")
	}
}

func TestWizardUseCase_SessionErrors(t *testing.T) {
	deps := newWizardDeps(t)
	ctx := context.Background()

	if _, err := deps.uc.Get(ctx, " "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if _, err := deps.uc.Back(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := deps.uc.Save(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	v, _ := deps.uc.Start(ctx)
	if _, err := deps.uc.Save(ctx, v.ID); !errors.Is(err, wizard.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
}

func TestWizardUseCase_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIWizardSessionStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	store.EXPECT().Get(gomock.Any(), "s-1").Return(nil, errors.New("redis down"))

	uc := NewWizardUseCase(store, nil, nil)
	if _, err := uc.Start(context.Background()); !errors.Is(err, ErrSessionStore) {
		t.Fatalf("expected ErrSessionStore, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "s-1"); !errors.Is(err, ErrSessionStore) {
		t.Fatalf("expected ErrSessionStore, got %v", err)
	}
}

func TestSessionLocks_ReleasesEntries(t *testing.T) {
	l := newSessionLocks()
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock("s")
			counter++
			unlock()
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("expected 50, got %d", counter)
	}
	if len(l.locks) != 0 {
		t.Fatalf("expected lock entries to be released, got %d", len(l.locks))
	}
}
