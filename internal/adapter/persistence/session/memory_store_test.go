package session

import (
	"context"
	"testing"
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/wizard"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("expected nil,nil for missing session, got %v %v", got, err)
	}

	w := wizard.New("s-1")
	if err := w.SubmitCustomer(entities.Customer{
		FullName:     "Nguyen Van A",
		Phone:        "0901234567",
		CarName:      "Toyota Vios",
		CarYear:      "2020",
		CarSegmentID: "sedan-c",
	}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Save(ctx, w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = s.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == w {
		t.Fatalf("expected a decoded copy, got the saved pointer")
	}
	if got.Step() != wizard.StepServiceSelection {
		t.Fatalf("expected service_selection, got %s", got.Step())
	}
	if c, ok := got.Customer(); !ok || c.FullName != "Nguyen Van A" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	// mutating the loaded copy does not touch the stored one
	got.Reset()
	again, _ := s.Get(ctx, "s-1")
	if again.Step() != wizard.StepServiceSelection {
		t.Fatalf("stored session changed: %s", again.Step())
	}

	if err := s.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := s.Get(ctx, "s-1"); got != nil {
		t.Fatalf("expected session to be deleted")
	}
	if err := s.Delete(ctx, "s-1"); err != nil {
		t.Fatalf("deleting twice should not fail: %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	if err := s.Save(ctx, wizard.New("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now = now.Add(30 * time.Second)
	if err := s.Save(ctx, wizard.New("b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 sessions, got %d", s.Len())
	}

	now = now.Add(45 * time.Second)
	if got, _ := s.Get(ctx, "a"); got != nil {
		t.Fatalf("expected session a to expire")
	}
	if got, _ := s.Get(ctx, "b"); got == nil {
		t.Fatalf("expected session b to be live")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", s.Len())
	}
}
