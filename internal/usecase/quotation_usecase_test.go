package usecase

import (
	"context"
	"errors"
	"testing"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/wizard"
	mock_interfaces "autopaint_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testDraft() wizard.Draft {
	return wizard.Draft{
		Customer: entities.Customer{
			FullName:     "Nguyen Van A",
			Phone:        "0901234567",
			CarName:      "Toyota Vios",
			CarYear:      "2020",
			CarSegmentID: "sedan-c",
		},
		ServiceType: entities.ServiceTypeSpotPainting,
		Items: []entities.QuotationItem{
			{CarPartID: "hood", CarPartName: "Nắp capo", SelectedServices: []string{"extra-polish"}, SelectedRemovableParts: []string{}, Price: 600000},
		},
		Total: 600000,
	}
}

func TestQuotationUseCase_Save(t *testing.T) {
	t.Run("invalid customer", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		d := testDraft()
		d.Customer.FullName = ""
		_, err := uc.Save(context.Background(), d)
		if !errors.Is(err, wizard.ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("customer insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		metrics := mock_interfaces.NewMockIQuotationMetrics(ctrl)
		uc := NewQuotationUseCase(customers, quotations, metrics)

		customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("db"))
		metrics.EXPECT().QuotationSaveFailed("customer")

		_, err := uc.Save(context.Background(), testDraft())
		if !errors.Is(err, ErrPersistenceFailed) {
			t.Fatalf("expected ErrPersistenceFailed, got %v", err)
		}
	})

	t.Run("quotation insert fails after customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		metrics := mock_interfaces.NewMockIQuotationMetrics(ctrl)
		uc := NewQuotationUseCase(customers, quotations, metrics)

		gomock.InOrder(
			customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
			),
			quotations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("db")),
		)
		metrics.EXPECT().QuotationSaveFailed("quotation")

		_, err := uc.Save(context.Background(), testDraft())
		if !errors.Is(err, ErrPersistenceFailed) {
			t.Fatalf("expected ErrPersistenceFailed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		metrics := mock_interfaces.NewMockIQuotationMetrics(ctrl)
		uc := NewQuotationUseCase(customers, quotations, metrics)

		var customerID string
		gomock.InOrder(
			customers.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
				func(_ context.Context, c entities.Customer) (entities.Customer, error) {
					if c.ID == "" || c.CreatedAt.IsZero() {
						t.Fatalf("expected id and timestamp, got %+v", c)
					}
					customerID = c.ID
					return c, nil
				},
			),
			quotations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
				func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
					if q.ID == "" || q.CustomerID != customerID {
						t.Fatalf("unexpected ids: %+v", q)
					}
					if q.Status != entities.QuotationStatusDraft || q.TotalAmount != 600000 {
						t.Fatalf("unexpected quotation: %+v", q)
					}
					if q.QuotationData.ServiceType != entities.ServiceTypeSpotPainting || len(q.QuotationData.Items) != 1 {
						t.Fatalf("unexpected quotation data: %+v", q.QuotationData)
					}
					if q.QuotationData.Customer.ID != customerID || q.QuotationData.CreatedAt.IsZero() {
						t.Fatalf("unexpected quotation customer: %+v", q.QuotationData.Customer)
					}
					return q, nil
				},
			),
		)
		metrics.EXPECT().QuotationSaved("spot_painting", int64(600000))

		// the stored total is recomputed from the items
		d := testDraft()
		d.Total = 1
		q, err := uc.Save(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.TotalAmount != 600000 {
			t.Fatalf("expected 600000, got %d", q.TotalAmount)
		}
	})
}

func TestQuotationUseCase_List(t *testing.T) {
	records := []entities.QuotationRecord{
		{
			Quotation: entities.Quotation{ID: "q1", ServiceType: entities.ServiceTypeSpotPainting, Status: entities.QuotationStatusDraft},
			Customer:  entities.CustomerSummary{FullName: "Nguyen Van A", Phone: "0901234567", CarName: "Toyota Vios", LicensePlate: "51A-12345"},
		},
		{
			Quotation: entities.Quotation{ID: "q2", ServiceType: entities.ServiceTypePanelPainting, Status: entities.QuotationStatusApproved},
			Customer:  entities.CustomerSummary{FullName: "Tran Thi B", Phone: "0912000000", CarName: "Honda City"},
		},
	}

	cases := []struct {
		name   string
		filter QuotationFilter
		want   []string
	}{
		{name: "no filter", want: []string{"q1", "q2"}},
		{name: "search name case insensitive", filter: QuotationFilter{Search: "tran"}, want: []string{"q2"}},
		{name: "search plate", filter: QuotationFilter{Search: "51a"}, want: []string{"q1"}},
		{name: "search phone", filter: QuotationFilter{Search: "0912"}, want: []string{"q2"}},
		{name: "search car", filter: QuotationFilter{Search: " vios "}, want: []string{"q1"}},
		{name: "status", filter: QuotationFilter{Status: entities.QuotationStatusApproved}, want: []string{"q2"}},
		{name: "service type", filter: QuotationFilter{ServiceType: entities.ServiceTypeSpotPainting}, want: []string{"q1"}},
		{name: "no match", filter: QuotationFilter{Search: "zzz"}, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
			quotations.EXPECT().List(gomock.Any()).Return(records, nil)
			uc := NewQuotationUseCase(nil, quotations, nil)

			got, err := uc.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %+v", tc.want, got)
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("expected %v at %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}

	t.Run("invalid filters", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		if _, err := uc.List(context.Background(), QuotationFilter{Status: "lost"}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if _, err := uc.List(context.Background(), QuotationFilter{ServiceType: "wrap"}); !errors.Is(err, wizard.ErrInvalidService) {
			t.Fatalf("expected ErrInvalidService, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		quotations.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))
		uc := NewQuotationUseCase(nil, quotations, nil)
		if _, err := uc.List(context.Background(), QuotationFilter{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.QuotationRecord{}, nil)
		uc := NewQuotationUseCase(nil, quotations, nil)
		if _, err := uc.GetByID(context.Background(), " q1 "); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.QuotationRecord{Quotation: entities.Quotation{ID: "q1"}}, nil)
		uc := NewQuotationUseCase(nil, quotations, nil)
		r, err := uc.GetByID(context.Background(), "q1")
		if err != nil || r.ID != "q1" {
			t.Fatalf("unexpected result: %+v %v", r, err)
		}
	})
}

func TestQuotationUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		quotations.EXPECT().Delete(gomock.Any(), "missing").Return(nil)
		uc := NewQuotationUseCase(nil, quotations, nil)
		if err := uc.Delete(context.Background(), "missing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		quotations.EXPECT().Delete(gomock.Any(), "q1").Return(errors.New("db"))
		uc := NewQuotationUseCase(nil, quotations, nil)
		if err := uc.Delete(context.Background(), "q1"); !errors.Is(err, ErrPersistenceFailed) {
			t.Fatalf("expected ErrPersistenceFailed, got %v", err)
		}
	})
}
