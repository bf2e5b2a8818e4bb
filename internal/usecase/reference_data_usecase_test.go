package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autopaint_quotation/internal/domain/entities"
	mock_interfaces "autopaint_quotation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func referenceFixture() entities.ReferenceData {
	return entities.ReferenceData{
		CarSegments: []entities.CarSegment{{ID: "sedan-c", DisplayName: "Sedan hạng C"}},
		CarParts:    []entities.CarPart{{ID: "hood", Name: "nap_capo", DisplayName: "Nắp capo"}},
		Services: []entities.Service{
			{ID: "extra-polish", Name: "danh_bong", DisplayName: "Đánh bóng", Type: entities.ServiceKindOptional},
		},
		RemovableParts: []entities.RemovablePart{},
		Pricing: []entities.PriceEntry{
			{ID: "1", CarSegmentID: "sedan-c", ItemType: entities.ItemTypeCarPart, ItemID: "hood", Price: 500000},
			{ID: "2", CarSegmentID: "sedan-c", ItemType: entities.ItemTypeService, ItemID: "extra-polish", Price: 100000},
			{ID: "3", CarSegmentID: "sedan-c", ItemType: entities.ItemTypePanelPainting, Price: 5000000},
		},
	}
}

func expectReferenceLoad(repo *mock_interfaces.MockIReferenceDataRepository, data entities.ReferenceData, times int) {
	repo.EXPECT().ListCarSegments(gomock.Any()).Return(data.CarSegments, nil).Times(times)
	repo.EXPECT().ListCarParts(gomock.Any()).Return(data.CarParts, nil).Times(times)
	repo.EXPECT().ListServices(gomock.Any()).Return(data.Services, nil).Times(times)
	repo.EXPECT().ListRemovableParts(gomock.Any()).Return(data.RemovableParts, nil).Times(times)
	repo.EXPECT().ListPricing(gomock.Any()).Return(data.Pricing, nil).Times(times)
}

func TestReferenceDataUseCase_Catalog(t *testing.T) {
	t.Run("loads once and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceDataRepository(ctrl)
		expectReferenceLoad(repo, referenceFixture(), 1)

		uc := NewReferenceDataUseCase(repo, nil, time.Minute)
		c1, err := uc.Catalog(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c2, err := uc.Catalog(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c1 != c2 {
			t.Fatalf("expected cached catalog")
		}
		if !c1.HasSegment("sedan-c") {
			t.Fatalf("expected segment sedan-c")
		}
	})

	t.Run("reloads after ttl and invalidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceDataRepository(ctrl)
		expectReferenceLoad(repo, referenceFixture(), 3)

		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		uc := NewReferenceDataUseCase(repo, nil, time.Minute)
		uc.now = func() time.Time { return now }

		if _, err := uc.Catalog(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		now = now.Add(2 * time.Minute)
		if _, err := uc.Catalog(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.Invalidate()
		if _, err := uc.Catalog(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("any failing table fails the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReferenceDataRepository(ctrl)
		data := referenceFixture()
		repo.EXPECT().ListCarSegments(gomock.Any()).Return(data.CarSegments, nil).AnyTimes()
		repo.EXPECT().ListCarParts(gomock.Any()).Return(data.CarParts, nil).AnyTimes()
		repo.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("db")).AnyTimes()
		repo.EXPECT().ListRemovableParts(gomock.Any()).Return(data.RemovableParts, nil).AnyTimes()
		repo.EXPECT().ListPricing(gomock.Any()).Return(data.Pricing, nil).AnyTimes()

		uc := NewReferenceDataUseCase(repo, nil, time.Minute)
		c, err := uc.Catalog(context.Background())
		if !errors.Is(err, ErrReferenceDataUnavailable) {
			t.Fatalf("expected ErrReferenceDataUnavailable, got %v", err)
		}
		if c != nil {
			t.Fatalf("expected no catalog")
		}
		if uc.catalog != nil {
			t.Fatalf("expected nothing cached")
		}
	})
}

func TestReferenceDataUseCase_ResolvePrice(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewReferenceDataUseCase(nil, nil, 0)
		if _, err := uc.ResolvePrice(context.Background(), " ", entities.ItemTypeCarPart, "hood"); !errors.Is(err, ErrInvalidSegmentID) {
			t.Fatalf("expected ErrInvalidSegmentID, got %v", err)
		}
		if _, err := uc.ResolvePrice(context.Background(), "sedan-c", "wheel", "hood"); !errors.Is(err, ErrInvalidItemType) {
			t.Fatalf("expected ErrInvalidItemType, got %v", err)
		}
	})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIReferenceDataRepository(ctrl)
	expectReferenceLoad(repo, referenceFixture(), 1)
	uc := NewReferenceDataUseCase(repo, nil, 0)

	cases := []struct {
		name     string
		segment  string
		itemType entities.ItemType
		itemID   string
		want     int64
		wantErr  error
	}{
		{name: "car part", segment: "sedan-c", itemType: entities.ItemTypeCarPart, itemID: "hood", want: 500000},
		{name: "service", segment: "sedan-c", itemType: entities.ItemTypeService, itemID: " extra-polish ", want: 100000},
		{name: "panel ignores item id", segment: "sedan-c", itemType: entities.ItemTypePanelPainting, itemID: "x", want: 5000000},
		{name: "missing price", segment: "sedan-c", itemType: entities.ItemTypeRemovablePart, itemID: "mirror", want: 0},
		{name: "unknown segment", segment: "suv", itemType: entities.ItemTypeCarPart, itemID: "hood", wantErr: ErrSegmentNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.ResolvePrice(context.Background(), tc.segment, tc.itemType, tc.itemID)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestReferenceDataUseCase_PricingOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIReferenceDataRepository(ctrl)
	expectReferenceLoad(repo, referenceFixture(), 1)
	uc := NewReferenceDataUseCase(repo, nil, 0)

	o, err := uc.PricingOverview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.TotalRecords != 3 || len(o.Segments) != 1 {
		t.Fatalf("unexpected overview: %+v", o)
	}
	if got := o.Segments[0].Prices[entities.ItemTypeCarPart][0].ItemName; got != "Nắp capo" {
		t.Fatalf("expected Nắp capo, got %q", got)
	}
}
