package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"autopaint_quotation/internal/adapter/http/handlers/mocks"
	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
	"autopaint_quotation/internal/domain/quote"
	"autopaint_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReferenceRouter(h *ReferenceDataHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/service-types", h.ListServiceTypes)
	r.GET("/v1/reference-data", h.GetReferenceData)
	r.POST("/v1/reference-data/refresh", h.RefreshReferenceData)
	r.GET("/v1/pricing/resolve", h.ResolvePrice)
	r.GET("/v1/pricing/overview", h.PricingOverview)
	return r
}

func TestReferenceDataHandler_ServiceTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newReferenceRouter(NewReferenceDataHandler(mocks.NewMockIReferenceDataUseCase(ctrl)))

	w := doJSON(r, http.MethodGet, "/v1/service-types", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []struct {
		Value     string `json:"value"`
		Available bool   `json:"available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 4 || body[0].Value != "spot_painting" || body[3].Available {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestReferenceDataHandler_GetReferenceData(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceDataUseCase(ctrl)
		r := newReferenceRouter(NewReferenceDataHandler(uc))

		uc.EXPECT().Catalog(gomock.Any()).Return(nil, fmt.Errorf("%w: %w", usecase.ErrReferenceDataUnavailable, errors.New("db")))

		w := doJSON(r, http.MethodGet, "/v1/reference-data", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("refresh invalidates first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceDataUseCase(ctrl)
		r := newReferenceRouter(NewReferenceDataHandler(uc))

		catalog := quote.NewCatalog(entities.ReferenceData{
			CarSegments: []entities.CarSegment{{ID: "sedan-c"}},
			CarParts:    []entities.CarPart{{ID: "hood", Name: "nap_capo"}},
		}, nil)
		gomock.InOrder(
			uc.EXPECT().Invalidate(),
			uc.EXPECT().Catalog(gomock.Any()).Return(catalog, nil),
		)

		w := doJSON(r, http.MethodPost, "/v1/reference-data/refresh", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			CarParts []struct {
				ID                   string `json:"id"`
				OfferedInColorChange bool   `json:"offered_in_color_change"`
			} `json:"car_parts"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.CarParts) != 1 || body.CarParts[0].ID != "hood" || !body.CarParts[0].OfferedInColorChange {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReferenceDataHandler_ResolvePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceDataUseCase(ctrl)
		r := newReferenceRouter(NewReferenceDataHandler(uc))

		w := doJSON(r, http.MethodGet, "/v1/pricing/resolve?item_type=car_part", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown segment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceDataUseCase(ctrl)
		r := newReferenceRouter(NewReferenceDataHandler(uc))

		uc.EXPECT().ResolvePrice(gomock.Any(), "suv", entities.ItemTypeCarPart, "hood").Return(int64(0), usecase.ErrSegmentNotFound)

		w := doJSON(r, http.MethodGet, "/v1/pricing/resolve?segment_id=suv&item_type=car_part&item_id=hood", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReferenceDataUseCase(ctrl)
		r := newReferenceRouter(NewReferenceDataHandler(uc))

		uc.EXPECT().ResolvePrice(gomock.Any(), "sedan-c", entities.ItemTypeCarPart, "hood").Return(int64(500000), nil)

		w := doJSON(r, http.MethodGet, "/v1/pricing/resolve?segment_id=sedan-c&item_type=car_part&item_id=hood", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Price int64 `json:"price"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Price != 500000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReferenceDataHandler_PricingOverview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReferenceDataUseCase(ctrl)
	r := newReferenceRouter(NewReferenceDataHandler(uc))

	uc.EXPECT().PricingOverview(gomock.Any()).Return(pricing.Overview{TotalRecords: 3}, nil)

	w := doJSON(r, http.MethodGet, "/v1/pricing/overview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body pricing.Overview
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.TotalRecords != 3 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
