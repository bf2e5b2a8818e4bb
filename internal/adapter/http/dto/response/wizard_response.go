package response

import (
	"time"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/quote"
	"autopaint_quotation/internal/usecase"
)

type SessionResponse struct {
	ID               string                   `json:"id"`
	Step             string                   `json:"step"`
	Customer         *entities.Customer       `json:"customer,omitempty"`
	ServiceType      string                   `json:"service_type,omitempty"`
	ServiceTypeName  string                   `json:"service_type_name,omitempty"`
	ServiceAvailable bool                     `json:"service_available"`
	Mode             quote.Mode               `json:"mode,omitempty"`
	Items            []entities.QuotationItem `json:"items"`
	TotalAmount      int64                    `json:"total_amount"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	res := SessionResponse{
		ID:               v.ID,
		Step:             string(v.Step),
		Customer:         v.Customer,
		ServiceType:      string(v.ServiceType),
		ServiceAvailable: v.ServiceAvailable,
		Mode:             v.Mode,
		Items:            v.Items,
		TotalAmount:      v.Total,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.ServiceType != "" {
		res.ServiceTypeName = v.ServiceType.DisplayName()
	}
	if res.Items == nil {
		res.Items = []entities.QuotationItem{}
	}
	return res
}

type SaveResponse struct {
	Quotation QuotationResponse `json:"quotation"`
	NextView  string            `json:"next_view"`
}

func FromSaveResult(r usecase.SaveResult) SaveResponse {
	return SaveResponse{
		Quotation: FromQuotation(r.Quotation),
		NextView:  r.NextView,
	}
}
