package response

import (
	"time"

	"autopaint_quotation/internal/domain/entities"
)

type QuotationResponse struct {
	ID              string                    `json:"id"`
	CustomerID      string                    `json:"customer_id"`
	ServiceType     string                    `json:"service_type"`
	ServiceTypeName string                    `json:"service_type_name"`
	TotalAmount     int64                     `json:"total_amount"`
	QuotationData   entities.QuotationData    `json:"quotation_data"`
	Status          string                    `json:"status"`
	StatusName      string                    `json:"status_name"`
	CreatedAt       time.Time                 `json:"created_at"`
	Customer        *entities.CustomerSummary `json:"customers,omitempty"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	data := q.QuotationData
	if data.Items == nil {
		data.Items = []entities.QuotationItem{}
	}
	return QuotationResponse{
		ID:              q.ID,
		CustomerID:      q.CustomerID,
		ServiceType:     string(q.ServiceType),
		ServiceTypeName: q.ServiceType.DisplayName(),
		TotalAmount:     q.TotalAmount,
		QuotationData:   data,
		Status:          string(q.Status),
		StatusName:      q.Status.DisplayName(),
		CreatedAt:       q.CreatedAt,
	}
}

func FromQuotationRecord(r entities.QuotationRecord) QuotationResponse {
	res := FromQuotation(r.Quotation)
	c := r.Customer
	res.Customer = &c
	return res
}

func FromQuotationRecords(rs []entities.QuotationRecord) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromQuotationRecord(r))
	}
	return out
}
