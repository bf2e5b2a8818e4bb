package request

import (
	"strings"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/usecase"
)

type QuotationListQuery struct {
	Search      string `form:"search"`
	Status      string `form:"status"`
	ServiceType string `form:"service_type"`
}

func (q QuotationListQuery) ToFilter() usecase.QuotationFilter {
	return usecase.QuotationFilter{
		Search:      strings.TrimSpace(q.Search),
		Status:      entities.QuotationStatus(strings.TrimSpace(q.Status)),
		ServiceType: entities.ServiceType(strings.TrimSpace(q.ServiceType)),
	}
}

type PriceQuery struct {
	SegmentID string `form:"segment_id" binding:"required"`
	ItemType  string `form:"item_type" binding:"required"`
	ItemID    string `form:"item_id"`
}

func (q PriceQuery) ResolveItemType() entities.ItemType {
	return entities.ItemType(strings.TrimSpace(q.ItemType))
}
