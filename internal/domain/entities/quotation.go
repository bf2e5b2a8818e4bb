package entities

import "time"

// ServiceType is the painting service category of a quotation.
type ServiceType string

const (
	ServiceTypeSpotPainting  ServiceType = "spot_painting"
	ServiceTypePanelPainting ServiceType = "panel_painting"
	ServiceTypeColorChange   ServiceType = "color_change"
	ServiceTypeTouchUp       ServiceType = "touch_up"
)

var serviceTypeNames = map[ServiceType]string{
	ServiceTypeSpotPainting:  "Sơn Món",
	ServiceTypePanelPainting: "Sơn Quây",
	ServiceTypeColorChange:   "Sơn Đổi Màu",
	ServiceTypeTouchUp:       "Sơn Dặm",
}

func (t ServiceType) Valid() bool {
	_, ok := serviceTypeNames[t]
	return ok
}

// DisplayName returns the Vietnamese label, or the raw value for unknown types.
func (t ServiceType) DisplayName() string {
	if n, ok := serviceTypeNames[t]; ok {
		return n
	}
	return string(t)
}

var serviceTypeDescriptions = map[ServiceType]string{
	ServiceTypeSpotPainting:  "Sơn từng bộ phận riêng lẻ theo nhu cầu",
	ServiceTypePanelPainting: "Sơn toàn bộ xe với giá cố định",
	ServiceTypeColorChange:   "Thay đổi màu sắc hoàn toàn cho xe",
	ServiceTypeTouchUp:       "Chữa các vết xước nhỏ",
}

func (t ServiceType) Description() string { return serviceTypeDescriptions[t] }

// Available reports whether a quotation of this type can be built today.
func (t ServiceType) Available() bool {
	return t.Valid() && t != ServiceTypeTouchUp
}

// ServiceTypes lists the service types in the order they are offered.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceTypeSpotPainting,
		ServiceTypePanelPainting,
		ServiceTypeColorChange,
		ServiceTypeTouchUp,
	}
}

// QuotationStatus represents the lifecycle of a quotation.
//
// Transitions past draft are driven by an external workflow.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

var quotationStatusNames = map[QuotationStatus]string{
	QuotationStatusDraft:    "Nháp",
	QuotationStatusSent:     "Đã gửi",
	QuotationStatusApproved: "Đã duyệt",
	QuotationStatusRejected: "Từ chối",
}

func (s QuotationStatus) Valid() bool {
	_, ok := quotationStatusNames[s]
	return ok
}

func (s QuotationStatus) DisplayName() string {
	if n, ok := quotationStatusNames[s]; ok {
		return n
	}
	return "Không xác định"
}

// QuotationItem is one priced line of a quotation.
//
// CarPartID holds a car part id, or a synthetic id for whole-vehicle base
// lines ("panel_painting", "color_change") and color-change extras.
type QuotationItem struct {
	CarPartID              string   `json:"car_part_id"`
	CarPartName            string   `json:"car_part_name"`
	SelectedServices       []string `json:"selected_services"`
	SelectedRemovableParts []string `json:"selected_removable_parts"`
	Price                  int64    `json:"price"`
}

// QuotationData is the snapshot preserved with a quotation for display/audit.
type QuotationData struct {
	Items       []QuotationItem `json:"items"`
	Customer    Customer        `json:"customer"`
	ServiceType ServiceType     `json:"service_type"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Quotation is the persisted quotation aggregate.
//
// Storage model:
//   - PK: id
//   - customer_id references the customer inserted right before it.
type Quotation struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	ServiceType   ServiceType     `json:"service_type"`
	TotalAmount   int64           `json:"total_amount"`
	QuotationData QuotationData   `json:"quotation_data"`
	Status        QuotationStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// QuotationRecord is a quotation joined with its customer summary.
type QuotationRecord struct {
	Quotation
	Customer CustomerSummary `json:"customers"`
}
