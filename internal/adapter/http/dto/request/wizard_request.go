package request

import (
	"strings"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/quote"
)

// CustomerRequest is the intake form of a wizard session. Required fields
// are checked by the wizard so the response can name every missing one.
type CustomerRequest struct {
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	CarName        string `json:"car_name"`
	CarYear        string `json:"car_year"`
	CarSegmentID   string `json:"car_segment_id"`
	LicensePlate   string `json:"license_plate"`
	CustomerSource string `json:"customer_source"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FullName:       r.FullName,
		Phone:          r.Phone,
		CarName:        r.CarName,
		CarYear:        r.CarYear,
		CarSegmentID:   r.CarSegmentID,
		LicensePlate:   r.LicensePlate,
		CustomerSource: r.CustomerSource,
	}
}

type ServiceSelectionRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
}

func (r ServiceSelectionRequest) ResolveServiceType() entities.ServiceType {
	return entities.ServiceType(strings.TrimSpace(r.ServiceType))
}

// CommandRequest is one builder action. Price is only read by the override
// commands; omit it or send null for the others.
type CommandRequest struct {
	Type            string `json:"type" binding:"required"`
	PartID          string `json:"part_id"`
	ServiceID       string `json:"service_id"`
	RemovablePartID string `json:"removable_part_id"`
	ExtraServiceID  string `json:"extra_service_id"`
	Price           *int64 `json:"price"`
}

func (r CommandRequest) ToCommand() quote.Command {
	return quote.Command{
		Type:            quote.CommandType(strings.TrimSpace(r.Type)),
		PartID:          strings.TrimSpace(r.PartID),
		ServiceID:       strings.TrimSpace(r.ServiceID),
		RemovablePartID: strings.TrimSpace(r.RemovablePartID),
		ExtraServiceID:  strings.TrimSpace(r.ExtraServiceID),
		Price:           r.Price,
	}
}
