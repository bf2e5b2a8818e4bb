package entities

import "time"

// Customer is the operator-entered customer/vehicle record of a quotation.
type Customer struct {
	ID             string    `json:"id,omitempty"`
	FullName       string    `json:"full_name" validate:"required"`
	Phone          string    `json:"phone" validate:"required"`
	CarName        string    `json:"car_name" validate:"required"`
	CarYear        string    `json:"car_year" validate:"required"`
	CarSegmentID   string    `json:"car_segment_id" validate:"required"`
	LicensePlate   string    `json:"license_plate,omitempty"`
	CustomerSource string    `json:"customer_source,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Known customer sources offered by the intake form. Free text is accepted too.
const (
	CustomerSourceFacebook = "facebook"
	CustomerSourceGoogle   = "google"
	CustomerSourceReferral = "gioi_thieu"
	CustomerSourceWalkIn   = "walk_in"
	CustomerSourceOther    = "khac"
)

// CustomerSummary is the subset of customer fields joined into quotation lists.
type CustomerSummary struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	CarName      string `json:"car_name"`
	CarYear      string `json:"car_year"`
	LicensePlate string `json:"license_plate,omitempty"`
}

func (c Customer) Summary() CustomerSummary {
	return CustomerSummary{
		FullName:     c.FullName,
		Phone:        c.Phone,
		CarName:      c.CarName,
		CarYear:      c.CarYear,
		LicensePlate: c.LicensePlate,
	}
}
