package repository

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Relational schema of the managed Postgres store (and of the tables the
// DynamoDB adapters mirror).

type carSegmentModel struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text;not null;column:name"`
	DisplayName string    `gorm:"type:text;not null;column:display_name"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (carSegmentModel) TableName() string { return "car_segments" }

type carPartModel struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text;not null;column:name"`
	DisplayName string    `gorm:"type:text;not null;column:display_name"`
	Category    string    `gorm:"type:text;column:category"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (carPartModel) TableName() string { return "car_parts" }

type serviceModel struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text;not null;column:name"`
	DisplayName string    `gorm:"type:text;not null;column:display_name"`
	Type        string    `gorm:"type:text;not null;column:type"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (serviceModel) TableName() string { return "services" }

type removablePartModel struct {
	ID          string    `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	CarPartID   string    `gorm:"type:uuid;not null;index;column:car_part_id"`
	Name        string    `gorm:"type:text;not null;column:name"`
	DisplayName string    `gorm:"type:text;not null;column:display_name"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (removablePartModel) TableName() string { return "removable_parts" }

type pricingModel struct {
	ID           string    `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	CarSegmentID string    `gorm:"type:uuid;not null;index;column:car_segment_id"`
	ItemType     string    `gorm:"type:text;not null;column:item_type"`
	ItemID       *string   `gorm:"type:uuid;column:item_id"`
	Price        int64     `gorm:"type:numeric;not null;column:price"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (pricingModel) TableName() string { return "pricing" }

type customerModel struct {
	ID             string    `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	FullName       string    `gorm:"type:text;not null;column:full_name"`
	Phone          string    `gorm:"type:text;not null;column:phone"`
	CarName        string    `gorm:"type:text;not null;column:car_name"`
	CarYear        string    `gorm:"type:text;not null;column:car_year"`
	CarSegmentID   string    `gorm:"type:uuid;not null;column:car_segment_id"`
	LicensePlate   *string   `gorm:"type:text;column:license_plate"`
	CustomerSource *string   `gorm:"type:text;column:customer_source"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (customerModel) TableName() string { return "customers" }

type quotationModel struct {
	ID            string         `gorm:"type:uuid;primaryKey;column:id;default:gen_random_uuid()"`
	CustomerID    string         `gorm:"type:uuid;not null;index;column:customer_id"`
	ServiceType   string         `gorm:"type:text;not null;column:service_type"`
	TotalAmount   int64          `gorm:"type:numeric;not null;column:total_amount"`
	QuotationData datatypes.JSON `gorm:"type:jsonb;not null;column:quotation_data"`
	Status        string         `gorm:"type:text;not null;default:'draft';column:status"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime;index"`
}

func (quotationModel) TableName() string { return "quotations" }

// quotationRow is a quotation joined with its customer's summary columns.
type quotationRow struct {
	ID                   string         `gorm:"column:id"`
	CustomerID           string         `gorm:"column:customer_id"`
	ServiceType          string         `gorm:"column:service_type"`
	TotalAmount          int64          `gorm:"column:total_amount"`
	QuotationData        datatypes.JSON `gorm:"column:quotation_data"`
	Status               string         `gorm:"column:status"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	CustomerFullName     *string        `gorm:"column:customer_full_name"`
	CustomerPhone        *string        `gorm:"column:customer_phone"`
	CustomerCarName      *string        `gorm:"column:customer_car_name"`
	CustomerCarYear      *string        `gorm:"column:customer_car_year"`
	CustomerLicensePlate *string        `gorm:"column:customer_license_plate"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MigratePostgres creates or updates the tables the Postgres repositories use.
func MigratePostgres(db *gorm.DB) error {
	return db.AutoMigrate(
		&carSegmentModel{},
		&carPartModel{},
		&serviceModel{},
		&removablePartModel{},
		&pricingModel{},
		&customerModel{},
		&quotationModel{},
	)
}
