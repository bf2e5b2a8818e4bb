package entities

import "time"

// CarSegment is the pricing tier of a vehicle (e.g. sedan C, SUV 7 seats).
type CarSegment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// CarPart is a paintable zone of a vehicle (bumper, hood, ...).
type CarPart struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type ServiceKind string

const (
	ServiceKindRequired ServiceKind = "required"
	ServiceKindOptional ServiceKind = "optional"
)

// Service is a supplementary operation priced per segment.
//
// Only optional services are offered by the builders; required services are
// kept in the schema for future use.
type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Type        ServiceKind `json:"type"`
	CreatedAt   time.Time   `json:"created_at,omitempty"`
}

// RemovablePart is a sub-component that can be disassembled while its parent
// car part is being worked on.
type RemovablePart struct {
	ID          string    `json:"id"`
	CarPartID   string    `json:"car_part_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// ReferenceData is the bulk snapshot read from the reference store.
type ReferenceData struct {
	CarSegments    []CarSegment    `json:"car_segments"`
	CarParts       []CarPart       `json:"car_parts"`
	Services       []Service       `json:"services"`
	RemovableParts []RemovablePart `json:"removable_parts"`
	Pricing        []PriceEntry    `json:"pricing"`
}
