package response

import (
	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/quote"
)

type ServiceTypeResponse struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

func FromServiceTypes(types []entities.ServiceType) []ServiceTypeResponse {
	out := make([]ServiceTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ServiceTypeResponse{
			Value:       string(t),
			Name:        t.DisplayName(),
			Description: t.Description(),
			Available:   t.Available(),
		})
	}
	return out
}

// CarPartResponse carries what the builders offer for one part.
type CarPartResponse struct {
	entities.CarPart
	RemovableParts       []entities.RemovablePart `json:"removable_parts"`
	OfferedInColorChange bool                     `json:"offered_in_color_change"`
}

type ReferenceDataResponse struct {
	CarSegments       []entities.CarSegment `json:"car_segments"`
	CarParts          []CarPartResponse     `json:"car_parts"`
	OptionalServices  []entities.Service    `json:"optional_services"`
	ColorChangeExtras []quote.ExtraService  `json:"color_change_extras"`
}

func FromCatalog(c *quote.Catalog) ReferenceDataResponse {
	parts := make([]CarPartResponse, 0, len(c.CarParts()))
	for _, p := range c.CarParts() {
		parts = append(parts, CarPartResponse{
			CarPart:              p,
			RemovableParts:       c.RemovablePartsOf(p.ID),
			OfferedInColorChange: quote.OfferedInColorChange(p),
		})
	}
	segments := c.Data().CarSegments
	if segments == nil {
		segments = []entities.CarSegment{}
	}
	return ReferenceDataResponse{
		CarSegments:       segments,
		CarParts:          parts,
		OptionalServices:  c.OptionalServices(),
		ColorChangeExtras: quote.ColorChangeExtras(),
	}
}

type PriceResponse struct {
	SegmentID string `json:"segment_id"`
	ItemType  string `json:"item_type"`
	ItemID    string `json:"item_id,omitempty"`
	Price     int64  `json:"price"`
}
