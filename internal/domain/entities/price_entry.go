package entities

import "time"

// ItemType identifies what a PriceEntry prices.
type ItemType string

const (
	ItemTypeCarPart       ItemType = "car_part"
	ItemTypeService       ItemType = "service"
	ItemTypeRemovablePart ItemType = "removable_part"
	ItemTypePanelPainting ItemType = "panel_painting"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeCarPart, ItemTypeService, ItemTypeRemovablePart, ItemTypePanelPainting:
		return true
	}
	return false
}

// PriceEntry is one row of the per-segment price table.
//
// Lookup key: (CarSegmentID, ItemType, ItemID). ItemID is empty for the
// whole-vehicle panel_painting base price.
//
// Monetary representation:
//   - Price is an integer amount of VND.
type PriceEntry struct {
	ID           string    `json:"id"`
	CarSegmentID string    `json:"car_segment_id"`
	ItemType     ItemType  `json:"item_type"`
	ItemID       string    `json:"item_id,omitempty"`
	Price        int64     `json:"price"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
