package pricing

import (
	"sort"

	"autopaint_quotation/internal/domain/entities"
)

// OverviewLine is one configured price with the display name of what it prices.
type OverviewLine struct {
	PriceID  string            `json:"price_id"`
	ItemType entities.ItemType `json:"item_type"`
	ItemID   string            `json:"item_id,omitempty"`
	ItemName string            `json:"item_name"`
	Price    int64             `json:"price"`
}

// SegmentOverview groups a segment's prices by item type.
type SegmentOverview struct {
	SegmentID   string                               `json:"segment_id"`
	SegmentName string                               `json:"segment_name"`
	Prices      map[entities.ItemType][]OverviewLine `json:"prices"`
}

// Overview is the price table grouped for review by an operator.
type Overview struct {
	TotalRecords       int               `json:"total_records"`
	CarPartCount       int               `json:"car_part_count"`
	ServiceCount       int               `json:"service_count"`
	RemovablePartCount int               `json:"removable_part_count"`
	CarSegmentCount    int               `json:"car_segment_count"`
	Segments           []SegmentOverview `json:"segments"`
}

const unknownName = "Unknown"

// BuildOverview groups the raw price table per segment, resolving the
// display names of segments and priced items. Segments follow the
// reference order; prices of unknown segments are grouped last.
func BuildOverview(data entities.ReferenceData) Overview {
	names := map[entities.ItemType]map[string]string{
		entities.ItemTypeCarPart:       {},
		entities.ItemTypeService:       {},
		entities.ItemTypeRemovablePart: {},
	}
	for _, p := range data.CarParts {
		names[entities.ItemTypeCarPart][p.ID] = p.DisplayName
	}
	for _, s := range data.Services {
		names[entities.ItemTypeService][s.ID] = s.DisplayName
	}
	for _, rp := range data.RemovableParts {
		names[entities.ItemTypeRemovablePart][rp.ID] = rp.DisplayName
	}

	bySegment := map[string]*SegmentOverview{}
	order := make([]string, 0, len(data.CarSegments))
	for _, s := range data.CarSegments {
		bySegment[s.ID] = &SegmentOverview{SegmentID: s.ID, SegmentName: s.DisplayName, Prices: newPriceGroups()}
		order = append(order, s.ID)
	}

	var unknown []string
	for _, e := range data.Pricing {
		seg, ok := bySegment[e.CarSegmentID]
		if !ok {
			seg = &SegmentOverview{SegmentID: e.CarSegmentID, SegmentName: unknownName, Prices: newPriceGroups()}
			bySegment[e.CarSegmentID] = seg
			unknown = append(unknown, e.CarSegmentID)
		}
		line := OverviewLine{PriceID: e.ID, ItemType: e.ItemType, ItemID: e.ItemID, Price: e.Price}
		switch {
		case e.ItemType == entities.ItemTypePanelPainting:
			line.ItemName = "Sơn Quây Toàn Bộ"
		case names[e.ItemType][e.ItemID] != "":
			line.ItemName = names[e.ItemType][e.ItemID]
		default:
			line.ItemName = e.ItemID
		}
		seg.Prices[e.ItemType] = append(seg.Prices[e.ItemType], line)
	}
	sort.Strings(unknown)

	out := Overview{
		TotalRecords:       len(data.Pricing),
		CarPartCount:       len(data.CarParts),
		ServiceCount:       len(data.Services),
		RemovablePartCount: len(data.RemovableParts),
		CarSegmentCount:    len(data.CarSegments),
		Segments:           make([]SegmentOverview, 0, len(order)+len(unknown)),
	}
	for _, id := range append(order, unknown...) {
		seg := bySegment[id]
		for _, lines := range seg.Prices {
			sort.SliceStable(lines, func(i, j int) bool { return lines[i].ItemName < lines[j].ItemName })
		}
		out.Segments = append(out.Segments, *seg)
	}
	return out
}

func newPriceGroups() map[entities.ItemType][]OverviewLine {
	return map[entities.ItemType][]OverviewLine{
		entities.ItemTypeCarPart:       {},
		entities.ItemTypeService:       {},
		entities.ItemTypeRemovablePart: {},
		entities.ItemTypePanelPainting: {},
	}
}
