package quote

import (
	"testing"

	"autopaint_quotation/internal/domain/entities"
)

const segment = "sedan-c"

func fixtureData() entities.ReferenceData {
	return entities.ReferenceData{
		CarSegments: []entities.CarSegment{{ID: segment, Name: "sedan_c", DisplayName: "Sedan hạng C"}},
		CarParts: []entities.CarPart{
			{ID: "front-sub", Name: "can_truoc_phu", DisplayName: "Cản trước phụ"},
			{ID: "trunk-top", Name: "cop_tren", DisplayName: "Cốp trên"},
			{ID: "door", Name: "cua_truoc", DisplayName: "Cửa trước"},
			{ID: "hood", Name: "nap_capo", DisplayName: "Nắp capo"},
			{ID: "roof", Name: "noc_xe", DisplayName: "Nóc xe"},
		},
		Services: []entities.Service{
			{ID: "cau_ha_may", Name: "cau_ha_may", DisplayName: "Cẩu hạ máy", Type: entities.ServiceKindRequired},
			{ID: "extra-polish", Name: "danh_bong", DisplayName: "Đánh bóng", Type: entities.ServiceKindOptional},
			{ID: "ceramic", Name: "phu_ceramic", DisplayName: "Phủ ceramic", Type: entities.ServiceKindOptional},
		},
		RemovableParts: []entities.RemovablePart{
			{ID: "mirror", CarPartID: "door", Name: "guong", DisplayName: "Gương"},
			{ID: "emblem", CarPartID: "hood", Name: "logo", DisplayName: "Logo"},
		},
		Pricing: []entities.PriceEntry{
			{ID: "1", CarSegmentID: segment, ItemType: entities.ItemTypeCarPart, ItemID: "hood", Price: 500000},
			{ID: "2", CarSegmentID: segment, ItemType: entities.ItemTypeCarPart, ItemID: "door", Price: 400000},
			{ID: "3", CarSegmentID: segment, ItemType: entities.ItemTypeCarPart, ItemID: "front-sub", Price: 200000},
			{ID: "4", CarSegmentID: segment, ItemType: entities.ItemTypeService, ItemID: "extra-polish", Price: 100000},
			{ID: "5", CarSegmentID: segment, ItemType: entities.ItemTypeService, ItemID: "ceramic", Price: 700000},
			{ID: "6", CarSegmentID: segment, ItemType: entities.ItemTypeRemovablePart, ItemID: "mirror", Price: 50000},
			{ID: "7", CarSegmentID: segment, ItemType: entities.ItemTypeRemovablePart, ItemID: "emblem", Price: 30000},
			{ID: "8", CarSegmentID: segment, ItemType: entities.ItemTypePanelPainting, Price: 5000000},
		},
	}
}

func fixtureCatalog() *Catalog {
	return NewCatalog(fixtureData(), nil)
}

func price(v int64) *int64 { return &v }

func apply(t *testing.T, c *Catalog, m Mode, cmds ...Command) Mode {
	t.Helper()
	for _, cmd := range cmds {
		next, err := m.Apply(c, cmd)
		if err != nil {
			t.Fatalf("apply %+v: %v", cmd, err)
		}
		m = next
	}
	return m
}
