package pricing

import (
	"testing"

	"autopaint_quotation/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	misses []string
}

func (s *recordingSink) PriceMissing(segmentID string, itemType entities.ItemType, itemID string) {
	s.misses = append(s.misses, segmentID+"/"+string(itemType)+"/"+itemID)
}

func TestResolver_Resolve(t *testing.T) {
	entries := []entities.PriceEntry{
		{ID: "p1", CarSegmentID: "sedan-c", ItemType: entities.ItemTypeCarPart, ItemID: "hood", Price: 500000},
		{ID: "p2", CarSegmentID: "sedan-c", ItemType: entities.ItemTypeService, ItemID: "extra-polish", Price: 100000},
		{ID: "p3", CarSegmentID: "sedan-c", ItemType: entities.ItemTypePanelPainting, Price: 5000000},
	}

	t.Run("hit", func(t *testing.T) {
		r := NewResolver(entries, nil)
		assert.Equal(t, int64(500000), r.Resolve("sedan-c", entities.ItemTypeCarPart, "hood"))
		assert.Equal(t, int64(100000), r.Resolve("sedan-c", entities.ItemTypeService, "extra-polish"))
		assert.Equal(t, int64(5000000), r.Resolve("sedan-c", entities.ItemTypePanelPainting, ""))
		assert.Equal(t, 3, r.Len())
	})

	t.Run("miss returns zero and notifies sink", func(t *testing.T) {
		sink := &recordingSink{}
		r := NewResolver(entries, sink)

		cases := []struct {
			segment  string
			itemType entities.ItemType
			itemID   string
		}{
			{"sedan-c", entities.ItemTypeCarPart, "roof"},
			{"suv", entities.ItemTypeCarPart, "hood"},
			{"sedan-c", entities.ItemTypeRemovablePart, "hood"},
			{"sedan-c", entities.ItemTypeCarPart, ""},
			{"", entities.ItemTypePanelPainting, ""},
		}
		for _, tc := range cases {
			assert.Equal(t, int64(0), r.Resolve(tc.segment, tc.itemType, tc.itemID))
		}
		require.Len(t, sink.misses, len(cases))
		assert.Equal(t, "sedan-c/car_part/roof", sink.misses[0])
	})

	t.Run("duplicate key resolves to lowest id", func(t *testing.T) {
		dup := []entities.PriceEntry{
			{ID: "b", CarSegmentID: "s", ItemType: entities.ItemTypeCarPart, ItemID: "hood", Price: 2},
			{ID: "a", CarSegmentID: "s", ItemType: entities.ItemTypeCarPart, ItemID: "hood", Price: 1},
			{ID: "c", CarSegmentID: "s", ItemType: entities.ItemTypeCarPart, ItemID: "hood", Price: 3},
		}
		r := NewResolver(dup, nil)
		assert.Equal(t, int64(1), r.Resolve("s", entities.ItemTypeCarPart, "hood"))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("nil resolver", func(t *testing.T) {
		var r *Resolver
		assert.Equal(t, int64(0), r.Resolve("s", entities.ItemTypeCarPart, "hood"))
		assert.Equal(t, 0, r.Len())
	})
}

func TestMultiSink(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	r := NewResolver(nil, MultiSink{a, nil, b})

	assert.Equal(t, int64(0), r.Resolve("s", entities.ItemTypeService, "x"))
	assert.Equal(t, []string{"s/service/x"}, a.misses)
	assert.Equal(t, []string{"s/service/x"}, b.misses)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(0), Total(nil))

	items := []entities.QuotationItem{{Price: 600000}, {Price: 0}, {Price: 2000000}, {Price: 1}}
	var manual int64
	for _, it := range items {
		manual += it.Price
	}
	assert.Equal(t, manual, Total(items))
	assert.Equal(t, int64(2600001), Total(items))
}
