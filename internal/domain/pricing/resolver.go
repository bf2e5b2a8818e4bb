package pricing

import (
	"autopaint_quotation/internal/domain/entities"
)

// DiagnosticsSink receives lookups that found no configured price.
//
// A miss is not an error: the resolver answers 0 and the operator corrects
// the line with a manual override. Sinks must not affect the result.
type DiagnosticsSink interface {
	PriceMissing(segmentID string, itemType entities.ItemType, itemID string)
}

type noopSink struct{}

func (noopSink) PriceMissing(string, entities.ItemType, string) {}

// MultiSink fans a miss out to several sinks.
type MultiSink []DiagnosticsSink

func (m MultiSink) PriceMissing(segmentID string, itemType entities.ItemType, itemID string) {
	for _, s := range m {
		if s != nil {
			s.PriceMissing(segmentID, itemType, itemID)
		}
	}
}

type priceKey struct {
	segmentID string
	itemType  entities.ItemType
	itemID    string
}

// Resolver answers price lookups against an in-memory price table.
//
// Duplicate keys resolve to the entry with the lowest ID.
type Resolver struct {
	table map[priceKey]entities.PriceEntry
	sink  DiagnosticsSink
}

func NewResolver(entries []entities.PriceEntry, sink DiagnosticsSink) *Resolver {
	if sink == nil {
		sink = noopSink{}
	}
	table := make(map[priceKey]entities.PriceEntry, len(entries))
	for _, e := range entries {
		k := priceKey{segmentID: e.CarSegmentID, itemType: e.ItemType, itemID: e.ItemID}
		if existing, ok := table[k]; ok && existing.ID <= e.ID {
			continue
		}
		table[k] = e
	}
	return &Resolver{table: table, sink: sink}
}

// Resolve returns the configured price for (segment, type, item) or 0.
// Pass an empty itemID for the panel_painting base price.
func (r *Resolver) Resolve(segmentID string, itemType entities.ItemType, itemID string) int64 {
	if r == nil {
		return 0
	}
	e, ok := r.table[priceKey{segmentID: segmentID, itemType: itemType, itemID: itemID}]
	if !ok {
		r.sink.PriceMissing(segmentID, itemType, itemID)
		return 0
	}
	if e.Price < 0 {
		return 0
	}
	return e.Price
}

// Len reports the number of distinct keys in the table.
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.table)
}
