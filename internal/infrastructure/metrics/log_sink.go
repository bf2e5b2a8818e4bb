package metrics

import (
	"log"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
)

// LogSink writes every missing price lookup to the standard logger.
type LogSink struct{}

var _ pricing.DiagnosticsSink = LogSink{}

func (LogSink) PriceMissing(segmentID string, itemType entities.ItemType, itemID string) {
	log.Printf("[pricing][resolver] price missing segment_id=%s item_type=%s item_id=%q", segmentID, itemType, itemID)
}
