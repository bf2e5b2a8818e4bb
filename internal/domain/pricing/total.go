package pricing

import "autopaint_quotation/internal/domain/entities"

// Total sums item prices. No rounding or tax is applied.
func Total(items []entities.QuotationItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price
	}
	return total
}
