package interfaces

// IQuotationMetrics records quotation persistence outcomes.
type IQuotationMetrics interface {
	QuotationSaved(serviceType string, totalAmount int64)
	QuotationSaveFailed(stage string)
}
