package quote

import "autopaint_quotation/internal/domain/entities"

// TouchUp is a placeholder until touch-up pricing exists. Every operation
// fails with ErrServiceUnavailable.
type TouchUp struct{}

var _ Mode = TouchUp{}

func (TouchUp) ServiceType() entities.ServiceType { return entities.ServiceTypeTouchUp }

func (m TouchUp) Apply(*Catalog, Command) (Mode, error) {
	return m, ErrServiceUnavailable
}

func (TouchUp) Items(*Catalog, string) ([]entities.QuotationItem, error) {
	return nil, ErrServiceUnavailable
}
