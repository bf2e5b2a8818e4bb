package quote

import (
	"fmt"

	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
)

// Mode is the in-progress selection state of one service type.
//
// Implementations are values: Apply returns the next state and leaves the
// receiver untouched.
type Mode interface {
	ServiceType() entities.ServiceType
	Apply(c *Catalog, cmd Command) (Mode, error)
	Items(c *Catalog, segmentID string) ([]entities.QuotationItem, error)
}

// Builder yields the line items and total of a mode bound to a catalog and segment.
type Builder interface {
	ComputeItems() ([]entities.QuotationItem, error)
	ComputeTotal() (int64, error)
}

// NewMode returns the empty state for a service type.
func NewMode(t entities.ServiceType) (Mode, error) {
	switch t {
	case entities.ServiceTypeSpotPainting:
		return SpotPainting{}, nil
	case entities.ServiceTypePanelPainting:
		return PanelPainting{}, nil
	case entities.ServiceTypeColorChange:
		return ColorChange{}, nil
	case entities.ServiceTypeTouchUp:
		return TouchUp{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, t)
}

func Bind(m Mode, c *Catalog, segmentID string) Builder {
	return boundBuilder{mode: m, catalog: c, segmentID: segmentID}
}

type boundBuilder struct {
	mode      Mode
	catalog   *Catalog
	segmentID string
}

func (b boundBuilder) ComputeItems() ([]entities.QuotationItem, error) {
	return b.mode.Items(b.catalog, b.segmentID)
}

func (b boundBuilder) ComputeTotal() (int64, error) {
	items, err := b.ComputeItems()
	if err != nil {
		return 0, err
	}
	return pricing.Total(items), nil
}

// extrasPrice sums the optional services and removable parts of a selection.
func extrasPrice(c *Catalog, segmentID string, sel PartSelection) int64 {
	var total int64
	for _, id := range sel.Services {
		total += c.Price(segmentID, entities.ItemTypeService, id)
	}
	for _, id := range sel.RemovableParts {
		total += c.Price(segmentID, entities.ItemTypeRemovablePart, id)
	}
	return total
}

// toggleExtra applies a service or removable-part toggle to one part.
// With requireMember the part must already be selected; otherwise an entry is
// created on demand and dropped again once it holds nothing.
func toggleExtra(c *Catalog, sels Selections, cmd Command, requireMember bool, offered func(entities.CarPart) bool) (Selections, error) {
	part, ok := c.CarPart(cmd.PartID)
	if !ok {
		return sels, fmt.Errorf("%w: %q", ErrUnknownCarPart, cmd.PartID)
	}
	if offered != nil && !offered(part) {
		return sels, fmt.Errorf("%w: %q", ErrCarPartNotOffered, part.Name)
	}
	sel, member := sels.Get(cmd.PartID)
	if requireMember && !member {
		return sels, fmt.Errorf("%w: %q", ErrCarPartNotSelected, cmd.PartID)
	}

	switch cmd.Type {
	case CommandToggleService:
		if !c.isOptionalService(cmd.ServiceID) {
			return sels, fmt.Errorf("%w: %q", ErrUnknownService, cmd.ServiceID)
		}
		sel = sel.ToggleService(cmd.ServiceID)
	case CommandToggleRemovablePart:
		if !c.isRemovablePartOf(cmd.RemovablePartID, cmd.PartID) {
			return sels, fmt.Errorf("%w: %q", ErrUnknownRemovablePart, cmd.RemovablePartID)
		}
		sel = sel.ToggleRemovablePart(cmd.RemovablePartID)
	default:
		return sels, fmt.Errorf("%w: %s", ErrUnsupportedCommand, cmd.Type)
	}

	if !requireMember && !sel.HasExtras() && sel.Override == nil {
		return sels.Delete(cmd.PartID), nil
	}
	return sels.Set(cmd.PartID, sel), nil
}

// orderedPartIDs lists selected part ids in catalog order. Ids no longer in
// the catalog follow, sorted, so billed lines are never dropped.
func orderedPartIDs(c *Catalog, sels Selections) []string {
	ids := make([]string, 0, sels.Len())
	seen := make(map[string]struct{}, sels.Len())
	for _, p := range c.CarParts() {
		if sels.Has(p.ID) {
			ids = append(ids, p.ID)
			seen[p.ID] = struct{}{}
		}
	}
	for _, id := range sels.IDs() {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func partName(c *Catalog, id string) string {
	if p, ok := c.CarPart(id); ok {
		return p.DisplayName
	}
	return id
}

func additionalItem(c *Catalog, segmentID, partID string, sel PartSelection) entities.QuotationItem {
	return entities.QuotationItem{
		CarPartID:              partID,
		CarPartName:            partName(c, partID) + " - Dịch vụ thêm",
		SelectedServices:       append([]string{}, sel.Services...),
		SelectedRemovableParts: append([]string{}, sel.RemovableParts...),
		Price:                  extrasPrice(c, segmentID, sel),
	}
}

func overridePrice(cmd Command) (*int64, error) {
	p, err := cmd.price()
	if err != nil {
		return nil, err
	}
	return &p, nil
}
