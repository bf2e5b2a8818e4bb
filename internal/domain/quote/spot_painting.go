package quote

import (
	"fmt"

	"autopaint_quotation/internal/domain/entities"
)

// SpotPainting prices individually selected car parts.
type SpotPainting struct {
	Parts Selections `json:"parts"`
}

var _ Mode = SpotPainting{}

func (SpotPainting) ServiceType() entities.ServiceType { return entities.ServiceTypeSpotPainting }

func (m SpotPainting) Apply(c *Catalog, cmd Command) (Mode, error) {
	switch cmd.Type {
	case CommandTogglePart:
		if _, ok := c.CarPart(cmd.PartID); !ok {
			return m, fmt.Errorf("%w: %q", ErrUnknownCarPart, cmd.PartID)
		}
		if m.Parts.Has(cmd.PartID) {
			return SpotPainting{Parts: m.Parts.Delete(cmd.PartID)}, nil
		}
		return SpotPainting{Parts: m.Parts.Set(cmd.PartID, PartSelection{})}, nil

	case CommandToggleService, CommandToggleRemovablePart:
		parts, err := toggleExtra(c, m.Parts, cmd, true, nil)
		if err != nil {
			return m, err
		}
		return SpotPainting{Parts: parts}, nil

	case CommandSetPartOverride, CommandClearPartOverride:
		sel, ok := m.Parts.Get(cmd.PartID)
		if !ok {
			return m, fmt.Errorf("%w: %q", ErrCarPartNotSelected, cmd.PartID)
		}
		if cmd.Type == CommandClearPartOverride {
			return SpotPainting{Parts: m.Parts.Set(cmd.PartID, sel.WithoutOverride())}, nil
		}
		p, err := cmd.price()
		if err != nil {
			return m, err
		}
		return SpotPainting{Parts: m.Parts.Set(cmd.PartID, sel.WithOverride(p))}, nil
	}
	return m, fmt.Errorf("%w: %s", ErrUnsupportedCommand, cmd.Type)
}

// PartPrice is the override when set, else base price plus extras.
func (m SpotPainting) PartPrice(c *Catalog, segmentID, partID string) int64 {
	sel, ok := m.Parts.Get(partID)
	if !ok {
		return 0
	}
	if sel.Override != nil {
		return *sel.Override
	}
	return c.Price(segmentID, entities.ItemTypeCarPart, partID) + extrasPrice(c, segmentID, sel)
}

func (m SpotPainting) Items(c *Catalog, segmentID string) ([]entities.QuotationItem, error) {
	ids := orderedPartIDs(c, m.Parts)
	items := make([]entities.QuotationItem, 0, len(ids))
	for _, id := range ids {
		sel, _ := m.Parts.Get(id)
		items = append(items, entities.QuotationItem{
			CarPartID:              id,
			CarPartName:            partName(c, id),
			SelectedServices:       sel.Services,
			SelectedRemovableParts: sel.RemovableParts,
			Price:                  m.PartPrice(c, segmentID, id),
		})
	}
	return items, nil
}
