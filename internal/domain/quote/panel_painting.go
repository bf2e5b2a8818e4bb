package quote

import (
	"fmt"

	"autopaint_quotation/internal/domain/entities"
)

const (
	panelPaintingItemID   = "panel_painting"
	panelPaintingItemName = "Sơn Quây Toàn Bộ"
)

// PanelPainting prices the whole vehicle at one flat base price, plus extras
// requested on individual parts.
type PanelPainting struct {
	BaseOverride *int64     `json:"base_override,omitempty"`
	Parts        Selections `json:"parts"`
}

var _ Mode = PanelPainting{}

func (PanelPainting) ServiceType() entities.ServiceType { return entities.ServiceTypePanelPainting }

func (m PanelPainting) Apply(c *Catalog, cmd Command) (Mode, error) {
	switch cmd.Type {
	case CommandToggleService, CommandToggleRemovablePart:
		parts, err := toggleExtra(c, m.Parts, cmd, false, nil)
		if err != nil {
			return m, err
		}
		return PanelPainting{BaseOverride: m.BaseOverride, Parts: parts}, nil
	case CommandSetBaseOverride:
		p, err := overridePrice(cmd)
		if err != nil {
			return m, err
		}
		return PanelPainting{BaseOverride: p, Parts: m.Parts}, nil
	case CommandClearBaseOverride:
		return PanelPainting{Parts: m.Parts}, nil
	}
	return m, fmt.Errorf("%w: %s", ErrUnsupportedCommand, cmd.Type)
}

func (m PanelPainting) BasePrice(c *Catalog, segmentID string) int64 {
	if m.BaseOverride != nil {
		return *m.BaseOverride
	}
	return c.Price(segmentID, entities.ItemTypePanelPainting, "")
}

func (m PanelPainting) Items(c *Catalog, segmentID string) ([]entities.QuotationItem, error) {
	items := []entities.QuotationItem{{
		CarPartID:              panelPaintingItemID,
		CarPartName:            panelPaintingItemName,
		SelectedServices:       []string{},
		SelectedRemovableParts: []string{},
		Price:                  m.BasePrice(c, segmentID),
	}}
	for _, id := range orderedPartIDs(c, m.Parts) {
		sel, _ := m.Parts.Get(id)
		if !sel.HasExtras() {
			continue
		}
		items = append(items, additionalItem(c, segmentID, id, sel))
	}
	return items, nil
}
