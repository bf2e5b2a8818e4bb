package quote

import (
	"fmt"

	"autopaint_quotation/internal/domain/entities"
)

const (
	colorChangeItemID   = "color_change"
	colorChangeItemName = "Sơn Đổi Màu Toàn Bộ"
)

// ExtraService is a flat-priced add-on offered only in color-change mode.
// RequiredServices is informational and never enforced.
type ExtraService struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	Price            int64    `json:"price"`
	RequiredServices []string `json:"required_services,omitempty"`
}

var colorChangeExtras = []ExtraService{
	{
		ID:               "engine_bay_painting",
		Name:             "engine_bay_painting",
		DisplayName:      "Sơn khoang máy",
		Price:            2000000,
		RequiredServices: []string{"cau_ha_may"},
	},
	{
		ID:          "interior_disassembly",
		Name:        "interior_disassembly",
		DisplayName: "Tháo lắp chi tiết nội thất",
		Price:       2000000,
	},
}

// ColorChangeExtras returns the fixed extra services of color-change mode.
func ColorChangeExtras() []ExtraService {
	out := make([]ExtraService, len(colorChangeExtras))
	for i, e := range colorChangeExtras {
		e.RequiredServices = append([]string(nil), e.RequiredServices...)
		out[i] = e
	}
	return out
}

func findExtra(id string) (ExtraService, bool) {
	for _, e := range colorChangeExtras {
		if e.ID == id {
			return e, true
		}
	}
	return ExtraService{}, false
}

// ColorChange prices a full respray.
//
// The base price reuses the panel_painting slot of the price table.
type ColorChange struct {
	BaseOverride *int64     `json:"base_override,omitempty"`
	Parts        Selections `json:"parts"`
	Extras       []string   `json:"extras"`
}

var _ Mode = ColorChange{}

func (ColorChange) ServiceType() entities.ServiceType { return entities.ServiceTypeColorChange }

func (m ColorChange) Apply(c *Catalog, cmd Command) (Mode, error) {
	next := ColorChange{BaseOverride: m.BaseOverride, Parts: m.Parts, Extras: append([]string{}, m.Extras...)}
	switch cmd.Type {
	case CommandToggleService, CommandToggleRemovablePart:
		parts, err := toggleExtra(c, m.Parts, cmd, false, OfferedInColorChange)
		if err != nil {
			return m, err
		}
		next.Parts = parts
	case CommandSetBaseOverride:
		p, err := overridePrice(cmd)
		if err != nil {
			return m, err
		}
		next.BaseOverride = p
	case CommandClearBaseOverride:
		next.BaseOverride = nil
	case CommandToggleExtraService:
		if _, ok := findExtra(cmd.ExtraServiceID); !ok {
			return m, fmt.Errorf("%w: %q", ErrUnknownExtraService, cmd.ExtraServiceID)
		}
		next.Extras = toggleID(m.Extras, cmd.ExtraServiceID)
	default:
		return m, fmt.Errorf("%w: %s", ErrUnsupportedCommand, cmd.Type)
	}
	return next, nil
}

func (m ColorChange) BasePrice(c *Catalog, segmentID string) int64 {
	if m.BaseOverride != nil {
		return *m.BaseOverride
	}
	return c.Price(segmentID, entities.ItemTypePanelPainting, "")
}

func (m ColorChange) extraSelected(id string) bool {
	for _, v := range m.Extras {
		if v == id {
			return true
		}
	}
	return false
}

func (m ColorChange) Items(c *Catalog, segmentID string) ([]entities.QuotationItem, error) {
	items := []entities.QuotationItem{{
		CarPartID:              colorChangeItemID,
		CarPartName:            colorChangeItemName,
		SelectedServices:       []string{},
		SelectedRemovableParts: []string{},
		Price:                  m.BasePrice(c, segmentID),
	}}
	for _, id := range orderedPartIDs(c, m.Parts) {
		sel, _ := m.Parts.Get(id)
		if !sel.HasExtras() {
			continue
		}
		if p, ok := c.CarPart(id); ok && !OfferedInColorChange(p) {
			continue
		}
		items = append(items, additionalItem(c, segmentID, id, sel))
	}
	for _, e := range colorChangeExtras {
		if !m.extraSelected(e.ID) {
			continue
		}
		items = append(items, entities.QuotationItem{
			CarPartID:              e.ID,
			CarPartName:            e.DisplayName,
			SelectedServices:       append([]string{}, e.RequiredServices...),
			SelectedRemovableParts: []string{},
			Price:                  e.Price,
		})
	}
	return items, nil
}
