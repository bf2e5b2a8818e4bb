package quote

import (
	"autopaint_quotation/internal/domain/entities"
	"autopaint_quotation/internal/domain/pricing"
)

// Catalog is the reference data a builder consults, indexed for lookups.
type Catalog struct {
	data      entities.ReferenceData
	resolver  *pricing.Resolver
	segments  map[string]entities.CarSegment
	parts     map[string]entities.CarPart
	services  map[string]entities.Service
	removable map[string]entities.RemovablePart
}

func NewCatalog(data entities.ReferenceData, sink pricing.DiagnosticsSink) *Catalog {
	c := &Catalog{
		data:      data,
		resolver:  pricing.NewResolver(data.Pricing, sink),
		segments:  make(map[string]entities.CarSegment, len(data.CarSegments)),
		parts:     make(map[string]entities.CarPart, len(data.CarParts)),
		services:  make(map[string]entities.Service, len(data.Services)),
		removable: make(map[string]entities.RemovablePart, len(data.RemovableParts)),
	}
	for _, s := range data.CarSegments {
		c.segments[s.ID] = s
	}
	for _, p := range data.CarParts {
		c.parts[p.ID] = p
	}
	for _, s := range data.Services {
		c.services[s.ID] = s
	}
	for _, rp := range data.RemovableParts {
		c.removable[rp.ID] = rp
	}
	return c
}

func (c *Catalog) Data() entities.ReferenceData { return c.data }

func (c *Catalog) Resolver() *pricing.Resolver { return c.resolver }

func (c *Catalog) Price(segmentID string, itemType entities.ItemType, itemID string) int64 {
	return c.resolver.Resolve(segmentID, itemType, itemID)
}

func (c *Catalog) HasSegment(id string) bool {
	_, ok := c.segments[id]
	return ok
}

func (c *Catalog) Segment(id string) (entities.CarSegment, bool) {
	s, ok := c.segments[id]
	return s, ok
}

func (c *Catalog) CarParts() []entities.CarPart { return c.data.CarParts }

func (c *Catalog) CarPart(id string) (entities.CarPart, bool) {
	p, ok := c.parts[id]
	return p, ok
}

func (c *Catalog) OptionalServices() []entities.Service {
	return c.servicesOfKind(entities.ServiceKindOptional)
}

func (c *Catalog) RequiredServices() []entities.Service {
	return c.servicesOfKind(entities.ServiceKindRequired)
}

func (c *Catalog) servicesOfKind(kind entities.ServiceKind) []entities.Service {
	out := make([]entities.Service, 0, len(c.data.Services))
	for _, s := range c.data.Services {
		if s.Type == kind {
			out = append(out, s)
		}
	}
	return out
}

func (c *Catalog) isOptionalService(id string) bool {
	s, ok := c.services[id]
	return ok && s.Type == entities.ServiceKindOptional
}

// RemovablePartsOf returns the removable parts attached to a car part.
func (c *Catalog) RemovablePartsOf(carPartID string) []entities.RemovablePart {
	out := make([]entities.RemovablePart, 0)
	for _, rp := range c.data.RemovableParts {
		if rp.CarPartID == carPartID {
			out = append(out, rp)
		}
	}
	return out
}

func (c *Catalog) isRemovablePartOf(removableID, carPartID string) bool {
	rp, ok := c.removable[removableID]
	return ok && rp.CarPartID == carPartID
}

// Car part names removed as whole sub-assemblies during a full respray.
var colorChangeExcludedParts = map[string]struct{}{
	"can_sau_phu":   {},
	"can_sau_tai":   {},
	"can_truoc_phu": {},
	"can_truoc_tai": {},
	"cop_tren":      {},
	"cop_duoi":      {},
}

// OfferedInColorChange reports whether a part accepts extra selections in
// color-change mode.
func OfferedInColorChange(p entities.CarPart) bool {
	_, excluded := colorChangeExcludedParts[p.Name]
	return !excluded
}

// ColorChangeParts returns the car parts offered for extras in color-change mode.
func (c *Catalog) ColorChangeParts() []entities.CarPart {
	out := make([]entities.CarPart, 0, len(c.data.CarParts))
	for _, p := range c.data.CarParts {
		if OfferedInColorChange(p) {
			out = append(out, p)
		}
	}
	return out
}

// ServiceName returns the display name of a service or color-change extra,
// or the id itself when it is unknown.
func (c *Catalog) ServiceName(id string) string {
	if s, ok := c.services[id]; ok {
		return s.DisplayName
	}
	if e, ok := findExtra(id); ok {
		return e.DisplayName
	}
	return id
}

// RemovablePartName returns the display name of a removable part, or the id.
func (c *Catalog) RemovablePartName(id string) string {
	if rp, ok := c.removable[id]; ok {
		return rp.DisplayName
	}
	return id
}
