package quote

import (
	"encoding/json"
	"sort"
)

// PartSelection is what the operator picked for one car part.
// Values are never mutated in place; every update returns a copy.
type PartSelection struct {
	Services       []string `json:"services"`
	RemovableParts []string `json:"removable_parts"`
	Override       *int64   `json:"override,omitempty"`
}

func (s PartSelection) HasExtras() bool {
	return len(s.Services) > 0 || len(s.RemovableParts) > 0
}

func (s PartSelection) ToggleService(id string) PartSelection {
	out := s.clone()
	out.Services = toggleID(s.Services, id)
	return out
}

func (s PartSelection) ToggleRemovablePart(id string) PartSelection {
	out := s.clone()
	out.RemovableParts = toggleID(s.RemovableParts, id)
	return out
}

func (s PartSelection) WithOverride(price int64) PartSelection {
	out := s.clone()
	out.Override = &price
	return out
}

func (s PartSelection) WithoutOverride() PartSelection {
	out := s.clone()
	out.Override = nil
	return out
}

func (s PartSelection) clone() PartSelection {
	out := PartSelection{
		Services:       append([]string{}, s.Services...),
		RemovableParts: append([]string{}, s.RemovableParts...),
	}
	if s.Override != nil {
		v := *s.Override
		out.Override = &v
	}
	return out
}

func toggleID(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Selections maps car part id to its selection. The zero value is empty
// and ready to use.
type Selections struct {
	parts map[string]PartSelection
}

func (s Selections) Len() int { return len(s.parts) }

func (s Selections) Get(partID string) (PartSelection, bool) {
	p, ok := s.parts[partID]
	if !ok {
		return PartSelection{}, false
	}
	return p.clone(), true
}

func (s Selections) Has(partID string) bool {
	_, ok := s.parts[partID]
	return ok
}

// Set returns a new mapping with partID bound to sel.
func (s Selections) Set(partID string, sel PartSelection) Selections {
	out := make(map[string]PartSelection, len(s.parts)+1)
	for k, v := range s.parts {
		out[k] = v
	}
	out[partID] = sel.clone()
	return Selections{parts: out}
}

// Delete returns a new mapping without partID.
func (s Selections) Delete(partID string) Selections {
	out := make(map[string]PartSelection, len(s.parts))
	for k, v := range s.parts {
		if k != partID {
			out[k] = v
		}
	}
	return Selections{parts: out}
}

// IDs returns the selected part ids, sorted.
func (s Selections) IDs() []string {
	ids := make([]string, 0, len(s.parts))
	for k := range s.parts {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}

func (s Selections) MarshalJSON() ([]byte, error) {
	if s.parts == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.parts)
}

func (s *Selections) UnmarshalJSON(b []byte) error {
	var parts map[string]PartSelection
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	s.parts = parts
	return nil
}
