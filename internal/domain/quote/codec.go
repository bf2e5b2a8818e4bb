package quote

import (
	"encoding/json"
	"fmt"

	"autopaint_quotation/internal/domain/entities"
)

type modeEnvelope struct {
	ServiceType entities.ServiceType `json:"service_type"`
	State       json.RawMessage      `json:"state"`
}

// MarshalMode encodes a mode together with its service type tag.
func MarshalMode(m Mode) ([]byte, error) {
	state, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(modeEnvelope{ServiceType: m.ServiceType(), State: state})
}

// UnmarshalMode decodes the output of MarshalMode.
func UnmarshalMode(b []byte) (Mode, error) {
	var env modeEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	var (
		m   Mode
		err error
	)
	switch env.ServiceType {
	case entities.ServiceTypeSpotPainting:
		var s SpotPainting
		err = unmarshalState(env.State, &s)
		m = s
	case entities.ServiceTypePanelPainting:
		var s PanelPainting
		err = unmarshalState(env.State, &s)
		m = s
	case entities.ServiceTypeColorChange:
		var s ColorChange
		err = unmarshalState(env.State, &s)
		m = s
	case entities.ServiceTypeTouchUp:
		m = TouchUp{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownServiceType, env.ServiceType)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func unmarshalState(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
