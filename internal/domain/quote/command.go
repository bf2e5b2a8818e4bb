package quote

// CommandType names an operator action inside a builder.
type CommandType string

const (
	CommandTogglePart          CommandType = "toggle_part"
	CommandToggleService       CommandType = "toggle_service"
	CommandToggleRemovablePart CommandType = "toggle_removable_part"
	CommandSetPartOverride     CommandType = "set_part_override"
	CommandClearPartOverride   CommandType = "clear_part_override"
	CommandSetBaseOverride     CommandType = "set_base_override"
	CommandClearBaseOverride   CommandType = "clear_base_override"
	CommandToggleExtraService  CommandType = "toggle_extra_service"
)

// Command is one operator action. Which fields are read depends on Type.
type Command struct {
	Type            CommandType `json:"type"`
	PartID          string      `json:"part_id,omitempty"`
	ServiceID       string      `json:"service_id,omitempty"`
	RemovablePartID string      `json:"removable_part_id,omitempty"`
	ExtraServiceID  string      `json:"extra_service_id,omitempty"`
	Price           *int64      `json:"price,omitempty"`
}

func (cmd Command) price() (int64, error) {
	if cmd.Price == nil || *cmd.Price < 0 {
		return 0, ErrInvalidPrice
	}
	return *cmd.Price, nil
}
