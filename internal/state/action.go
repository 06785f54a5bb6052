package state

import "encoding/json"

// Action describes one move a player may take. The server emits heterogeneous
// action descriptors per game, so the full original JSON is retained and
// echoed back verbatim on execution; the named fields exist for display only.
type Action struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Cost        int    `json:"cost,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the display fields and keeps the raw payload.
func (a *Action) UnmarshalJSON(data []byte) error {
	type plain Action
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Action(p)
	a.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON echoes the original server payload when one was captured.
func (a Action) MarshalJSON() ([]byte, error) {
	if len(a.raw) > 0 {
		return a.raw, nil
	}
	type plain Action
	return json.Marshal(plain(a))
}

// Label returns the best available short name for the action.
func (a Action) Label() string {
	switch {
	case a.Name != "":
		return a.Name
	case a.Type != "":
		return a.Type
	default:
		return "action"
	}
}
