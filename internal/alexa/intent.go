package alexa

import "encoding/json"

// Intent is a named user request with its spoken parameters.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one spoken parameter. HasValue distinguishes "the platform heard
// this slot but it was empty" (value key present) from "the slot was not
// heard at all" (value key absent).
type Slot struct {
	Name     string
	HasValue bool
	Value    string
}

// Slot returns the named slot; the zero Slot when it was not sent.
func (i *Intent) Slot(name string) Slot {
	if i == nil || i.Slots == nil {
		return Slot{Name: name, HasValue: false, Value: ""}
	}

	return i.Slots[name]
}

// UnmarshalJSON records whether the value key was present, not just whether
// it was non-empty.
func (s *Slot) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	if nameRaw, ok := raw["name"]; ok {
		err = json.Unmarshal(nameRaw, &s.Name)
		if err != nil {
			return err
		}
	}

	valueRaw, ok := raw["value"]
	if !ok {
		s.HasValue = false
		s.Value = ""

		return nil
	}

	s.HasValue = true

	// A JSON null value still counts as "heard but empty".
	if string(valueRaw) == "null" {
		s.Value = ""

		return nil
	}

	return json.Unmarshal(valueRaw, &s.Value)
}
