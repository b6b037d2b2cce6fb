package alexa

// SessionAttributes is the explicit shape of the state this skill
// round-trips through the platform session: at most one stored intent
// snapshot per intent name, kept when slot resolution fails so the next turn
// can retry against the last-known-good values.
type SessionAttributes struct {
	Intents map[string]StoredIntent `json:"intents,omitempty"`
}

// StoredIntent is a snapshot of an intent's slots from a previous turn.
type StoredIntent struct {
	Slots map[string]StoredSlot `json:"slots"`
}

// StoredSlot is a snapshot of one slot value.
type StoredSlot struct {
	Value string `json:"value"`
}

// StoredSlot returns the named slot from the named intent snapshot as a
// regular Slot, or nil when no snapshot carries it.
func (a SessionAttributes) StoredSlot(intentName, slotName string) *Slot {
	snapshot, ok := a.Intents[intentName]
	if !ok {
		return nil
	}

	stored, ok := snapshot.Slots[slotName]
	if !ok {
		return nil
	}

	return &Slot{Name: slotName, HasValue: true, Value: stored.Value}
}

// Snapshot builds the session attributes that persist an intent's slot
// values for the next turn.
func Snapshot(intentName string, slots map[string]string) SessionAttributes {
	stored := StoredIntent{Slots: make(map[string]StoredSlot, len(slots))}
	for name, value := range slots {
		stored.Slots[name] = StoredSlot{Value: value}
	}

	return SessionAttributes{
		Intents: map[string]StoredIntent{intentName: stored},
	}
}
