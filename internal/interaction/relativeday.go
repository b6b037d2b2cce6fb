// Package interaction maps resolved intents onto responses: slot resolution
// against the skill's small grammar, and the per-turn dialogue model.
package interaction

import (
	"strings"

	"github.com/book-expert/wod-skill-service/internal/alexa"
)

// RelativeDay is a closed set of spoken day references, each carrying its
// day offset from today and its canonical spoken name.
type RelativeDay struct {
	Spoken string
	Offset int
}

// The recognized relative days.
var (
	Today     = RelativeDay{Spoken: "today", Offset: 0}
	Yesterday = RelativeDay{Spoken: "yesterday", Offset: -1}
	Tomorrow  = RelativeDay{Spoken: "tomorrow", Offset: 1}
)

// relativeDays is the fixed resolution order.
var relativeDays = []RelativeDay{Today, Yesterday, Tomorrow}

// ResolveRelativeDay maps a spoken slot value onto a relative day. Possessive
// forms like "today's" match because the canonical name only has to be a
// prefix of the value. It never fails: anything unrecognized defaults to
// today.
func ResolveRelativeDay(slot alexa.Slot) RelativeDay {
	if !slot.HasValue || slot.Value == "" {
		return Today
	}

	value := strings.ToLower(slot.Value)
	for _, day := range relativeDays {
		if strings.HasPrefix(value, day.Spoken) {
			return day
		}
	}

	return Today
}
