package interaction

import (
	"errors"
	"strings"

	"github.com/book-expert/wod-skill-service/internal/alexa"
)

// ErrMissingSlot indicates the section slot could not be resolved from the
// current turn or the previous turn's snapshot. It is expected and
// recoverable: the caller reprompts instead of failing the turn.
var ErrMissingSlot = errors.New("section slot could not be resolved")

// RequestSection is the closed set of workout sections a user can ask for.
type RequestSection int

// The recognized sections.
const (
	FullWorkout RequestSection = iota
	Strength
	Conditioning
)

// Word is the canonical spoken word for the section, used in card titles.
func (s RequestSection) Word() string {
	switch s {
	case Strength:
		return "strength"
	case Conditioning:
		return "conditioning"
	case FullWorkout:
		return "workout"
	default:
		return "workout"
	}
}

// sectionSynonym maps one recognized spoken form onto its section and the
// word echoed back to the user. Voice recognition mangles "wod" into "wad",
// so the echo word corrects the spelling we speak back.
type sectionSynonym struct {
	match   string
	section RequestSection
	echo    string
}

// sectionSynonyms is the fixed, deterministic scan order. Prefix matching of
// short synonyms is knowingly fuzzy; first match wins.
var sectionSynonyms = []sectionSynonym{
	{match: "workout", section: FullWorkout, echo: "workout"},
	{match: "wod", section: FullWorkout, echo: "wod"},
	{match: "wad", section: FullWorkout, echo: "wod"},
	{match: "both", section: FullWorkout, echo: "workout"},
	{match: "everything", section: FullWorkout, echo: "workout"},
	{match: "full", section: FullWorkout, echo: "workout"},
	{match: "strength", section: Strength, echo: "strength"},
	{match: "lifting", section: Strength, echo: "strength"},
	{match: "weightlifting", section: Strength, echo: "strength"},
	{match: "conditioning", section: Conditioning, echo: "conditioning"},
	{match: "condition", section: Conditioning, echo: "conditioning"},
	{match: "metcon", section: Conditioning, echo: "metcon"},
	{match: "cardio", section: Conditioning, echo: "cardio"},
}

// matchSection resolves one slot value: an exact synonym match first, then a
// starts-with match, scanning in fixed order.
func matchSection(value string) (RequestSection, string, bool) {
	value = strings.ToLower(value)

	for _, synonym := range sectionSynonyms {
		if value == synonym.match {
			return synonym.section, synonym.echo, true
		}
	}

	for _, synonym := range sectionSynonyms {
		if strings.HasPrefix(value, synonym.match) {
			return synonym.section, synonym.echo, true
		}
	}

	return FullWorkout, "", false
}

// ResolveSection maps the section slot onto a section and the word to echo
// back. When the current turn's value does not resolve, it retries against
// the same slot stored from the previous turn — recognition is noisy, and
// retrying the last-known-good value beats making the user repeat
// themselves. With no match on either, it fails with ErrMissingSlot.
func ResolveSection(slot alexa.Slot, fallback *alexa.Slot) (RequestSection, string, error) {
	if slot.HasValue && slot.Value != "" {
		section, echo, ok := matchSection(slot.Value)
		if ok {
			return section, echo, nil
		}
	}

	if fallback != nil && fallback.HasValue && fallback.Value != "" {
		section, echo, ok := matchSection(fallback.Value)
		if ok {
			return section, echo, nil
		}
	}

	return FullWorkout, "", ErrMissingSlot
}
