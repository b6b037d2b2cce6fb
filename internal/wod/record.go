package wod

import (
	"strings"
	"time"
)

// attributeTimeLayout is the fixed timestamp format the content API uses for
// the date and publishDate attributes.
const attributeTimeLayout = "2006-01-02T15:04:05.000Z"

// Spoken section labels.
const (
	strengthLabel     = "Strength Section:"
	conditioningLabel = "Conditioning:"
)

// Record is one calendar day's workout, built once from the raw attribute map
// returned by the content API and immutable afterwards. Missing attributes
// map to zero values, never to errors.
type Record struct {
	AnnouncementLines []string
	StrengthLines     []string
	ConditioningLines []string
	ImageURL          string

	// Date is the calendar-date component of the record's date attribute,
	// zero when the attribute was missing or unparseable.
	Date time.Time

	// PublishDateTime is when the record becomes visible, zero when
	// missing or unparseable.
	PublishDateTime time.Time
}

// NewRecord builds a Record from the raw attribute map of one content API
// object. It cannot fail: absent or malformed attributes degrade to their
// zero values.
func NewRecord(attributes map[string]any) *Record {
	announcement, strength := SplitAnnouncement(stringAttribute(attributes, "strength"))

	record := &Record{
		AnnouncementLines: announcement,
		StrengthLines:     strength,
		ConditioningLines: splitTrimmedLines(stringAttribute(attributes, "conditioning")),
		ImageURL:          stringAttribute(attributes, "image"),
		Date:              time.Time{},
		PublishDateTime:   time.Time{},
	}

	if parsed, ok := timeAttribute(attributes, "date"); ok {
		record.Date = time.Date(
			parsed.Year(), parsed.Month(), parsed.Day(),
			0, 0, 0, 0, time.UTC,
		)
	}

	if parsed, ok := timeAttribute(attributes, "publishDate"); ok {
		record.PublishDateTime = parsed
	}

	return record
}

// stringAttribute reads a string attribute, tolerating absent keys and JSON
// nulls.
func stringAttribute(attributes map[string]any, key string) string {
	value, ok := attributes[key].(string)
	if !ok {
		return ""
	}

	return value
}

// timeAttribute parses a timestamp attribute against the fixed API layout.
func timeAttribute(attributes map[string]any, key string) (time.Time, bool) {
	raw, ok := attributes[key].(string)
	if !ok {
		return time.Time{}, false
	}

	parsed, err := time.Parse(attributeTimeLayout, raw)
	if err != nil {
		return time.Time{}, false
	}

	return parsed.UTC(), true
}

// HasStrength reports whether the record carries strength content.
func (r *Record) HasStrength() bool {
	return hasContent(r.StrengthLines)
}

// HasConditioning reports whether the record carries conditioning content.
func (r *Record) HasConditioning() bool {
	return hasContent(r.ConditioningLines)
}

// Empty reports whether the record has no spoken content at all.
func (r *Record) Empty() bool {
	return !r.HasStrength() && !r.HasConditioning() && !hasContent(r.AnnouncementLines)
}

// Published reports whether the record is visible at the given instant.
// Records without a parseable publish time are treated as published so a
// malformed upstream timestamp degrades gracefully instead of hiding the
// workout.
func (r *Record) Published(now time.Time) bool {
	if r.PublishDateTime.IsZero() {
		return true
	}

	return !r.PublishDateTime.After(now)
}

// AnnouncementSSML renders the announcement lines as an SSML fragment.
func (r *Record) AnnouncementSSML() string {
	return ComposeAnnouncement(r.AnnouncementLines)
}

// StrengthSSML renders the strength section as an SSML fragment.
func (r *Record) StrengthSSML() string {
	return ComposeSection(r.StrengthLines, strengthLabel)
}

// ConditioningSSML renders the conditioning section as an SSML fragment.
func (r *Record) ConditioningSSML() string {
	return ComposeSection(r.ConditioningLines, conditioningLabel)
}

// FullSSML renders the whole workout: announcement, then strength, then
// conditioning.
func (r *Record) FullSSML() string {
	return r.AnnouncementSSML() + r.StrengthSSML() + r.ConditioningSSML()
}

// AnnouncementText renders the announcement lines as labeled plain text.
func (r *Record) AnnouncementText() string {
	return composeText(r.AnnouncementLines, "Announcement:")
}

// StrengthText renders the strength section as labeled plain text.
func (r *Record) StrengthText() string {
	return composeText(r.StrengthLines, "Strength:")
}

// ConditioningText renders the conditioning section as labeled plain text.
func (r *Record) ConditioningText() string {
	return composeText(r.ConditioningLines, "Conditioning:")
}

// Text renders the whole workout as plain text, for the visual card.
func (r *Record) Text() string {
	parts := make([]string, 0, 3)

	for _, part := range []string{r.AnnouncementText(), r.StrengthText(), r.ConditioningText()} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, "\n")
}

// composeText mirrors ComposeSection for plain text: a label line followed by
// the raw lines, empty when there is no content.
func composeText(lines []string, label string) string {
	if !hasContent(lines) {
		return ""
	}

	return label + "\n" + strings.Join(lines, "\n")
}
