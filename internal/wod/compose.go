package wod

import "strings"

// announcementPause separates blank-line-delimited announcements when spoken.
const announcementPause = `<break time="500ms"/>`

// hasContent reports whether any line in the slice is non-empty.
func hasContent(lines []string) bool {
	for _, line := range lines {
		if line != "" {
			return true
		}
	}

	return false
}

// ComposeSection renders workout lines as an SSML fragment: a labeled
// paragraph followed by one sentence per line, each line passed through the
// lexical normalizer. Sections without content yield an empty fragment so no
// label leaks into the speech.
func ComposeSection(lines []string, label string) string {
	if !hasContent(lines) {
		return ""
	}

	var builder strings.Builder

	builder.WriteString("<p>")
	builder.WriteString(label)
	builder.WriteString("</p>")

	for _, line := range lines {
		if line == "" {
			continue
		}

		builder.WriteString("<s>")
		builder.WriteString(Normalize(line))
		builder.WriteString("</s>")
	}

	return builder.String()
}

// ComposeAnnouncement renders announcement lines as an SSML fragment.
// Announcements are free text, not workout shorthand, so lines only get
// ampersand sanitization, and blank lines become timed pauses between
// paragraphs.
func ComposeAnnouncement(lines []string) string {
	if !hasContent(lines) {
		return ""
	}

	var builder strings.Builder

	builder.WriteString("<p>Announcement: ")

	for _, line := range lines {
		if line == "" {
			builder.WriteString(announcementPause)

			continue
		}

		builder.WriteString("<s>")
		builder.WriteString(strings.ReplaceAll(line, "&", "and"))
		builder.WriteString("</s>")
	}

	builder.WriteString("</p>")

	return builder.String()
}
