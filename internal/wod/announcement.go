package wod

import "strings"

// isAnnouncementLine reports whether a trimmed line reads as a gym
// announcement rather than workout content: either shouted entirely in upper
// case, or ending in a run of exclamation marks ("HAPPY BIRTHDAY SARAH!!!!").
func isAnnouncementLine(line string) bool {
	if line == "" {
		return false
	}

	if strings.HasSuffix(line, "!!") {
		return true
	}

	// All upper case, with at least one actual letter so lines of bare
	// digits and punctuation do not qualify.
	return line == strings.ToUpper(line) && line != strings.ToLower(line)
}

// SplitAnnouncement partitions the raw strength text into leading
// announcement lines and the remaining workout lines. Announcements may span
// multiple paragraphs, so blank lines between announcement lines are consumed
// into the announcement group. The scan stops at the first non-empty line
// that is not an announcement.
func SplitAnnouncement(raw string) (announcement, remaining []string) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	lines := splitTrimmedLines(raw)

	consumed := 0
	sawAnnouncement := false

	for consumed < len(lines) {
		line := lines[consumed]
		if line != "" && !isAnnouncementLine(line) {
			break
		}

		if line != "" {
			sawAnnouncement = true
		}

		consumed++
	}

	// A prefix of blank lines alone is not an announcement.
	if !sawAnnouncement {
		return nil, lines
	}

	return lines[:consumed], lines[consumed:]
}

// splitTrimmedLines splits text into lines with surrounding whitespace
// removed. Whitespace-only input yields nil.
func splitTrimmedLines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return lines
}
